package hh

import (
	"encoding/json"
	"fmt"
	"time"
)

type Vacancy struct {
	VacancyPreview
	Description             string           `json:"description"`
	KeySkills               []KeySkill       `json:"key_skills"`
	Contacts                *Contacts        `json:"contacts"`
	WorkFormat              []DictionaryItem `json:"work_format"`
	AcceptHandicapped       bool             `json:"accept_handicapped"`
	AcceptKids              bool             `json:"accept_kids"`
	AcceptTemporary         bool             `json:"accept_temporary"`
	AcceptIncompleteResumes bool             `json:"accept_incomplete_resumes"`
}

type VacancyPreview struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Url               string           `json:"alternate_url"`
	Employer          *Employer        `json:"employer"`
	Salary            *Salary          `json:"salary"`
	Area              *Area            `json:"area"`
	Schedule          *DictionaryItem  `json:"schedule"`
	Experience        *DictionaryItem  `json:"experience"`
	Employment        *DictionaryItem  `json:"employment"`
	ProfessionalRoles []DictionaryItem `json:"professional_roles"`
	PublishedAt       *CustomTime      `json:"published_at"`
}

type Employer struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	LogoUrls             *LogoUrls `json:"logo_urls"`
	Trusted              bool      `json:"trusted"`
	AccreditedItEmployer bool      `json:"accredited_it_employer"`
}

type LogoUrls struct {
	Original string `json:"original"`
}

type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
	Gross    *bool  `json:"gross"`
}

type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DictionaryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type KeySkill struct {
	Name string `json:"name"`
}

type Contacts struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phones []Phone `json:"phones"`
}

type Phone struct {
	Formatted string `json:"formatted"`
}

type CustomTime struct {
	time.Time
}

func (dt *CustomTime) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}

	t, err := time.Parse("2006-01-02T15:04:05-0700", str)
	if err != nil {
		return fmt.Errorf("parsing time %s: %v", str, err)
	}
	dt.Time = t
	return nil
}
