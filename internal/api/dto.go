package api

import (
	"time"

	"github.com/maxaizer/hh-tracker/internal/entities"
	"github.com/samber/lo"
)

type searchQuery struct {
	Text           string   `form:"text" binding:"max=200"`
	AreaID         string   `form:"area"`
	Experience     string   `form:"experience" binding:"omitempty,oneof=noExperience between1And3 between3And6 moreThan6"`
	Schedules      []string `form:"schedule" binding:"dive,oneof=fullDay flexible remote"`
	SalaryFrom     int      `form:"salary" binding:"min=0"`
	OnlyWithSalary bool     `form:"only_with_salary"`
	Page           int      `form:"page" binding:"min=0"`
	PerPage        int      `form:"per_page" binding:"min=0,max=100"`
}

type listQuery struct {
	Status    string `form:"status" binding:"omitempty,oneof=saved applied interview offer rejected archived"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=savedDate name"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page,default=1" binding:"min=1"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
}

type saveRequest struct {
	ExternalID string `json:"external_id" binding:"required,max=32"`
}

type progressRequest struct {
	Status string `json:"status" binding:"required,oneof=saved applied interview offer rejected archived"`
}

type notesRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

type checklistItemRequest struct {
	Text string `json:"text" binding:"required,max=200"`
	Done bool   `json:"done"`
}

type checklistRequest struct {
	Items []checklistItemRequest `json:"items" binding:"max=50,dive"`
}

type salaryResponse struct {
	From     *int    `json:"from"`
	To       *int    `json:"to"`
	Currency *string `json:"currency"`
	Gross    *bool   `json:"gross"`
}

type employerResponse struct {
	ID         *string `json:"id"`
	Name       *string `json:"name"`
	LogoUrl    *string `json:"logo_url"`
	Trusted    bool    `json:"trusted"`
	Accredited bool    `json:"accredited"`
}

type vacancyResponse struct {
	ID                      string           `json:"id"`
	ExternalID              string           `json:"external_id"`
	Name                    string           `json:"name"`
	Url                     string           `json:"url"`
	Employer                employerResponse `json:"employer"`
	Salary                  salaryResponse   `json:"salary"`
	Area                    *string          `json:"area"`
	Schedule                *string          `json:"schedule"`
	Experience              *string          `json:"experience"`
	Employment              *string          `json:"employment"`
	Description             string           `json:"description"`
	KeySkills               []string         `json:"key_skills"`
	ProfessionalRoles       []string         `json:"professional_roles"`
	WorkFormats             []string         `json:"work_formats"`
	ContactsName            *string          `json:"contacts_name"`
	ContactsEmail           *string          `json:"contacts_email"`
	ContactsPhones          []string         `json:"contacts_phones"`
	AcceptHandicapped       bool             `json:"accept_handicapped"`
	AcceptKids              bool             `json:"accept_kids"`
	AcceptTemporary         bool             `json:"accept_temporary"`
	AcceptIncompleteResumes bool             `json:"accept_incomplete_resumes"`
	PublishedAt             *time.Time       `json:"published_at"`
}

type progressResponse struct {
	Status        string    `json:"status"`
	StatusSetDate time.Time `json:"status_set_date"`
}

type savedVacancyResponse struct {
	ExternalID    string                   `json:"external_id"`
	Vacancy       vacancyResponse          `json:"vacancy"`
	CurrentStatus string                   `json:"current_status"`
	SavedAt       time.Time                `json:"saved_at"`
	Progress      []progressResponse       `json:"progress"`
	Notes         string                   `json:"notes"`
	Checklist     []entities.ChecklistItem `json:"checklist"`
}

type listResponse struct {
	Items []savedVacancyResponse `json:"items"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

func toVacancyResponse(vacancy *entities.Vacancy) vacancyResponse {
	return vacancyResponse{
		ID:         vacancy.ID,
		ExternalID: vacancy.ExternalID,
		Name:       vacancy.Name,
		Url:        vacancy.Url,
		Employer: employerResponse{
			ID:         vacancy.EmployerID,
			Name:       vacancy.EmployerName,
			LogoUrl:    vacancy.EmployerLogoUrl,
			Trusted:    vacancy.EmployerTrusted,
			Accredited: vacancy.EmployerAccredited,
		},
		Salary: salaryResponse{
			From:     vacancy.SalaryFrom,
			To:       vacancy.SalaryTo,
			Currency: vacancy.SalaryCurrency,
			Gross:    vacancy.SalaryGross,
		},
		Area:                    vacancy.AreaName,
		Schedule:                vacancy.Schedule,
		Experience:              vacancy.Experience,
		Employment:              vacancy.Employment,
		Description:             vacancy.Description,
		KeySkills:               vacancy.KeySkillsAsArray(),
		ProfessionalRoles:       vacancy.ProfessionalRolesAsArray(),
		WorkFormats:             vacancy.WorkFormatsAsArray(),
		ContactsName:            vacancy.ContactsName,
		ContactsEmail:           vacancy.ContactsEmail,
		ContactsPhones:          vacancy.ContactsPhonesAsArray(),
		AcceptHandicapped:       vacancy.AcceptHandicapped,
		AcceptKids:              vacancy.AcceptKids,
		AcceptTemporary:         vacancy.AcceptTemporary,
		AcceptIncompleteResumes: vacancy.AcceptIncompleteResumes,
		PublishedAt:             vacancy.PublishedAt,
	}
}

func toSavedVacancyResponse(entry *entities.SavedVacancy) savedVacancyResponse {
	return savedVacancyResponse{
		ExternalID:    entry.ExternalID,
		Vacancy:       toVacancyResponse(&entry.Vacancy),
		CurrentStatus: string(entry.CurrentStatus()),
		SavedAt:       entry.SavedAt(),
		Progress: lo.Map(entry.Progress, func(progress entities.ProgressEntry, _ int) progressResponse {
			return progressResponse{
				Status:        string(progress.Status),
				StatusSetDate: progress.StatusSetDate,
			}
		}),
		Notes:     entry.Notes,
		Checklist: entry.ChecklistItems(),
	}
}
