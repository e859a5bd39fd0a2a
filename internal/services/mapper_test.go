package services

import (
	"testing"
	"time"

	"github.com/maxaizer/hh-tracker/internal/clients/hh"
	"github.com/stretchr/testify/assert"
)

func Test_VacancyFromApi_MapsAllFields(t *testing.T) {

	assert := assert.New(t)

	salaryFrom, salaryTo, gross := 100000, 150000, false
	publishedAt := time.Date(2024, 10, 1, 10, 0, 0, 0, time.UTC)

	raw := hh.Vacancy{
		VacancyPreview: hh.VacancyPreview{
			ID:   "108444291",
			Name: "Junior Go developer",
			Url:  "https://hh.ru/vacancy/108444291",
			Employer: &hh.Employer{
				ID:                   "1455",
				Name:                 "HeadHunter",
				LogoUrls:             &hh.LogoUrls{Original: "https://img.hhcdn.ru/logo.png"},
				Trusted:              true,
				AccreditedItEmployer: true,
			},
			Salary:            &hh.Salary{From: &salaryFrom, To: &salaryTo, Currency: "RUR", Gross: &gross},
			Area:              &hh.Area{ID: "1", Name: "Москва"},
			Schedule:          &hh.DictionaryItem{ID: "remote", Name: "Удаленная работа"},
			Experience:        &hh.DictionaryItem{ID: "between1And3", Name: "От 1 года до 3 лет"},
			Employment:        &hh.DictionaryItem{ID: "full", Name: "Полная занятость"},
			ProfessionalRoles: []hh.DictionaryItem{{ID: "96", Name: "Программист, разработчик"}},
			PublishedAt:       &hh.CustomTime{Time: publishedAt},
		},
		Description:             "<p>test</p>",
		KeySkills:               []hh.KeySkill{{Name: "Go"}, {Name: "PostgreSQL"}},
		WorkFormat:              []hh.DictionaryItem{{ID: "REMOTE", Name: "Удалённо"}},
		Contacts:                &hh.Contacts{Name: "Анна", Email: "hr@example.com", Phones: []hh.Phone{{Formatted: "+7 (999) 123-45-67"}}},
		AcceptHandicapped:       true,
		AcceptIncompleteResumes: true,
	}

	vacancy := vacancyFromApi(raw)

	assert.Equal("108444291", vacancy.ExternalID)
	assert.Equal("Junior Go developer", vacancy.Name)
	assert.Equal("HeadHunter", *vacancy.EmployerName)
	assert.Equal("https://img.hhcdn.ru/logo.png", *vacancy.EmployerLogoUrl)
	assert.True(vacancy.EmployerTrusted)
	assert.True(vacancy.EmployerAccredited)
	assert.Equal(100000, *vacancy.SalaryFrom)
	assert.Equal(150000, *vacancy.SalaryTo)
	assert.Equal("RUR", *vacancy.SalaryCurrency)
	assert.False(*vacancy.SalaryGross)
	assert.Equal("Москва", *vacancy.AreaName)
	assert.Equal("remote", *vacancy.Schedule)
	assert.Equal("between1And3", *vacancy.Experience)
	assert.Equal("full", *vacancy.Employment)
	assert.Equal([]string{"Go", "PostgreSQL"}, vacancy.KeySkillsAsArray())
	assert.Equal([]string{"Программист, разработчик"}, vacancy.ProfessionalRolesAsArray())
	assert.Equal([]string{"Удалённо"}, vacancy.WorkFormatsAsArray())
	assert.Equal("Анна", *vacancy.ContactsName)
	assert.Equal("hr@example.com", *vacancy.ContactsEmail)
	assert.Equal([]string{"+7 (999) 123-45-67"}, vacancy.ContactsPhonesAsArray())
	assert.True(vacancy.AcceptHandicapped)
	assert.False(vacancy.AcceptKids)
	assert.True(vacancy.AcceptIncompleteResumes)
	assert.Equal(publishedAt, *vacancy.PublishedAt)
	assert.Nil(vacancy.CacheExpiresAt)
}

// An absent upstream field must stay absent, never a zero value that could
// be mistaken for real data.
func Test_VacancyFromApi_AbsentFieldsStayAbsent(t *testing.T) {

	assert := assert.New(t)

	raw := hh.Vacancy{
		VacancyPreview: hh.VacancyPreview{
			ID:   "100000001",
			Name: "Backend developer",
		},
	}

	vacancy := vacancyFromApi(raw)

	assert.Nil(vacancy.EmployerID)
	assert.Nil(vacancy.EmployerName)
	assert.Nil(vacancy.EmployerLogoUrl)
	assert.Nil(vacancy.SalaryFrom)
	assert.Nil(vacancy.SalaryTo)
	assert.Nil(vacancy.SalaryCurrency)
	assert.Nil(vacancy.SalaryGross)
	assert.Nil(vacancy.AreaName)
	assert.Nil(vacancy.Schedule)
	assert.Nil(vacancy.Experience)
	assert.Nil(vacancy.Employment)
	assert.Nil(vacancy.ContactsName)
	assert.Nil(vacancy.ContactsEmail)
	assert.Nil(vacancy.PublishedAt)
	assert.Empty(vacancy.KeySkillsAsArray())
	assert.Empty(vacancy.ContactsPhonesAsArray())
}
