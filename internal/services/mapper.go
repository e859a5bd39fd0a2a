package services

import (
	"github.com/maxaizer/hh-tracker/internal/clients/hh"
	"github.com/maxaizer/hh-tracker/internal/entities"
	"github.com/samber/lo"
)

// vacancyFromApi translates the upstream wire shape into the stored document
// shape. The upstream payload is not guaranteed complete, so every optional
// field is guarded: an absent field stays nil and never turns into a zero
// value that could be mistaken for real data.
func vacancyFromApi(raw hh.Vacancy) entities.Vacancy {

	vacancy := entities.Vacancy{
		ExternalID:              raw.ID,
		Name:                    raw.Name,
		Url:                     raw.Url,
		Description:             raw.Description,
		AcceptHandicapped:       raw.AcceptHandicapped,
		AcceptKids:              raw.AcceptKids,
		AcceptTemporary:         raw.AcceptTemporary,
		AcceptIncompleteResumes: raw.AcceptIncompleteResumes,
	}

	if raw.Employer != nil {
		vacancy.EmployerID = &raw.Employer.ID
		vacancy.EmployerName = &raw.Employer.Name
		vacancy.EmployerTrusted = raw.Employer.Trusted
		vacancy.EmployerAccredited = raw.Employer.AccreditedItEmployer
		if raw.Employer.LogoUrls != nil {
			vacancy.EmployerLogoUrl = &raw.Employer.LogoUrls.Original
		}
	}

	if raw.Salary != nil {
		vacancy.SalaryFrom = raw.Salary.From
		vacancy.SalaryTo = raw.Salary.To
		vacancy.SalaryGross = raw.Salary.Gross
		if raw.Salary.Currency != "" {
			vacancy.SalaryCurrency = &raw.Salary.Currency
		}
	}

	if raw.Area != nil {
		vacancy.AreaName = &raw.Area.Name
	}

	if raw.Schedule != nil {
		vacancy.Schedule = &raw.Schedule.ID
	}

	if raw.Experience != nil {
		vacancy.Experience = &raw.Experience.ID
	}

	if raw.Employment != nil {
		vacancy.Employment = &raw.Employment.ID
	}

	if raw.Contacts != nil {
		if raw.Contacts.Name != "" {
			vacancy.ContactsName = &raw.Contacts.Name
		}
		if raw.Contacts.Email != "" {
			vacancy.ContactsEmail = &raw.Contacts.Email
		}
		vacancy.ContactsPhones = entities.JoinList(lo.Map(raw.Contacts.Phones,
			func(phone hh.Phone, _ int) string { return phone.Formatted }))
	}

	vacancy.KeySkills = entities.JoinList(lo.Map(raw.KeySkills,
		func(skill hh.KeySkill, _ int) string { return skill.Name }))
	vacancy.ProfessionalRoles = entities.JoinList(lo.Map(raw.ProfessionalRoles,
		func(role hh.DictionaryItem, _ int) string { return role.Name }))
	vacancy.WorkFormats = entities.JoinList(lo.Map(raw.WorkFormat,
		func(format hh.DictionaryItem, _ int) string { return format.Name }))

	if raw.PublishedAt != nil {
		publishedAt := raw.PublishedAt.Time
		vacancy.PublishedAt = &publishedAt
	}

	return vacancy
}
