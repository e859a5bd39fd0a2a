package entities

import (
	"strings"
	"time"
)

// Vacancy is a stored posting document. A row with CacheExpiresAt set is a
// short-lived cache entry of an external lookup; a row without it is a
// permanent snapshot owned by a saved-vacancy entry. Promotion from cache to
// permanent unsets the field, it is never set to a zero time.
type Vacancy struct {
	ID         string `gorm:"primaryKey"`
	ExternalID string `gorm:"index"`
	Name       string
	Url        string

	EmployerID         *string
	EmployerName       *string
	EmployerLogoUrl    *string
	EmployerTrusted    bool
	EmployerAccredited bool

	SalaryFrom     *int
	SalaryTo       *int
	SalaryCurrency *string
	SalaryGross    *bool

	AreaName    *string
	Schedule    *string
	Experience  *string
	Employment  *string
	Description string

	KeySkills         string
	ProfessionalRoles string
	WorkFormats       string

	ContactsName   *string
	ContactsEmail  *string
	ContactsPhones string

	AcceptHandicapped       bool
	AcceptKids              bool
	AcceptTemporary         bool
	AcceptIncompleteResumes bool

	PublishedAt    *time.Time
	CacheExpiresAt *time.Time `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (v *Vacancy) IsCacheEntry() bool {
	return v.CacheExpiresAt != nil
}

func (v *Vacancy) KeySkillsAsArray() []string {
	return splitList(v.KeySkills)
}

func (v *Vacancy) ProfessionalRolesAsArray() []string {
	return splitList(v.ProfessionalRoles)
}

func (v *Vacancy) WorkFormatsAsArray() []string {
	return splitList(v.WorkFormats)
}

func (v *Vacancy) ContactsPhonesAsArray() []string {
	return splitList(v.ContactsPhones)
}

const listSeparator = "\x1f"

func JoinList(items []string) string {
	return strings.Join(items, listSeparator)
}

func splitList(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, listSeparator)
}
