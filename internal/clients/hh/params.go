package hh

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

var ErrTooDeepPagination = errors.New("too deep pagination")

type Experience string

const (
	NoExperience Experience = "noExperience"
	Between1and3 Experience = "between1And3"
	Between3and6 Experience = "between3And6"
	MoreThan6    Experience = "moreThan6"
)

type Schedule string

const (
	FullDay  Schedule = "fullDay"
	Flexible Schedule = "flexible"
	Remote   Schedule = "remote"
)

type SearchParameters struct {
	Text                   string
	AreaID                 string
	Experience             Experience
	Schedules              []Schedule
	SalaryFrom             int
	OnlyWithSalary         bool
	OrderByPublicationTime bool
	Page                   int
	PerPage                int
}

func (s SearchParameters) Validate() error {

	if s.Page < 0 {
		return fmt.Errorf("page must be non-negative")
	}

	if s.PerPage < 0 || s.PerPage > 100 {
		return fmt.Errorf("per page must be between 0 and 100")
	}

	perPage := s.PerPage
	if perPage == 0 {
		perPage = 20
	}

	maxResults := 2000
	maxPage := maxResults / perPage
	if s.Page >= maxPage {
		return ErrTooDeepPagination
	}

	return nil
}

// ToUrlParams skips empty values entirely: the API rejects some
// empty parameters instead of ignoring them.
func (s SearchParameters) ToUrlParams() url.Values {

	params := url.Values{}

	if s.Text != "" {
		params.Add("text", s.Text)
	}

	if s.Experience != "" {
		params.Add("experience", string(s.Experience))
	}

	for _, schedule := range s.Schedules {
		if schedule != "" {
			params.Add("schedule", string(schedule))
		}
	}

	if s.AreaID != "" {
		params.Add("area", s.AreaID)
	}

	if s.SalaryFrom > 0 {
		params.Add("salary", strconv.Itoa(s.SalaryFrom))
	}

	if s.OnlyWithSalary {
		params.Add("only_with_salary", "true")
	}

	if s.OrderByPublicationTime {
		params.Add("order_by", "publication_time")
	}

	params.Add("page", strconv.Itoa(s.Page))
	if s.PerPage > 0 {
		params.Add("per_page", strconv.Itoa(s.PerPage))
	}

	return params
}
