package services

import (
	"encoding/json"
	"testing"

	"github.com/maxaizer/hh-tracker/internal/clients/hh"
	"github.com/maxaizer/hh-tracker/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type mockHhClient struct {
	mock.Mock
}

func (m *mockHhClient) SearchVacancies(parameters hh.SearchParameters) (*hh.SearchPage, error) {
	args := m.Called(parameters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hh.SearchPage), args.Error(1)
}

func (m *mockHhClient) GetVacancy(id string) (*hh.Vacancy, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hh.Vacancy), args.Error(1)
}

func (m *mockHhClient) GetDictionaries() (json.RawMessage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func newTestDbContext(t *testing.T) *repositories.DbContext {
	t.Helper()

	dbCtx, err := repositories.NewDbContext(":memory:")
	if err != nil {
		t.Fatalf("could not create db context: %v", err)
	}

	// a pooled second connection would see its own empty in-memory db
	sqlDB, err := dbCtx.DB.DB()
	if err != nil {
		t.Fatalf("could not get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err = dbCtx.Migrate(); err != nil {
		t.Fatalf("could not migrate db: %v", err)
	}

	t.Cleanup(func() { _ = dbCtx.Close() })
	return dbCtx
}

func rawVacancy(id, name string) *hh.Vacancy {
	salaryFrom := 100000
	return &hh.Vacancy{
		VacancyPreview: hh.VacancyPreview{
			ID:       id,
			Name:     name,
			Url:      "https://hh.ru/vacancy/" + id,
			Employer: &hh.Employer{ID: "1455", Name: "HeadHunter", Trusted: true},
			Salary:   &hh.Salary{From: &salaryFrom, Currency: "RUR"},
			Area:     &hh.Area{ID: "1", Name: "Москва"},
		},
		Description: "test description",
		KeySkills:   []hh.KeySkill{{Name: "Go"}},
	}
}
