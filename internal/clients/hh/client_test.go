package hh

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}

func responseFromFile(file string) (*http.Response, error) {
	content, err := os.ReadFile(file)

	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewBuffer(content)),
	}, err
}

func Test_HHClient_SearchVacancies_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://api.hh.ru/vacancies?page=1&per_page=10&"+
			"schedule=fullDay&text=golang"
	})).Return(responseFromFile("testdata/search_vacancies.json"))

	client := NewClient()
	client.SetHTTPClient(mockClient)

	params := SearchParameters{
		Text:      "golang",
		Schedules: []Schedule{FullDay},
		Page:      1,
		PerPage:   10,
	}
	page, err := client.SearchVacancies(params)
	assert.NoError(err)

	assert.Equal(2, page.Found)
	assert.Len(page.Items, 2)
	assert.Equal("107958774", page.Items[0].ID)
	assert.Equal("Junior Golang developer", page.Items[0].Name)
	assert.Nil(page.Items[0].Salary)
	assert.Equal("108122273", page.Items[1].ID)
	assert.NotNil(page.Items[1].Salary)
	assert.Equal(250000, *page.Items[1].Salary.From)
	assert.Nil(page.Items[1].Salary.To)
}

func Test_HHClient_SearchVacancies_ShouldStripEmptyParameters(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://api.hh.ru/vacancies?page=0&text=golang"
	})).Return(responseFromFile("testdata/search_vacancies.json"))

	client := NewClient()
	client.SetHTTPClient(mockClient)

	_, err := client.SearchVacancies(SearchParameters{Text: "golang"})
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func Test_HHClient_GetVacancy_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)
	vacancyID := "108444291"

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://api.hh.ru/vacancies/"+vacancyID
	})).Return(responseFromFile("testdata/get_vacancy.json"))

	client := NewClient()
	client.SetHTTPClient(mockClient)

	vacancy, err := client.GetVacancy(vacancyID)
	assert.NoError(err)
	assert.Equal(vacancyID, vacancy.ID)
	assert.Equal("Junior Go developer", vacancy.Name)
	assert.Equal("HeadHunter", vacancy.Employer.Name)
	assert.Equal(100000, *vacancy.Salary.From)
	assert.Equal(150000, *vacancy.Salary.To)
	assert.False(*vacancy.Salary.Gross)
	assert.Len(vacancy.KeySkills, 2)
	assert.Equal("remote", vacancy.Schedule.ID)
	assert.True(vacancy.AcceptHandicapped)
	assert.NotNil(vacancy.PublishedAt)
}

func Test_HHClient_GetVacancy_ShouldSurfaceUpstreamStatus(t *testing.T) {

	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.Anything).Return(&http.Response{
		StatusCode: 404,
		Body:       io.NopCloser(bytes.NewBufferString(`{"description":"Not Found"}`)),
	}, nil)

	client := NewClient()
	client.SetHTTPClient(mockClient)

	_, err := client.GetVacancy("0")
	assert.Error(err)

	apiErr, ok := err.(*ApiError)
	assert.True(ok)
	assert.Equal(404, apiErr.StatusCode)
	assert.Equal(`{"description":"Not Found"}`, apiErr.Body)
}

func Test_HHClient_GetDictionaries_ShouldBeSuccessful(t *testing.T) {

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://api.hh.ru/dictionaries"
	})).Return(responseFromFile("testdata/dictionaries.json"))

	client := NewClient()
	client.SetHTTPClient(mockClient)

	dictionaries, err := client.GetDictionaries()
	assert.NoError(t, err)
	assert.Contains(t, string(dictionaries), "currency")
}
