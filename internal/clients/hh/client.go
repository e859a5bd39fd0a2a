package hh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.hh.ru"

// ApiError is a non-2xx answer from the API, kept verbatim so that
// callers can see the upstream status code and body.
type ApiError struct {
	StatusCode int
	Body       string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("request failed with status %v, body: %v", e.StatusCode, e.Body)
}

type SearchPage struct {
	Items   []VacancyPreview `json:"items"`
	Found   int              `json:"found"`
	Pages   int              `json:"pages"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	httpClient  HTTPClient
	baseURL     string
	rateLimiter *rate.Limiter
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) SearchVacancies(parameters SearchParameters) (*SearchPage, error) {

	if err := parameters.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	params := parameters.ToUrlParams()

	body, err := c.sendRequest("GET", c.baseURL+"/vacancies?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var page SearchPage
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&page); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	return &page, nil
}

func (c *Client) GetVacancy(id string) (*Vacancy, error) {

	body, err := c.sendRequest("GET", c.baseURL+"/vacancies/"+id, nil)
	if err != nil {
		return nil, err
	}

	var vacancy Vacancy
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&vacancy); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	return &vacancy, nil
}

// GetDictionaries returns the reference dictionaries (schedules,
// experiences, currencies and so on) as-is, without reshaping.
func (c *Client) GetDictionaries() (json.RawMessage, error) {

	body, err := c.sendRequest("GET", c.baseURL+"/dictionaries", nil)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("dictionaries response is not valid JSON")
	}

	return body, nil
}

func (c *Client) sendRequest(method string, url string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		err := c.rateLimiter.Wait(context.Background())
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ApiError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
