package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/hh-tracker/internal/clients/hh"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

func (s *Server) searchVacancies(c *gin.Context) {

	var query searchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := hh.SearchParameters{
		Text:           query.Text,
		AreaID:         query.AreaID,
		Experience:     hh.Experience(query.Experience),
		Schedules:      lo.Map(query.Schedules, func(s string, _ int) hh.Schedule { return hh.Schedule(s) }),
		SalaryFrom:     query.SalaryFrom,
		OnlyWithSalary: query.OnlyWithSalary,
		Page:           query.Page,
		PerPage:        query.PerPage,
	}

	page, err := s.store.Search(params)
	if err != nil {
		if errors.Is(err, hh.ErrTooDeepPagination) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (s *Server) getVacancy(c *gin.Context) {

	vacancy, err := s.store.GetOrFetch(c.Request.Context(), c.Param("externalId"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toVacancyResponse(vacancy))
}

func (s *Server) getDictionaries(c *gin.Context) {

	dictionaries, err := s.store.Dictionaries()
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", dictionaries)
}
