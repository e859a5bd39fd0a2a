package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/hh-tracker/internal/entities"
	"github.com/maxaizer/hh-tracker/internal/services"
	"github.com/samber/lo"
)

func (s *Server) addSavedVacancy(c *gin.Context) {

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := s.saved.Add(c.Request.Context(), userID(c), req.ExternalID)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSavedVacancyResponse(entry))
}

func (s *Server) removeSavedVacancy(c *gin.Context) {

	err := s.saved.Remove(c.Request.Context(), userID(c), c.Param("externalId"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) listSavedVacancies(c *gin.Context) {

	var query listQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := services.ListFilters{
		SortBy:    services.SortBy(query.SortBy),
		SortOrder: services.SortOrder(query.SortOrder),
		Page:      query.Page,
		Limit:     query.Limit,
	}
	if query.Status != "" {
		status := entities.Status(query.Status)
		filters.Status = &status
	}

	entries, total, err := s.saved.List(c.Request.Context(), userID(c), filters)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{
		Items: lo.Map(entries, func(entry entities.SavedVacancy, _ int) savedVacancyResponse {
			return toSavedVacancyResponse(&entry)
		}),
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	})
}

func (s *Server) getSavedVacancy(c *gin.Context) {

	entry, err := s.saved.GetDetail(c.Request.Context(), userID(c), c.Param("externalId"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSavedVacancyResponse(entry))
}

func (s *Server) refreshSavedVacancy(c *gin.Context) {

	entry, err := s.saved.Refresh(c.Request.Context(), userID(c), c.Param("externalId"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSavedVacancyResponse(entry))
}

func (s *Server) setProgress(c *gin.Context) {

	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := entities.ToStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := s.saved.SetProgress(c.Request.Context(), userID(c), c.Param("externalId"), status)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSavedVacancyResponse(entry))
}

func (s *Server) setNotes(c *gin.Context) {

	var req notesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := s.saved.SetNotes(c.Request.Context(), userID(c), c.Param("externalId"), req.Notes)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSavedVacancyResponse(entry))
}

func (s *Server) setChecklist(c *gin.Context) {

	var req checklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := lo.Map(req.Items, func(item checklistItemRequest, _ int) entities.ChecklistItem {
		return entities.ChecklistItem{Text: item.Text, Done: item.Done}
	})

	entry, err := s.saved.SetChecklist(c.Request.Context(), userID(c), c.Param("externalId"), items)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSavedVacancyResponse(entry))
}
