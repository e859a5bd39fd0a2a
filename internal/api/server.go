package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/hh-tracker/internal/clients/hh"
	"github.com/maxaizer/hh-tracker/internal/config"
	"github.com/maxaizer/hh-tracker/internal/services"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Server is the thin collaborator layer in front of the core: it
// authenticates the caller, validates request shapes and translates core
// errors into responses. All domain behavior lives in the services.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	config     config.APIConfig
	store      *services.VacancyStore
	saved      *services.SavedVacancies
}

func NewServer(cfg config.APIConfig, store *services.VacancyStore, saved *services.SavedVacancies) (*Server, error) {

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	server := &Server{
		router: router,
		config: cfg,
		store:  store,
		saved:  saved,
	}
	server.setUpRoutes()
	return server, nil
}

func (s *Server) setUpRoutes() {

	authorized := s.router.Group("/api", authMiddleware(s.config.JWTSecret))

	authorized.GET("/vacancies", s.searchVacancies)
	authorized.GET("/vacancies/:externalId", s.getVacancy)
	authorized.GET("/dictionaries", s.getDictionaries)

	authorized.POST("/saved", s.addSavedVacancy)
	authorized.GET("/saved", s.listSavedVacancies)
	authorized.GET("/saved/:externalId", s.getSavedVacancy)
	authorized.DELETE("/saved/:externalId", s.removeSavedVacancy)
	authorized.POST("/saved/:externalId/refresh", s.refreshSavedVacancy)
	authorized.PUT("/saved/:externalId/progress", s.setProgress)
	authorized.PUT("/saved/:externalId/notes", s.setNotes)
	authorized.PUT("/saved/:externalId/checklist", s.setChecklist)
}

func (s *Server) Run() error {

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: s.router,
	}

	log.Infof("api server is running on port %d", s.config.Port)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// renderError maps the core error taxonomy to status codes: NotFound -> 404,
// upstream failure -> 502 with the upstream status attached, anything
// else -> 500. Errors arrive here unchanged, nothing below downgrades them.
func (s *Server) renderError(c *gin.Context, err error) {

	if errors.Is(err, services.ErrVacancyNotFound) || errors.Is(err, services.ErrSavedVacancyNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var apiErr *hh.ApiError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           "job board request failed",
			"upstream_status": apiErr.StatusCode,
			"upstream_body":   apiErr.Body,
		})
		return
	}

	log.Errorf("unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
