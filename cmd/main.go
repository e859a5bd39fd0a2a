package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/hh-tracker/internal/api"
	"github.com/maxaizer/hh-tracker/internal/clients/hh"
	"github.com/maxaizer/hh-tracker/internal/config"
	"github.com/maxaizer/hh-tracker/internal/events"
	"github.com/maxaizer/hh-tracker/internal/logger"
	"github.com/maxaizer/hh-tracker/internal/metrics"
	"github.com/maxaizer/hh-tracker/internal/repositories"
	"github.com/maxaizer/hh-tracker/internal/services"
	log "github.com/sirupsen/logrus"
)

func subscribeMetrics(bus EventBus.Bus) {

	err := bus.Subscribe(events.SavedVacancyAddedTopic, func(event events.SavedVacancyAdded) {
		metrics.SavedVacanciesAdded.Inc()
		log.Infof("user %v saved vacancy %v (%v)", event.UserID, event.ExternalID, event.Name)
	})
	if err != nil {
		log.Fatalf("can't subscribe to bus: %v", err)
	}

	err = bus.Subscribe(events.SavedVacancyRemovedTopic, func(event events.SavedVacancyRemoved) {
		metrics.SavedVacanciesRemoved.Inc()
		log.Infof("user %v removed vacancy %v", event.UserID, event.ExternalID)
	})
	if err != nil {
		log.Fatalf("can't subscribe to bus: %v", err)
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.API.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	hhClient := hh.NewClient()
	if cfg.HH.MaxRequestsPerSecond > 0 {
		hhClient.SetRateLimit(cfg.HH.MaxRequestsPerSecond)
	}

	vacancies := repositories.NewVacanciesRepository(dbContext.DB)
	savedVacancies := repositories.NewSavedVacanciesRepository(dbContext.DB)
	users := repositories.NewUsersRepository(dbContext.DB)

	bus := EventBus.New()
	subscribeMetrics(bus)

	store := services.NewVacancyStore(vacancies, hhClient, cfg.HH.CacheTTLInDays)
	saved := services.NewSavedVacancies(savedVacancies, users, store, bus)

	cleaner, err := services.NewCacheCleaner(vacancies)
	if err != nil {
		log.Fatalf("can't create cache cleaner: %v", err)
	}
	defer cleaner.Stop()

	server, err := api.NewServer(cfg.API, store, saved)
	if err != nil {
		log.Fatalf("can't create api server: %v", err)
	}

	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("api server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("api server shutdown failed: %v", err)
	}
	log.Info("Services stopped.")
}
