package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/maxaizer/hh-tracker/internal/clients/hh"
	"github.com/maxaizer/hh-tracker/internal/entities"
	"github.com/maxaizer/hh-tracker/internal/logger"
	"github.com/maxaizer/hh-tracker/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const dictionariesCacheKey = "dictionaries"

type hhGateway interface {
	SearchVacancies(parameters hh.SearchParameters) (*hh.SearchPage, error)
	GetVacancy(id string) (*hh.Vacancy, error)
	GetDictionaries() (json.RawMessage, error)
}

type vacancyRepository interface {
	FindValidByExternalID(ctx context.Context, externalID string) (*entities.Vacancy, error)
	FindCacheRowByExternalID(ctx context.Context, externalID string) (*entities.Vacancy, error)
	GetByID(ctx context.Context, id string) (*entities.Vacancy, error)
	Create(ctx context.Context, vacancy *entities.Vacancy) error
	MakePermanent(ctx context.Context, id string) error
	UpdateFields(ctx context.Context, id string, fields *entities.Vacancy) (int64, error)
	Delete(ctx context.Context, id string) error
}

// VacancyStore owns the cache/permanent duality of vacancy documents: a
// looked-up vacancy lands as a cache row with a TTL, a saved one as a
// permanent snapshot with no expiry.
type VacancyStore struct {
	vacancies    vacancyRepository
	client       hhGateway
	cacheTTL     time.Duration
	dictionaries *gocache.Cache
}

func NewVacancyStore(vacancies vacancyRepository, client hhGateway, cacheTTLInDays int) *VacancyStore {
	return &VacancyStore{
		vacancies:    vacancies,
		client:       client,
		cacheTTL:     time.Duration(cacheTTLInDays) * 24 * time.Hour,
		dictionaries: gocache.New(time.Hour, 2*time.Hour),
	}
}

// GetOrFetch returns a valid stored document for the external id, fetching
// and caching it when none exists. Callers always see the mapped shape, never
// the raw upstream payload.
func (s *VacancyStore) GetOrFetch(ctx context.Context, externalID string) (*entities.Vacancy, error) {

	existing, err := s.vacancies.FindValidByExternalID(ctx, externalID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to look up vacancy: %v", err)
		return nil, err
	}
	if existing != nil {
		metrics.VacancyCacheHits.Inc()
		return existing, nil
	}
	metrics.VacancyCacheMisses.Inc()

	vacancy, err := s.fetch(externalID)
	if err != nil {
		return nil, err
	}

	// An expired cache row may still be around until the reaper runs; it has
	// to go first or it would collide with the unique cache index.
	stale, err := s.vacancies.FindCacheRowByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if stale != nil {
		if err = s.vacancies.Delete(ctx, stale.ID); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to drop stale cache row: %v", err)
			return nil, err
		}
	}

	expiresAt := time.Now().UTC().Add(s.cacheTTL)
	vacancy.CacheExpiresAt = &expiresAt

	if err = s.vacancies.Create(ctx, vacancy); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to cache vacancy: %v", err)
		return nil, err
	}
	return vacancy, nil
}

// CreatePermanentSnapshot returns a non-expiring document for the external
// id. A still-valid cache row is promoted in place by unsetting its expiry;
// otherwise a fresh row is fetched and inserted. A row that is already
// permanent belongs to another user's save and is deliberately not reused:
// every save owns an independent snapshot.
func (s *VacancyStore) CreatePermanentSnapshot(ctx context.Context, externalID string) (*entities.Vacancy, error) {

	cacheRow, err := s.vacancies.FindCacheRowByExternalID(ctx, externalID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to look up vacancy: %v", err)
		return nil, err
	}

	if cacheRow != nil && cacheRow.CacheExpiresAt.After(time.Now().UTC()) {
		if err = s.vacancies.MakePermanent(ctx, cacheRow.ID); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to promote vacancy: %v", err)
			return nil, err
		}
		cacheRow.CacheExpiresAt = nil
		return cacheRow, nil
	}

	vacancy, err := s.fetch(externalID)
	if err != nil {
		return nil, err
	}

	// An expired cache row holds a stale payload and must not become the
	// snapshot; it gets dropped and replaced with the fresh fetch.
	if cacheRow != nil {
		if err = s.vacancies.Delete(ctx, cacheRow.ID); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to drop stale cache row: %v", err)
			return nil, err
		}
	}

	if err = s.vacancies.Create(ctx, vacancy); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to create snapshot: %v", err)
		return nil, err
	}
	return vacancy, nil
}

// Refresh re-fetches the posting and overwrites the fields of one document
// addressed by its internal id, so refreshing one user's snapshot never
// touches another user's row for the same external id.
func (s *VacancyStore) Refresh(ctx context.Context, snapshotID, externalID string) (*entities.Vacancy, error) {

	fresh, err := s.fetch(externalID)
	if err != nil {
		return nil, err
	}

	rows, err := s.vacancies.UpdateFields(ctx, snapshotID, fresh)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to refresh vacancy: %v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, errors.Wrapf(ErrVacancyNotFound, "snapshot %v", snapshotID)
	}

	return s.vacancies.GetByID(ctx, snapshotID)
}

// Delete removes a document by internal id. Deleting an already-gone id is
// not an error at this layer.
func (s *VacancyStore) Delete(ctx context.Context, snapshotID string) error {
	return s.vacancies.Delete(ctx, snapshotID)
}

// Search is a passthrough to the upstream board; nothing is persisted.
func (s *VacancyStore) Search(parameters hh.SearchParameters) (*hh.SearchPage, error) {
	start := time.Now()
	page, err := s.client.SearchVacancies(parameters)
	metrics.UpstreamRequestDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())
	return page, err
}

// Dictionaries is a passthrough with a short-lived in-process cache.
func (s *VacancyStore) Dictionaries() (json.RawMessage, error) {

	if cached, found := s.dictionaries.Get(dictionariesCacheKey); found {
		return cached.(json.RawMessage), nil
	}

	start := time.Now()
	dictionaries, err := s.client.GetDictionaries()
	metrics.UpstreamRequestDuration.WithLabelValues("dictionaries").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	if cacheErr := s.dictionaries.Add(dictionariesCacheKey, dictionaries, gocache.DefaultExpiration); cacheErr != nil {
		log.Errorf("failed to add dictionaries to cache: %v", cacheErr)
	}
	return dictionaries, nil
}

// fetch retrieves and maps one posting. An upstream 404 means the external
// id does not exist on the board and becomes a domain NotFound; any other
// upstream failure is surfaced with its status intact.
func (s *VacancyStore) fetch(externalID string) (*entities.Vacancy, error) {

	start := time.Now()
	raw, err := s.client.GetVacancy(externalID)
	metrics.UpstreamRequestDuration.WithLabelValues("vacancy").Observe(time.Since(start).Seconds())

	if err != nil {
		var apiErr *hh.ApiError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
			return nil, errors.Wrapf(ErrVacancyNotFound, "external id %v", externalID)
		}
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHhApi).Errorf("failed to fetch vacancy %v: %v", externalID, err)
		return nil, err
	}

	vacancy := vacancyFromApi(*raw)
	vacancy.ID = uuid.NewString()
	return &vacancy, nil
}
