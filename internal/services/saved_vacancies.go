package services

import (
	"context"
	"sort"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/hh-tracker/internal/entities"
	"github.com/maxaizer/hh-tracker/internal/events"
	"github.com/maxaizer/hh-tracker/internal/logger"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

type SortBy string

const (
	SortBySavedDate SortBy = "savedDate"
	SortByName      SortBy = "name"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type ListFilters struct {
	Status    *entities.Status
	SortBy    SortBy
	SortOrder SortOrder
	Page      int
	Limit     int
}

type savedVacancyRepository interface {
	GetByUserAndExternalID(ctx context.Context, userID, externalID string) (*entities.SavedVacancy, error)
	GetByUser(ctx context.Context, userID string) ([]entities.SavedVacancy, error)
	Create(ctx context.Context, entry *entities.SavedVacancy) error
	Delete(ctx context.Context, id uint) error
	AppendProgress(ctx context.Context, id uint, entry entities.ProgressEntry) error
	UpdateNotes(ctx context.Context, id uint, notes string) error
	UpdateChecklist(ctx context.Context, id uint, checklist string) error
}

type userRepository interface {
	EnsureExists(ctx context.Context, id string) error
}

type snapshotStore interface {
	CreatePermanentSnapshot(ctx context.Context, externalID string) (*entities.Vacancy, error)
	Refresh(ctx context.Context, snapshotID, externalID string) (*entities.Vacancy, error)
	Delete(ctx context.Context, snapshotID string) error
}

// SavedVacancies owns the per-user relationship to vacancy snapshots:
// the progress history, notes and checklist of each saved posting.
type SavedVacancies struct {
	entries savedVacancyRepository
	users   userRepository
	store   snapshotStore
	bus     EventBus.Bus
}

func NewSavedVacancies(entries savedVacancyRepository, users userRepository,
	store snapshotStore, bus EventBus.Bus) *SavedVacancies {
	return &SavedVacancies{entries: entries, users: users, store: store, bus: bus}
}

// Add saves a posting for the user. Saving an already-saved external id is a
// no-op returning the existing entry. A new entry always starts with a single
// "saved" progress element.
func (s *SavedVacancies) Add(ctx context.Context, userID, externalID string) (*entities.SavedVacancy, error) {

	if err := s.users.EnsureExists(ctx, userID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to ensure user %v: %v", userID, err)
		return nil, err
	}

	existing, err := s.entries.GetByUserAndExternalID(ctx, userID, externalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	snapshot, err := s.store.CreatePermanentSnapshot(ctx, externalID)
	if err != nil {
		return nil, err
	}

	entry := entities.NewSavedVacancy(userID, *snapshot)
	if err = s.entries.Create(ctx, &entry); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to create saved vacancy: %v", err)
		return nil, err
	}

	s.bus.Publish(events.SavedVacancyAddedTopic, events.SavedVacancyAdded{
		UserID:     userID,
		ExternalID: externalID,
		Name:       snapshot.Name,
	})
	return &entry, nil
}

// Remove deletes the entry and the snapshot it owns. Removing a never-saved
// or already-removed external id succeeds and changes nothing.
func (s *SavedVacancies) Remove(ctx context.Context, userID, externalID string) error {

	entry, err := s.entries.GetByUserAndExternalID(ctx, userID, externalID)
	if err != nil {
		return err
	}
	if entry == nil {
		return nil
	}

	if err = s.store.Delete(ctx, entry.VacancyID); err != nil {
		return err
	}

	if err = s.entries.Delete(ctx, entry.ID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to delete saved vacancy: %v", err)
		return err
	}

	s.bus.Publish(events.SavedVacancyRemovedTopic, events.SavedVacancyRemoved{
		UserID:     userID,
		ExternalID: externalID,
	})
	return nil
}

// List filters by derived current status, sorts and paginates the user's
// saved set. This happens in application logic over the populated entries:
// current status is derived from the history, not stored, so it cannot be
// part of a store-level query. Returns the page and the filtered total.
func (s *SavedVacancies) List(ctx context.Context, userID string, filters ListFilters) ([]entities.SavedVacancy, int, error) {

	entries, err := s.entries.GetByUser(ctx, userID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to list saved vacancies: %v", err)
		return nil, 0, err
	}

	if filters.Status != nil {
		entries = lo.Filter(entries, func(entry entities.SavedVacancy, _ int) bool {
			return entry.CurrentStatus() == *filters.Status
		})
	}

	sortEntries(entries, filters.SortBy, filters.SortOrder)

	total := len(entries)
	return paginate(entries, filters.Page, filters.Limit), total, nil
}

func (s *SavedVacancies) GetDetail(ctx context.Context, userID, externalID string) (*entities.SavedVacancy, error) {
	return s.getExisting(ctx, userID, externalID)
}

// Refresh re-fetches the underlying snapshot of one saved entry, addressed
// by its internal id so that other users' snapshots stay untouched.
func (s *SavedVacancies) Refresh(ctx context.Context, userID, externalID string) (*entities.SavedVacancy, error) {

	entry, err := s.getExisting(ctx, userID, externalID)
	if err != nil {
		return nil, err
	}

	vacancy, err := s.store.Refresh(ctx, entry.VacancyID, entry.ExternalID)
	if err != nil {
		return nil, err
	}

	entry.Vacancy = *vacancy
	return entry, nil
}

// SetProgress appends one history element. Transitions are deliberately not
// validated: any status may follow any other.
func (s *SavedVacancies) SetProgress(ctx context.Context, userID, externalID string, status entities.Status) (*entities.SavedVacancy, error) {

	entry, err := s.getExisting(ctx, userID, externalID)
	if err != nil {
		return nil, err
	}

	progress := entities.ProgressEntry{Status: status, StatusSetDate: time.Now().UTC()}
	if err = s.entries.AppendProgress(ctx, entry.ID, progress); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to append progress: %v", err)
		return nil, err
	}

	entry.Progress = append(entry.Progress, progress)
	return entry, nil
}

// SetNotes replaces the notes wholesale. Length bounds are enforced by the
// caller's validation layer.
func (s *SavedVacancies) SetNotes(ctx context.Context, userID, externalID, notes string) (*entities.SavedVacancy, error) {

	entry, err := s.getExisting(ctx, userID, externalID)
	if err != nil {
		return nil, err
	}

	if err = s.entries.UpdateNotes(ctx, entry.ID, notes); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to update notes: %v", err)
		return nil, err
	}

	entry.Notes = notes
	return entry, nil
}

// SetChecklist replaces the checklist wholesale. Count and item-length
// bounds are enforced by the caller's validation layer.
func (s *SavedVacancies) SetChecklist(ctx context.Context, userID, externalID string, items []entities.ChecklistItem) (*entities.SavedVacancy, error) {

	entry, err := s.getExisting(ctx, userID, externalID)
	if err != nil {
		return nil, err
	}

	checklist, err := entities.SerializeChecklist(items)
	if err != nil {
		return nil, err
	}

	if err = s.entries.UpdateChecklist(ctx, entry.ID, checklist); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to update checklist: %v", err)
		return nil, err
	}

	entry.Checklist = checklist
	return entry, nil
}

func (s *SavedVacancies) getExisting(ctx context.Context, userID, externalID string) (*entities.SavedVacancy, error) {
	entry, err := s.entries.GetByUserAndExternalID(ctx, userID, externalID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to get saved vacancy: %v", err)
		return nil, err
	}
	if entry == nil {
		return nil, errors.Wrapf(ErrSavedVacancyNotFound, "user %v, external id %v", userID, externalID)
	}
	return entry, nil
}

func sortEntries(entries []entities.SavedVacancy, sortBy SortBy, order SortOrder) {

	less := func(a, b *entities.SavedVacancy) bool {
		return a.SavedAt().Before(b.SavedAt())
	}
	if sortBy == SortByName {
		less = func(a, b *entities.SavedVacancy) bool {
			return a.Vacancy.Name < b.Vacancy.Name
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if order == SortDesc {
			return less(&entries[j], &entries[i])
		}
		return less(&entries[i], &entries[j])
	})
}

func paginate(entries []entities.SavedVacancy, page, limit int) []entities.SavedVacancy {

	if limit <= 0 {
		return entries
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * limit
	if start >= len(entries) {
		return []entities.SavedVacancy{}
	}

	end := start + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end]
}
