package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/maxaizer/hh-tracker/internal/entities"
	"gorm.io/gorm"
)

type Vacancies struct {
	db *gorm.DB
}

func NewVacanciesRepository(db *gorm.DB) *Vacancies {
	return &Vacancies{db: db}
}

// FindValidByExternalID returns a permanent row or a non-expired cache row
// for the external id, or nil when none exists. The TTL is checked here at
// read time: correctness never depends on expired rows being reaped promptly.
func (v *Vacancies) FindValidByExternalID(ctx context.Context, externalID string) (*entities.Vacancy, error) {
	var vacancy entities.Vacancy
	err := v.db.WithContext(ctx).
		Where("external_id = ? AND (cache_expires_at IS NULL OR cache_expires_at > ?)", externalID, time.Now().UTC()).
		Order("created_at").
		First(&vacancy).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vacancy, nil
}

// FindCacheRowByExternalID returns the cache row for the external id even if
// it has already expired, or nil when there is none.
func (v *Vacancies) FindCacheRowByExternalID(ctx context.Context, externalID string) (*entities.Vacancy, error) {
	var vacancy entities.Vacancy
	err := v.db.WithContext(ctx).
		Where("external_id = ? AND cache_expires_at IS NOT NULL", externalID).
		First(&vacancy).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vacancy, nil
}

func (v *Vacancies) GetByID(ctx context.Context, id string) (*entities.Vacancy, error) {
	var vacancy entities.Vacancy
	err := v.db.WithContext(ctx).First(&vacancy, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vacancy, nil
}

func (v *Vacancies) Create(ctx context.Context, vacancy *entities.Vacancy) error {
	return v.db.WithContext(ctx).Create(vacancy).Error
}

// MakePermanent unsets the expiry, promoting a cache row into a snapshot.
func (v *Vacancies) MakePermanent(ctx context.Context, id string) error {
	return v.db.WithContext(ctx).Model(&entities.Vacancy{}).Where("id = ?", id).
		Update("cache_expires_at", nil).Error
}

// UpdateFields overwrites the payload of the row addressed by internal id,
// leaving the id and the cache/permanent flag untouched. Returns the number
// of affected rows so the caller can detect a vanished id.
func (v *Vacancies) UpdateFields(ctx context.Context, id string, fields *entities.Vacancy) (int64, error) {
	res := v.db.WithContext(ctx).Model(&entities.Vacancy{}).Where("id = ?", id).
		Select("*").
		Omit("id", "cache_expires_at", "created_at").
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (v *Vacancies) Delete(ctx context.Context, id string) error {
	return v.db.WithContext(ctx).Delete(&entities.Vacancy{}, "id = ?", id).Error
}

// RemoveExpired reaps cache rows whose TTL has passed. Permanent snapshots
// have no expiry and are never touched here.
func (v *Vacancies) RemoveExpired(ctx context.Context, now time.Time) (int64, error) {
	res := v.db.WithContext(ctx).Delete(&entities.Vacancy{}, "cache_expires_at IS NOT NULL AND cache_expires_at < ?", now)
	return res.RowsAffected, res.Error
}
