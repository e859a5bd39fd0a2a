package repositories

import (
	"context"
	"errors"

	"github.com/maxaizer/hh-tracker/internal/entities"
	"gorm.io/gorm"
)

type SavedVacancies struct {
	db *gorm.DB
}

func NewSavedVacanciesRepository(db *gorm.DB) *SavedVacancies {
	return &SavedVacancies{db: db}
}

func withProgress(db *gorm.DB) *gorm.DB {
	return db.Order("progress_entries.id")
}

func (r *SavedVacancies) GetByUserAndExternalID(ctx context.Context, userID, externalID string) (*entities.SavedVacancy, error) {
	var entry entities.SavedVacancy
	err := r.db.WithContext(ctx).
		Preload("Vacancy").
		Preload("Progress", withProgress).
		Where("user_id = ? AND external_id = ?", userID, externalID).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *SavedVacancies) GetByUser(ctx context.Context, userID string) ([]entities.SavedVacancy, error) {
	var entries []entities.SavedVacancy
	err := r.db.WithContext(ctx).
		Preload("Vacancy").
		Preload("Progress", withProgress).
		Where("user_id = ?", userID).
		Order("id").
		Find(&entries).Error

	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *SavedVacancies) Create(ctx context.Context, entry *entities.SavedVacancy) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *SavedVacancies) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.ProgressEntry{}, "saved_vacancy_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.SavedVacancy{}, "id = ?", id).Error
	})
}

// AppendProgress adds one history element. Existing elements are never
// updated or deleted through this repository.
func (r *SavedVacancies) AppendProgress(ctx context.Context, id uint, entry entities.ProgressEntry) error {
	entry.SavedVacancyID = id
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *SavedVacancies) UpdateNotes(ctx context.Context, id uint, notes string) error {
	return r.db.WithContext(ctx).Model(&entities.SavedVacancy{}).Where("id = ?", id).
		Update("notes", notes).Error
}

func (r *SavedVacancies) UpdateChecklist(ctx context.Context, id uint, checklist string) error {
	return r.db.WithContext(ctx).Model(&entities.SavedVacancy{}).Where("id = ?", id).
		Update("checklist", checklist).Error
}
