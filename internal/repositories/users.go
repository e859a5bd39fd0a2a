package repositories

import (
	"context"
	"errors"

	"github.com/maxaizer/hh-tracker/internal/entities"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (r *Users) EnsureExists(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).FirstOrCreate(&entities.User{}, entities.User{ID: id}).Error
}

func (r *Users) Exists(ctx context.Context, id string) (bool, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
