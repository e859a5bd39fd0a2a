package services

import "github.com/pkg/errors"

var (
	ErrVacancyNotFound      = errors.New("vacancy not found")
	ErrSavedVacancyNotFound = errors.New("saved vacancy not found")
)
