package entities

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Status string

const (
	StatusSaved     Status = "saved"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
	StatusArchived  Status = "archived"
)

func ToStatus(s string) (Status, error) {
	switch s {
	case string(StatusSaved):
		return StatusSaved, nil
	case string(StatusApplied):
		return StatusApplied, nil
	case string(StatusInterview):
		return StatusInterview, nil
	case string(StatusOffer):
		return StatusOffer, nil
	case string(StatusRejected):
		return StatusRejected, nil
	case string(StatusArchived):
		return StatusArchived, nil
	default:
		return "", errors.Errorf("invalid status: %v", s)
	}
}

// ProgressEntry is one element of a saved vacancy's status history. The
// history is append-only: entries are never edited or removed in place.
type ProgressEntry struct {
	ID             uint `gorm:"primaryKey"`
	SavedVacancyID uint `gorm:"index"`
	Status         Status
	StatusSetDate  time.Time
}

type ChecklistItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// SavedVacancy ties a user to a permanent vacancy snapshot. The entry owns
// the snapshot: snapshots are not shared across users, so removing the entry
// removes the snapshot it points to.
type SavedVacancy struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     string `gorm:"index"`
	ExternalID string
	VacancyID  string
	Vacancy    Vacancy         `gorm:"foreignKey:VacancyID"`
	Progress   []ProgressEntry `gorm:"foreignKey:SavedVacancyID"`
	Notes      string
	Checklist  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewSavedVacancy(userID string, vacancy Vacancy) SavedVacancy {
	return SavedVacancy{
		UserID:     userID,
		ExternalID: vacancy.ExternalID,
		VacancyID:  vacancy.ID,
		Vacancy:    vacancy,
		Progress: []ProgressEntry{
			{Status: StatusSaved, StatusSetDate: time.Now().UTC()},
		},
	}
}

// CurrentStatus is always the status of the last progress element; it is
// derived, never stored redundantly. Creation guarantees a non-empty history.
func (s *SavedVacancy) CurrentStatus() Status {
	return s.Progress[len(s.Progress)-1].Status
}

// SavedAt is the timestamp of the initial "saved" progress element.
func (s *SavedVacancy) SavedAt() time.Time {
	return s.Progress[0].StatusSetDate
}

func (s *SavedVacancy) ChecklistItems() []ChecklistItem {
	if s.Checklist == "" {
		return []ChecklistItem{}
	}

	var items []ChecklistItem
	if err := json.Unmarshal([]byte(s.Checklist), &items); err != nil {
		log.Errorf("failed to unmarshal checklist of saved vacancy %d: %v", s.ID, err)
		return []ChecklistItem{}
	}
	return items
}

func SerializeChecklist(items []ChecklistItem) (string, error) {
	if len(items) == 0 {
		return "", nil
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal checklist")
	}
	return string(raw), nil
}
