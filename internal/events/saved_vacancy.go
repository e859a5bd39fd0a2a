package events

var SavedVacancyAddedTopic = "SavedVacancyAddedEvent"
var SavedVacancyRemovedTopic = "SavedVacancyRemovedEvent"

type SavedVacancyAdded struct {
	UserID     string
	ExternalID string
	Name       string
}

type SavedVacancyRemoved struct {
	UserID     string
	ExternalID string
}
