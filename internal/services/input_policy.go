package services

import (
	"strconv"
	"strings"

	"github.com/terzostudio/gestionale/internal/models"
)

// ClientInput carries raw form values for a client create or edit.
type ClientInput struct {
	Name         string
	Email        string
	Phone        string
	Status       string
	Priority     string
	Source       string
	Value        string
	Notes        string
	LastContact  string
	NextFollowup string
}

// BuildClient normalizes raw form input into a storable client. Unknown
// status, priority and source values fall back to their defaults, and an
// unparseable value becomes 0.
func BuildClient(input ClientInput) models.Client {
	return models.Client{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Status:       models.NormalizeClientStatus(input.Status),
		Priority:     models.NormalizePriority(input.Priority),
		Source:       models.NormalizeClientSource(input.Source),
		Value:        ParseCurrency(input.Value),
		Notes:        strings.TrimSpace(input.Notes),
		LastContact:  strings.TrimSpace(input.LastContact),
		NextFollowup: strings.TrimSpace(input.NextFollowup),
	}
}

// BookingInput carries raw form values for a booking create.
type BookingInput struct {
	ClientID string
	Date     string
	Time     string
	Service  string
	Amount   string
	Status   string
	Notes    string
}

// BuildBooking normalizes raw form input into a storable booking. A missing
// or malformed client id means "no client" and is stored as 0 without an
// existence check.
func BuildBooking(input BookingInput) models.Booking {
	return models.Booking{
		ClientID: parseClientID(input.ClientID),
		Date:     strings.TrimSpace(input.Date),
		Time:     strings.TrimSpace(input.Time),
		Service:  strings.TrimSpace(input.Service),
		Amount:   ParseCurrency(input.Amount),
		Status:   models.NormalizeBookingStatus(input.Status),
		Notes:    strings.TrimSpace(input.Notes),
	}
}

// TaskInput carries raw form values for a task create.
type TaskInput struct {
	Title    string
	DueDate  string
	Priority string
}

// BuildTask normalizes raw form input into a storable task. A blank title
// rejects the input: the second return value reports whether a task should
// be created at all.
func BuildTask(input TaskInput) (models.Task, bool) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Task{}, false
	}
	return models.Task{
		Title:    title,
		DueDate:  strings.TrimSpace(input.DueDate),
		Priority: models.NormalizePriority(input.Priority),
		Done:     false,
	}, true
}

// ParseCurrency coerces a decimal form field, defaulting to 0 for anything
// that does not parse.
func ParseCurrency(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

func parseClientID(raw string) uint {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 0 {
		return 0
	}
	return uint(id)
}
