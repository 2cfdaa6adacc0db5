package models

import (
	"strings"
	"time"
)

const (
	BookingStatusConfirmed = "Confermata"
	BookingStatusPending   = "In attesa"
	BookingStatusCancelled = "Annullata"
)

// Booking is a scheduled appointment, optionally tied to a client.
// ClientID 0 means "no client"; Date and Time are opaque YYYY-MM-DD / HH:MM
// strings, not validated for calendar correctness at this layer.
type Booking struct {
	ID        uint   `gorm:"primaryKey"`
	ClientID  uint   `gorm:"index;not null;default:0"`
	Date      string `gorm:"index;not null;default:''"`
	Time      string `gorm:"not null;default:''"`
	Service   string `gorm:"not null;default:''"`
	Amount    float64
	Status    string `gorm:"not null;default:Confermata"`
	Notes     string `gorm:"not null;default:''"`
	CreatedAt time.Time
}

func BookingStatuses() []string {
	return []string{BookingStatusConfirmed, BookingStatusPending, BookingStatusCancelled}
}

func NormalizeBookingStatus(raw string) string {
	return normalizeChoice(raw, BookingStatuses(), BookingStatusConfirmed)
}

func normalizeChoice(raw string, allowed []string, fallback string) string {
	candidate := strings.TrimSpace(raw)
	for _, value := range allowed {
		if candidate == value {
			return value
		}
	}
	return fallback
}
