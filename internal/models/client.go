package models

import "time"

const (
	ClientStatusLead   = "Lead"
	ClientStatusActive = "Attivo"
	ClientStatusLost   = "Perso"

	PriorityHigh   = "Alta"
	PriorityMedium = "Media"
	PriorityLow    = "Bassa"

	SourceSite     = "Sito"
	SourceReferral = "Referral"
	SourceAds      = "Ads"
	SourceEmail    = "Email"
)

// Client is a lead or customer record tracked by the operator.
// LastContact and NextFollowup are opaque YYYY-MM-DD strings; the store
// never interprets them as calendar dates.
type Client struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null;default:''"`
	Email        string `gorm:"not null;default:''"`
	Phone        string `gorm:"not null;default:''"`
	Status       string `gorm:"not null;default:Lead"`
	Priority     string `gorm:"not null;default:Media"`
	Source       string `gorm:"not null;default:Sito"`
	Value        float64
	Notes        string    `gorm:"not null;default:''"`
	CreatedAt    time.Time `gorm:"index"`
	LastContact  string    `gorm:"not null;default:''"`
	NextFollowup string    `gorm:"not null;default:''"`
}

func ClientStatuses() []string {
	return []string{ClientStatusLead, ClientStatusActive, ClientStatusLost}
}

func Priorities() []string {
	return []string{PriorityHigh, PriorityMedium, PriorityLow}
}

func ClientSources() []string {
	return []string{SourceSite, SourceReferral, SourceAds, SourceEmail}
}

// NormalizeClientStatus maps any submitted value onto the closed status set,
// falling back to Lead for unknown input.
func NormalizeClientStatus(raw string) string {
	return normalizeChoice(raw, ClientStatuses(), ClientStatusLead)
}

func NormalizePriority(raw string) string {
	return normalizeChoice(raw, Priorities(), PriorityMedium)
}

func NormalizeClientSource(raw string) string {
	return normalizeChoice(raw, ClientSources(), SourceSite)
}
