package db

import (
	"time"

	"github.com/terzostudio/gestionale/internal/models"
	"gorm.io/gorm"
)

const (
	bookingListLimit       = 200
	clientBookingListLimit = 50
	upcomingBookingLimit   = 6
)

type BookingRepository struct {
	database *gorm.DB
}

func NewBookingRepository(database *gorm.DB) *BookingRepository {
	return &BookingRepository{database: database}
}

// BookingFilter narrows the booking listing; the free-text query matches the
// resolved client name or the service as a substring.
type BookingFilter struct {
	Query  string
	Status string
}

// BookingRecord is a booking row joined with the owning client's name.
// ClientName stays empty when the booking references no (or a deleted) client.
type BookingRecord struct {
	ID         uint
	ClientID   uint
	Date       string
	Time       string
	Service    string
	Amount     float64
	Status     string
	Notes      string
	CreatedAt  time.Time
	ClientName string
}

func (repo *BookingRepository) List(filter BookingFilter) ([]BookingRecord, error) {
	query := repo.database.Table("bookings b").
		Select("b.*, c.name AS client_name").
		Joins("LEFT JOIN clients c ON c.id = b.client_id")
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("c.name LIKE ? OR b.service LIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("b.status = ?", filter.Status)
	}

	rows := make([]BookingRecord, 0)
	if err := query.Order("b.date DESC, b.time DESC").Limit(bookingListLimit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *BookingRepository) ListByClient(clientID uint) ([]BookingRecord, error) {
	rows := make([]BookingRecord, 0)
	if err := repo.database.Table("bookings b").
		Select("b.*, c.name AS client_name").
		Joins("JOIN clients c ON c.id = b.client_id").
		Where("b.client_id = ?", clientID).
		Order("b.date DESC, b.time DESC").
		Limit(clientBookingListLimit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListForMonth returns the month's bookings joined with client names, ordered
// by date then time. The month is matched as a YYYY-MM string prefix of the
// stored date.
func (repo *BookingRepository) ListForMonth(yearMonth string) ([]BookingRecord, error) {
	rows := make([]BookingRecord, 0)
	if err := repo.database.Table("bookings b").
		Select("b.id, b.client_id, b.date, b.time, b.service, b.amount, b.status, b.notes, b.created_at, c.name AS client_name").
		Joins("LEFT JOIN clients c ON c.id = b.client_id").
		Where("b.date LIKE ?", yearMonth+"-%").
		Order("b.date ASC, b.time ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *BookingRepository) Upcoming() ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := repo.database.
		Order("date ASC, time ASC").
		Limit(upcomingBookingLimit).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (repo *BookingRepository) Create(booking *models.Booking) error {
	return repo.database.Create(booking).Error
}

// UpdateStatus sets the status on the given booking. A missing id is not an
// error; zero rows affected is reported to the caller and otherwise ignored.
func (repo *BookingRepository) UpdateStatus(bookingID uint, status string) (int64, error) {
	result := repo.database.Model(&models.Booking{}).Where("id = ?", bookingID).
		Update("status", status)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (repo *BookingRepository) Delete(bookingID uint) error {
	return repo.database.Delete(&models.Booking{}, bookingID).Error
}

func (repo *BookingRepository) CountByClient(clientID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Booking{}).
		Where("client_id = ?", clientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
