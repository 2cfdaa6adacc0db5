package db

import (
	"github.com/terzostudio/gestionale/internal/models"
	"gorm.io/gorm"
)

const (
	clientListLimit      = 200
	clientNameIndexLimit = 500
)

type ClientRepository struct {
	database *gorm.DB
}

func NewClientRepository(database *gorm.DB) *ClientRepository {
	return &ClientRepository{database: database}
}

// ClientFilter narrows the client listing. Filters combine conjunctively;
// the free-text query matches name, email or phone as a substring.
type ClientFilter struct {
	Query    string
	Status   string
	Priority string
}

// ClientRef is the minimal id+name projection used to populate selection
// controls on the bookings page.
type ClientRef struct {
	ID   uint
	Name string
}

func (repo *ClientRepository) List(filter ClientFilter) ([]models.Client, error) {
	query := repo.database.Model(&models.Client{})
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", pattern, pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	clients := make([]models.Client, 0)
	if err := query.Order("created_at DESC").Limit(clientListLimit).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (repo *ClientRepository) FindByID(clientID uint) (models.Client, error) {
	var client models.Client
	if err := repo.database.First(&client, clientID).Error; err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (repo *ClientRepository) Create(client *models.Client) error {
	return repo.database.Create(client).Error
}

// Update mutates every editable field in a single conditional UPDATE and
// reports how many rows matched, so callers can distinguish a missing id
// without a separate existence check.
func (repo *ClientRepository) Update(clientID uint, client models.Client) (int64, error) {
	result := repo.database.Model(&models.Client{}).Where("id = ?", clientID).Updates(map[string]any{
		"name":          client.Name,
		"email":         client.Email,
		"phone":         client.Phone,
		"status":        client.Status,
		"priority":      client.Priority,
		"source":        client.Source,
		"value":         client.Value,
		"notes":         client.Notes,
		"last_contact":  client.LastContact,
		"next_followup": client.NextFollowup,
	})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteWithBookings removes the client's bookings and then the client row
// inside one transaction, so a crash cannot leave orphaned bookings behind.
func (repo *ClientRepository) DeleteWithBookings(clientID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", clientID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Client{}, clientID).Error
	})
}

func (repo *ClientRepository) NameIndex() ([]ClientRef, error) {
	refs := make([]ClientRef, 0)
	if err := repo.database.Model(&models.Client{}).
		Select("id", "name").
		Order("name ASC").
		Limit(clientNameIndexLimit).
		Scan(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}
