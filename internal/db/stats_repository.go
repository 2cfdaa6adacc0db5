package db

import (
	"github.com/terzostudio/gestionale/internal/models"
	"gorm.io/gorm"
)

const (
	monthlyRevenueLimit    = 12
	dailyBookingCountLimit = 14
)

type StatsRepository struct {
	database *gorm.DB
}

func NewStatsRepository(database *gorm.DB) *StatsRepository {
	return &StatsRepository{database: database}
}

type MonthlyRevenuePoint struct {
	Month string  `gorm:"column:ym" json:"m"`
	Value float64 `gorm:"column:v" json:"v"`
}

type DailyBookingCount struct {
	Date  string `gorm:"column:d" json:"d"`
	Count int64  `gorm:"column:n" json:"n"`
}

func (repo *StatsRepository) CountClients() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Client{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *StatsRepository) CountActiveClients() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Client{}).
		Where("status = ?", models.ClientStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumClientValues totals every client's value; an empty table sums to 0,
// never NULL.
func (repo *StatsRepository) SumClientValues() (float64, error) {
	var total float64
	if err := repo.database.Model(&models.Client{}).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (repo *StatsRepository) StatusBreakdown() (map[string]int64, error) {
	type statusCount struct {
		Status string `gorm:"column:status"`
		N      int64  `gorm:"column:n"`
	}

	rows := make([]statusCount, 0)
	if err := repo.database.Model(&models.Client{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	breakdown := make(map[string]int64, len(rows))
	for _, row := range rows {
		breakdown[row.Status] = row.N
	}
	return breakdown, nil
}

// MonthlyRevenue groups client values by the year-month their record was
// created, ascending, capped at the first 12 distinct months. The key is the
// YYYY-MM prefix of the stored timestamp text, which is stable across the
// datetime encodings sqlite drivers use.
func (repo *StatsRepository) MonthlyRevenue() ([]MonthlyRevenuePoint, error) {
	points := make([]MonthlyRevenuePoint, 0)
	if err := repo.database.Model(&models.Client{}).
		Select("substr(created_at, 1, 7) AS ym, COALESCE(SUM(value), 0) AS v").
		Group("ym").
		Order("ym ASC").
		Limit(monthlyRevenueLimit).
		Scan(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// DailyBookingCounts selects the 14 most recent booking dates, then reorders
// them chronologically for display.
func (repo *StatsRepository) DailyBookingCounts() ([]DailyBookingCount, error) {
	rows := make([]DailyBookingCount, 0)
	if err := repo.database.Model(&models.Booking{}).
		Select("date AS d, COUNT(*) AS n").
		Group("date").
		Order("date DESC").
		Limit(dailyBookingCountLimit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for left, right := 0, len(rows)-1; left < right; left, right = left+1, right-1 {
		rows[left], rows[right] = rows[right], rows[left]
	}
	return rows, nil
}
