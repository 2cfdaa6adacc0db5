package models

import "time"

// Task is an internal to-do item, unrelated to clients and bookings.
type Task struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null;default:''"`
	DueDate   string `gorm:"index;not null;default:''"`
	Priority  string `gorm:"not null;default:Media"`
	Done      bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}
