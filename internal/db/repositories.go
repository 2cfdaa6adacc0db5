package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Clients  *ClientRepository
	Bookings *BookingRepository
	Tasks    *TaskRepository
	Stats    *StatsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Clients:  NewClientRepository(database),
		Bookings: NewBookingRepository(database),
		Tasks:    NewTaskRepository(database),
		Stats:    NewStatsRepository(database),
	}
}
