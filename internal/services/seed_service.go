package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/terzostudio/gestionale/internal/db"
	"github.com/terzostudio/gestionale/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	DemoUsername = "demo1"
	DemoPassword = "demo123"

	demoClientCount  = 20
	demoBookingCount = 20
	demoTaskCount    = 10

	// Fixed source so repeated seeding of a fresh database produces the
	// same rows.
	demoRandomSeed = 20240601
)

// SeedService fills empty tables with representative demo data. It is wired
// only behind the SEED_DEMO_DATA configuration flag and never runs on an
// ordinary process start.
type SeedService struct {
	repositories *db.Repositories
	location     *time.Location
}

func NewSeedService(repositories *db.Repositories, location *time.Location) *SeedService {
	if location == nil {
		location = time.Local
	}
	return &SeedService{repositories: repositories, location: location}
}

func (service *SeedService) SeedDemoData() error {
	if err := service.seedDemoUser(); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	random := rand.New(rand.NewSource(demoRandomSeed))
	if err := service.seedDemoClients(random); err != nil {
		return fmt.Errorf("seed demo clients: %w", err)
	}
	if err := service.seedDemoBookings(random); err != nil {
		return fmt.Errorf("seed demo bookings: %w", err)
	}
	if err := service.seedDemoTasks(random); err != nil {
		return fmt.Errorf("seed demo tasks: %w", err)
	}
	return nil
}

func (service *SeedService) seedDemoUser() error {
	if _, err := service.repositories.Users.FindByUsername(DemoUsername); err == nil {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.repositories.Users.Create(&models.User{
		Username:     DemoUsername,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().In(service.location),
	})
}

func (service *SeedService) seedDemoClients(random *rand.Rand) error {
	count, err := service.repositories.Stats.CountClients()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	statuses := models.ClientStatuses()
	priorities := models.Priorities()
	sources := models.ClientSources()
	now := time.Now().In(service.location)

	for i := 1; i <= demoClientCount; i++ {
		client := models.Client{
			Name:         fmt.Sprintf("Cliente %d", i),
			Email:        fmt.Sprintf("cliente%d@mail.com", i),
			Phone:        fmt.Sprintf("333000%03d", i),
			Status:       statuses[random.Intn(len(statuses))],
			Priority:     priorities[random.Intn(len(priorities))],
			Source:       sources[random.Intn(len(sources))],
			Value:        float64(300 + random.Intn(5701)),
			Notes:        "Nota demo: cliente di esempio.",
			CreatedAt:    now.AddDate(0, 0, -random.Intn(121)),
			LastContact:  now.AddDate(0, 0, -random.Intn(41)).Format("2006-01-02"),
			NextFollowup: now.AddDate(0, 0, 1+random.Intn(40)).Format("2006-01-02"),
		}
		if err := service.repositories.Clients.Create(&client); err != nil {
			return err
		}
	}
	return nil
}

func (service *SeedService) seedDemoBookings(random *rand.Rand) error {
	existing, err := service.repositories.Bookings.List(db.BookingFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	refs, err := service.repositories.Clients.NameIndex()
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return nil
	}

	services := []string{"Consulenza Strategica", "Onboarding", "Revisione Report", "Meeting", "Supporto"}
	statuses := models.BookingStatuses()
	now := time.Now().In(service.location)

	for i := 1; i <= demoBookingCount; i++ {
		booking := models.Booking{
			ClientID:  refs[random.Intn(len(refs))].ID,
			Date:      now.AddDate(0, 0, random.Intn(41)-10).Format("2006-01-02"),
			Time:      fmt.Sprintf("%02d:%02d", 9+random.Intn(10), []int{0, 15, 30, 45}[random.Intn(4)]),
			Service:   services[random.Intn(len(services))],
			Amount:    float64(50 + random.Intn(851)),
			Status:    statuses[random.Intn(len(statuses))],
			Notes:     "Nota demo prenotazione.",
			CreatedAt: now,
		}
		if err := service.repositories.Bookings.Create(&booking); err != nil {
			return err
		}
	}
	return nil
}

func (service *SeedService) seedDemoTasks(random *rand.Rand) error {
	count, err := service.repositories.Tasks.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	priorities := models.Priorities()
	now := time.Now().In(service.location)

	for i := 1; i <= demoTaskCount; i++ {
		task := models.Task{
			Title:     fmt.Sprintf("Task demo %d", i),
			DueDate:   now.AddDate(0, 0, i).Format("2006-01-02"),
			Priority:  priorities[random.Intn(len(priorities))],
			Done:      false,
			CreatedAt: now,
		}
		if err := service.repositories.Tasks.Create(&task); err != nil {
			return err
		}
	}
	return nil
}
