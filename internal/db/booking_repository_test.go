package db

import (
	"testing"

	"github.com/terzostudio/gestionale/internal/models"
)

func TestBookingListJoinsClientNameAndKeepsOrphans(t *testing.T) {
	repositories, _ := newTestRepositories(t)

	client := models.Client{Name: "Studio Neri"}
	if err := repositories.Clients.Create(&client); err != nil {
		t.Fatalf("create client: %v", err)
	}
	owned := models.Booking{ClientID: client.ID, Date: "2026-06-01", Time: "09:00", Service: "Meeting"}
	orphan := models.Booking{ClientID: 0, Date: "2026-06-02", Time: "10:00", Service: "Supporto"}
	for _, booking := range []models.Booking{owned, orphan} {
		record := booking
		if err := repositories.Bookings.Create(&record); err != nil {
			t.Fatalf("create booking: %v", err)
		}
	}

	rows, err := repositories.Bookings.List(BookingFilter{})
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// newest date first
	if rows[0].Service != "Supporto" || rows[0].ClientName != "" {
		t.Fatalf("orphan booking should list with an empty client name, got %+v", rows[0])
	}
	if rows[1].Service != "Meeting" || rows[1].ClientName != "Studio Neri" {
		t.Fatalf("owned booking should carry the client name, got %+v", rows[1])
	}
}

func TestBookingListQueryMatchesClientNameOrService(t *testing.T) {
	repositories, _ := newTestRepositories(t)

	client := models.Client{Name: "Galleria Moderna"}
	if err := repositories.Clients.Create(&client); err != nil {
		t.Fatalf("create client: %v", err)
	}
	for _, booking := range []models.Booking{
		{ClientID: client.ID, Date: "2026-06-03", Time: "09:00", Service: "Consulenza"},
		{ClientID: 0, Date: "2026-06-04", Time: "10:00", Service: "Onboarding"},
	} {
		record := booking
		if err := repositories.Bookings.Create(&record); err != nil {
			t.Fatalf("create booking: %v", err)
		}
	}

	byClientName, err := repositories.Bookings.List(BookingFilter{Query: "Galleria"})
	if err != nil {
		t.Fatalf("list by client name: %v", err)
	}
	if len(byClientName) != 1 || byClientName[0].Service != "Consulenza" {
		t.Fatalf("expected the client name match, got %+v", byClientName)
	}

	byService, err := repositories.Bookings.List(BookingFilter{Query: "Onboard"})
	if err != nil {
		t.Fatalf("list by service: %v", err)
	}
	if len(byService) != 1 || byService[0].Service != "Onboarding" {
		t.Fatalf("expected the service match, got %+v", byService)
	}
}

func TestBookingListForMonthUsesDatePrefix(t *testing.T) {
	repositories, _ := newTestRepositories(t)

	for _, booking := range []models.Booking{
		{Date: "2026-06-20", Time: "09:00", Service: "Giugno tardi"},
		{Date: "2026-06-05", Time: "10:00", Service: "Giugno presto"},
		{Date: "2026-07-01", Time: "11:00", Service: "Luglio"},
	} {
		record := booking
		if err := repositories.Bookings.Create(&record); err != nil {
			t.Fatalf("create booking: %v", err)
		}
	}

	rows, err := repositories.Bookings.ListForMonth("2026-06")
	if err != nil {
		t.Fatalf("list for month: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 June bookings, got %d", len(rows))
	}
	if rows[0].Service != "Giugno presto" || rows[1].Service != "Giugno tardi" {
		t.Fatalf("expected chronological order within the month, got %+v", rows)
	}
}

func TestBookingUpdateStatusOnMissingIDAffectsNoRows(t *testing.T) {
	repositories, _ := newTestRepositories(t)

	booking := models.Booking{Date: "2026-06-06", Time: "09:00", Status: models.BookingStatusPending}
	if err := repositories.Bookings.Create(&booking); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	affected, err := repositories.Bookings.UpdateStatus(99999, models.BookingStatusCancelled)
	if err != nil {
		t.Fatalf("update missing booking: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows affected, got %d", affected)
	}

	affected, err = repositories.Bookings.UpdateStatus(booking.ID, models.BookingStatusCancelled)
	if err != nil {
		t.Fatalf("update booking: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}
}
