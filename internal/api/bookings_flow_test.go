package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/terzostudio/gestionale/internal/models"
)

func TestCreateBookingNormalizesUnknownStatus(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "marta", "segreta123")
	sessionCookie := loginAndExtractSessionCookie(t, app, "marta", "segreta123")

	form := url.Values{
		"client_id": {"abc"},
		"date":      {"2026-09-10"},
		"time":      {"15:30"},
		"service":   {"Consulenza Strategica"},
		"amount":    {"120"},
		"status":    {"Forse"},
	}
	requireRedirect(t, postForm(t, app, sessionCookie, "/bookings/new", form), "/bookings")

	var booking models.Booking
	if err := database.Where("date = ?", "2026-09-10").First(&booking).Error; err != nil {
		t.Fatalf("load created booking: %v", err)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected status %q for unknown input, got %q", models.BookingStatusConfirmed, booking.Status)
	}
	if booking.ClientID != 0 {
		t.Fatalf("a malformed client id must be stored as 0, got %d", booking.ClientID)
	}
	if booking.Amount != 120.0 {
		t.Fatalf("expected amount 120.0, got %v", booking.Amount)
	}
}

func TestUpdateBookingStatusOnMissingIDLeavesTableUnchanged(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "marta", "segreta123")
	sessionCookie := loginAndExtractSessionCookie(t, app, "marta", "segreta123")

	booking := models.Booking{Date: "2026-09-11", Time: "09:00", Service: "Meeting", Status: models.BookingStatusPending}
	if err := database.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	form := url.Values{"status": {models.BookingStatusCancelled}}
	requireRedirect(t, postForm(t, app, sessionCookie, "/bookings/9999/status", form), "/bookings")

	var reloaded models.Booking
	if err := database.First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if reloaded.Status != models.BookingStatusPending {
		t.Fatalf("existing booking must be untouched, got status %q", reloaded.Status)
	}
}

func TestUpdateBookingStatusPersistsNewStatus(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "marta", "segreta123")
	sessionCookie := loginAndExtractSessionCookie(t, app, "marta", "segreta123")

	booking := models.Booking{Date: "2026-09-12", Time: "10:00", Service: "Supporto", Status: models.BookingStatusConfirmed}
	if err := database.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	form := url.Values{"status": {models.BookingStatusCancelled}}
	requireRedirect(t, postForm(t, app, sessionCookie, fmt.Sprintf("/bookings/%d/status", booking.ID), form), "/bookings")

	var reloaded models.Booking
	if err := database.First(&reloaded, booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if reloaded.Status != models.BookingStatusCancelled {
		t.Fatalf("expected status %q, got %q", models.BookingStatusCancelled, reloaded.Status)
	}
}

func TestDeleteBookingRemovesRow(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "marta", "segreta123")
	sessionCookie := loginAndExtractSessionCookie(t, app, "marta", "segreta123")

	booking := models.Booking{Date: "2026-09-13", Time: "11:00", Service: "Revisione Report"}
	if err := database.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	requireRedirect(t, postForm(t, app, sessionCookie, fmt.Sprintf("/bookings/%d/delete", booking.ID), url.Values{}), "/bookings")

	var count int64
	if err := database.Model(&models.Booking{}).Count(&count).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no bookings left, found %d", count)
	}
}

func TestBookingListShowsJoinedClientName(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "marta", "segreta123")
	sessionCookie := loginAndExtractSessionCookie(t, app, "marta", "segreta123")

	client := models.Client{Name: "Studio Neri"}
	if err := database.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	booking := models.Booking{ClientID: client.ID, Date: "2026-09-14", Time: "16:00", Service: "Onboarding"}
	if err := database.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	body := smokeGET(t, app, sessionCookie, "/bookings", http.StatusOK)
	if !strings.Contains(body, "Studio Neri") {
		t.Fatal("booking list should show the owning client's name")
	}
}
