package services

import "github.com/terzostudio/gestionale/internal/db"

// GroupBookingsByDate folds a flat, date-ordered booking list into a
// date-string keyed map for calendar rendering. Relative order within a day
// is preserved.
func GroupBookingsByDate(bookings []db.BookingRecord) map[string][]db.BookingRecord {
	byDay := make(map[string][]db.BookingRecord, len(bookings))
	for _, booking := range bookings {
		byDay[booking.Date] = append(byDay[booking.Date], booking)
	}
	return byDay
}
