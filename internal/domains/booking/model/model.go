package model

import (
	"time"

	"atlas/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldReference     = "reference"
	FieldTourID        = "tour_id"
	FieldEventID       = "event_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldBookingDate   = "booking_date"
	FieldTravelDate    = "travel_date"
	FieldTotalPrice    = "total_price"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldIsGuest       = "is_guest"
)

// Booking links to exactly one of TourID or EventID. The exclusivity is a
// convention enforced at the request layer, not by the schema.
type Booking struct {
	ID            string    `db:"id"`
	Reference     string    `db:"reference"`
	TourID        *string   `db:"tour_id"`
	EventID       *string   `db:"event_id"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	BookingDate   time.Time `db:"booking_date"`
	TravelDate    time.Time `db:"travel_date"`
	TotalPrice    float64   `db:"total_price"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	IsGuest       bool      `db:"is_guest"`
	model.Metadata
}
