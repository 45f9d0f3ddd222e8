package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"atlas/internal/domains/booking/model"
	"atlas/shared"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
	gModel "atlas/shared/model"
	"atlas/shared/timezone"
)

// Create outcomes. A booking create never surfaces an error to the caller;
// it degrades through these three tiers instead.
const (
	OutcomeCreated           = "created"
	OutcomeCreatedMinimal    = "created_minimal"
	OutcomeFailedPlaceholder = "failed_placeholder"

	PlaceholderID = "fallback"
)

type CreateBookingRequest struct {
	TourID        *string   `json:"tour_id"        validate:"required_without=EventID,excluded_with=EventID"`
	EventID       *string   `json:"event_id"       validate:"required_without=TourID"`
	CustomerName  string    `json:"customer_name"  validate:"required,max=200"`
	CustomerEmail string    `json:"customer_email" validate:"required,email,max=200"`
	BookingDate   time.Time `json:"booking_date"   validate:"omitempty"`
	TravelDate    time.Time `json:"travel_date"    validate:"required"`
	TotalPrice    float64   `json:"total_price"    validate:"required,min=0"`
	IsGuest       bool      `json:"is_guest"`
}

func (c *CreateBookingRequest) ToModel(user string) model.Booking {
	bookingDate := c.BookingDate
	if bookingDate.IsZero() {
		bookingDate = timezone.Now()
	}

	id := uuid.NewString()

	return model.Booking{
		ID:            id,
		Reference:     NewReference(id),
		TourID:        c.TourID,
		EventID:       c.EventID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		BookingDate:   bookingDate,
		TravelDate:    c.TravelDate,
		TotalPrice:    c.TotalPrice,
		Status:        constant.BookingStatusPending,
		PaymentStatus: constant.PaymentStatusPending,
		IsGuest:       c.IsGuest,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// NewReference derives the human-readable booking reference from the id.
func NewReference(id string) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}

	return "BK-" + strings.ToUpper(short)
}

type UpdateBookingRequest struct {
	CustomerName  string     `db:"customer_name"  json:"customer_name"  validate:"omitempty,max=200"`
	CustomerEmail string     `db:"customer_email" json:"customer_email" validate:"omitempty,email,max=200"`
	TravelDate    *time.Time `db:"travel_date"    json:"travel_date"    validate:"omitempty"`
	TotalPrice    *float64   `db:"total_price"    json:"total_price"    validate:"omitempty,min=0"`
	Status        string     `db:"status"         json:"status"         validate:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus string     `db:"payment_status" json:"payment_status" validate:"omitempty,oneof=pending paid refunded failed"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	Reference     string  `json:"reference"`
	TourID        *string `json:"tour_id,omitempty"`
	EventID       *string `json:"event_id,omitempty"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	BookingDate   string  `json:"booking_date"`
	TravelDate    string  `json:"travel_date"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	IsGuest       bool    `json:"is_guest"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Reference = model.Reference
	r.TourID = model.TourID
	r.EventID = model.EventID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.BookingDate = timezone.Format(model.BookingDate, constant.DateFormat)
	r.TravelDate = timezone.Format(model.TravelDate, constant.DateFormat)
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.IsGuest = model.IsGuest
	r.Metadata.FromModel(model.Metadata)
}

// CreateBookingResponse tags which tier the create landed on. FailureReason
// is only set for the placeholder outcome.
type CreateBookingResponse struct {
	Outcome       string          `json:"outcome"`
	Booking       BookingResponse `json:"booking"`
	FailureReason string          `json:"failure_reason,omitempty"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
