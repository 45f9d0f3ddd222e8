package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atlas/config"
	"atlas/infras/otel/mocks"
	bookingMocks "atlas/internal/domains/booking/mocks"
	"atlas/internal/domains/booking/model"
	"atlas/internal/domains/booking/model/dto"
	"atlas/internal/domains/booking/service"
	cacheMocks "atlas/shared/cache/mocks"
	"atlas/shared/constant"
)

func strPtr(s string) *string {
	return &s
}

func newBookingService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestCalculateTotalRevenue(t *testing.T) {
	tests := []struct {
		name     string
		bookings []model.Booking
		want     float64
	}{
		{
			name:     "empty sequence",
			bookings: nil,
			want:     0,
		},
		{
			name: "only confirmed or completed paid bookings count",
			bookings: []model.Booking{
				{Status: constant.BookingStatusConfirmed, PaymentStatus: constant.PaymentStatusPaid, TotalPrice: 100},
				{Status: constant.BookingStatusCompleted, PaymentStatus: constant.PaymentStatusPaid, TotalPrice: 250},
				{Status: constant.BookingStatusCancelled, PaymentStatus: constant.PaymentStatusPaid, TotalPrice: 999},
				{Status: constant.BookingStatusConfirmed, PaymentStatus: constant.PaymentStatusRefunded, TotalPrice: 999},
			},
			want: 350,
		},
		{
			name: "pending booking contributes zero regardless of payment status",
			bookings: []model.Booking{
				{Status: constant.BookingStatusPending, PaymentStatus: constant.PaymentStatusPaid, TotalPrice: 500},
				{Status: constant.BookingStatusPending, PaymentStatus: constant.PaymentStatusPending, TotalPrice: 500},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.CalculateTotalRevenue(tt.bookings))
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		TourID:        strPtr("tour-id"),
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		TravelDate:    time.Now().Add(72 * time.Hour),
		TotalPrice:    150,
	}

	tests := []struct {
		name        string
		setupMock   func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		wantOutcome string
		wantReason  bool
		wantID      string
	}{
		{
			name: "full insert succeeds",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantOutcome: dto.OutcomeCreated,
		},
		{
			name: "full insert fails, essential insert succeeds",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("column constraint violation"))

				repo.EXPECT().
					InsertEssential(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantOutcome: dto.OutcomeCreatedMinimal,
		},
		{
			name: "both inserts fail, placeholder returned",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))

				repo.EXPECT().
					InsertEssential(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantOutcome: dto.OutcomeFailedPlaceholder,
			wantReason:  true,
			wantID:      dto.PlaceholderID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newBookingService(t)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res := svc.Create(ctx, req)

			time.Sleep(10 * time.Millisecond)

			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.NotEmpty(t, res.Booking.Reference)
			assert.Equal(t, "Jane Doe", res.Booking.CustomerName)

			if tt.wantReason {
				assert.NotEmpty(t, res.FailureReason)
				assert.Equal(t, tt.wantID, res.Booking.ID)
			} else {
				assert.Empty(t, res.FailureReason)
				assert.NotEqual(t, dto.PlaceholderID, res.Booking.ID)
			}
		})
	}
}

func TestBookingService_TotalRevenue(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		want      float64
		wantErr   bool
	}{
		{
			name: "sums eligible bookings",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						{Status: constant.BookingStatusConfirmed, PaymentStatus: constant.PaymentStatusPaid, TotalPrice: 120},
						{Status: constant.BookingStatusCompleted, PaymentStatus: constant.PaymentStatusPaid, TotalPrice: 80},
					}, nil)
			},
			want: 200,
		},
		{
			name: "repository error",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newBookingService(t)
			tt.setupMock(mockRepo, mockCache)

			got, err := svc.TotalRevenue(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		id        string
		setupMock func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful status transition",
			req: dto.UpdateBookingRequest{
				Status:        constant.BookingStatusConfirmed,
				PaymentStatus: constant.PaymentStatusPaid,
			},
			id: "booking-id",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
						assert.Equal(t, constant.BookingStatusConfirmed, fields[model.FieldStatus])
						assert.Contains(t, fields, constant.FieldModifiedAt)

						return nil
					})

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			req: dto.UpdateBookingRequest{
				Status: constant.BookingStatusConfirmed,
			},
			id: "nonexistent",
			setupMock: func(repo *bookingMocks.MockBooking, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newBookingService(t)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
