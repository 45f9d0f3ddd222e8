package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"atlas/infras/otel"
	"atlas/infras/postgres"
	"atlas/internal/domains/booking/model"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
	"atlas/shared/logger"
	gRepo "atlas/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertEssential(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertEssential writes the booking with the reduced column set only.
// Optional columns (booking_date, travel_date, is_guest) fall back to their
// database defaults. Used as the second tier of the create fallback.
func (repo *repositoryImpl) InsertEssential(ctx context.Context, booking model.Booking) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.InsertEssential", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %s
		(id, reference, tour_id, event_id, customer_name, customer_email, total_price, status, payment_status, created_at, modified_at, created_by, modified_by)
		VALUES (:id, :reference, :tour_id, :event_id, :customer_name, :customer_email, :total_price, :status, :payment_status, :created_at, :modified_at, :created_by, :modified_by)`,
		model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, booking)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert essential booking data: %w", err)
	}

	return nil
}
