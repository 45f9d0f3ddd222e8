package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"atlas/config"
	"atlas/infras/kafka"
	"atlas/infras/otel"
	"atlas/internal/domains/audit/model"
	"atlas/internal/domains/audit/model/dto"
	"atlas/internal/domains/audit/repository"
	"atlas/shared/constant"
	gDto "atlas/shared/dto"
	"atlas/shared/retry"
)

type Audit interface {
	Log(ctx context.Context, req dto.LogRequest)
	List(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditLogsResponse, error)
}

type serviceImpl struct {
	repo  repository.Audit
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Audit, cfg *config.Config, kafkaClient kafka.Client, otel otel.Otel) Audit {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafkaClient,
		otel:  otel,
	}
}

// Log records an admin action. Auditing must never fail the operation it
// describes, so failures here are logged and swallowed.
func (s *serviceImpl) Log(ctx context.Context, req dto.LogRequest) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Log")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	entry := req.ToModel(user)

	if err := s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).
			Str("action", entry.ActionType).
			Str("table", entry.TableName).
			Str("record", entry.RecordID).
			Msg("failed to persist audit log")
		scope.TraceError(err)
	}

	s.publish(ctx, entry)
}

// publish fans the entry out to the audit topic, best effort and detached.
func (s *serviceImpl) publish(ctx context.Context, entry model.AuditLog) {
	if s.cfg.Kafka.AuditTopic == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   entry.RecordID,
			Value: entry,
		}

		err := retry.Do(c, func() error {
			return s.kafka.SendMessages(c, s.cfg.Kafka.AuditTopic, message)
		})
		if err != nil {
			log.Error().Err(err).Str("topic", s.cfg.Kafka.AuditTopic).Msg("failed to publish audit log")
		}
	}()
}

func (s *serviceImpl) List(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	logs, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(logs, total, req.Limit)

	return res, nil
}
