package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atlas/config"
	kafkaMocks "atlas/infras/kafka/mocks"
	"atlas/infras/otel/mocks"
	auditMocks "atlas/internal/domains/audit/mocks"
	"atlas/internal/domains/audit/model"
	"atlas/internal/domains/audit/model/dto"
	"atlas/internal/domains/audit/service"
	gDto "atlas/shared/dto"
)

func newAuditService(t *testing.T, auditTopic string) (service.Audit, *auditMocks.MockAudit, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := auditMocks.NewMockAudit(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.AuditTopic = auditTopic

	svc := service.New(mockRepo, cfg, mockKafka, mocks.NewOtel())

	return svc, mockRepo, mockKafka
}

func TestAuditService_Log(t *testing.T) {
	req := dto.LogRequest{
		ActionType: model.ActionDelete,
		TableName:  "tours",
		RecordID:   "tour-id",
		Details:    "removed discontinued tour",
	}

	t.Run("persists and publishes", func(t *testing.T) {
		svc, mockRepo, mockKafka := newAuditService(t, "audit-events")

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "audit-events", gomock.Any()).
			Return(nil)

		svc.Log(context.Background(), req)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("insert failure is swallowed", func(t *testing.T) {
		svc, mockRepo, mockKafka := newAuditService(t, "audit-events")

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		assert.NotPanics(t, func() {
			svc.Log(context.Background(), req)
		})

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("publish retries transient broker failures", func(t *testing.T) {
		svc, mockRepo, mockKafka := newAuditService(t, "audit-events")

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		gomock.InOrder(
			mockKafka.EXPECT().
				SendMessages(gomock.Any(), "audit-events", gomock.Any()).
				Return(errors.New("broker unavailable")).
				Times(2),
			mockKafka.EXPECT().
				SendMessages(gomock.Any(), "audit-events", gomock.Any()).
				Return(nil),
		)

		svc.Log(context.Background(), req)

		time.Sleep(2 * time.Second)
	})

	t.Run("publish failure is swallowed after retries", func(t *testing.T) {
		svc, mockRepo, mockKafka := newAuditService(t, "audit-events")

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("broker unavailable")).
			AnyTimes()

		assert.NotPanics(t, func() {
			svc.Log(context.Background(), req)
		})

		time.Sleep(2 * time.Second)
	})

	t.Run("no topic configured skips publishing", func(t *testing.T) {
		svc, mockRepo, _ := newAuditService(t, "")

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		svc.Log(context.Background(), req)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestAuditService_List(t *testing.T) {
	t.Run("returns paged logs", func(t *testing.T) {
		svc, mockRepo, _ := newAuditService(t, "")

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.AuditLog{
				{ID: "log-1", ActionType: model.ActionCreate, TableName: "tours"},
				{ID: "log-2", ActionType: model.ActionDelete, TableName: "events"},
			}, nil)

		res, err := svc.List(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.Logs, 2)
		assert.Equal(t, model.ActionCreate, res.Logs[0].ActionType)
	})

	t.Run("count failure", func(t *testing.T) {
		svc, mockRepo, _ := newAuditService(t, "")

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.List(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}
