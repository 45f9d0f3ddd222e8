package dto

import (
	"github.com/google/uuid"

	"atlas/internal/domains/audit/model"
	"atlas/shared"
	gDto "atlas/shared/dto"
	gModel "atlas/shared/model"
	"atlas/shared/timezone"
)

type LogRequest struct {
	ActionType string `json:"action_type" validate:"required,oneof=create update delete"`
	TableName  string `json:"table_name"  validate:"required,max=100"`
	RecordID   string `json:"record_id"   validate:"required,max=100"`
	Details    string `json:"details"     validate:"omitempty"`
}

func (l *LogRequest) ToModel(user string) model.AuditLog {
	return model.AuditLog{
		ID:         uuid.NewString(),
		ActionType: l.ActionType,
		TableName:  l.TableName,
		RecordID:   l.RecordID,
		Details:    l.Details,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AuditLogResponse struct {
	ID         string `json:"id"`
	ActionType string `json:"action_type"`
	TableName  string `json:"table_name"`
	RecordID   string `json:"record_id"`
	Details    string `json:"details"`
	gDto.Metadata
}

func (r *AuditLogResponse) FromModel(model model.AuditLog) {
	r.ID = model.ID
	r.ActionType = model.ActionType
	r.TableName = model.TableName
	r.RecordID = model.RecordID
	r.Details = model.Details
	r.Metadata.FromModel(model.Metadata)
}

type GetAuditLogsResponse struct {
	Logs      []AuditLogResponse `json:"logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetAuditLogsResponse) FromModels(models []model.AuditLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]AuditLogResponse, len(models))
	for i, m := range models {
		r.Logs[i].FromModel(m)
	}
}
