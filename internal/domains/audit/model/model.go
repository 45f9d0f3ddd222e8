package model

import "atlas/shared/model"

const (
	TableName  = "admin_logs"
	EntityName = "audit"

	FieldID         = "id"
	FieldActionType = "action_type"
	FieldTableName  = "table_name"
	FieldRecordID   = "record_id"
	FieldDetails    = "details"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type AuditLog struct {
	ID         string `db:"id"`
	ActionType string `db:"action_type"`
	TableName  string `db:"table_name"`
	RecordID   string `db:"record_id"`
	Details    string `db:"details"`
	model.Metadata
}
