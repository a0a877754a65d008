package audit

import "time"

// Actions recorded for admin activity.
const (
	ActionLogin       = "login"
	ActionLoginFailed = "login_failed"
	ActionDelete      = "delete"
	ActionExport      = "export"
)

const ResourceSubmission = "submission"

// AuditLog is one admin action against the intake data.
type AuditLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
	Actor        string    `json:"actor" gorm:"size:100;index"`
	Action       string    `json:"action" gorm:"size:50;index"`
	ResourceType string    `json:"resource_type" gorm:"size:50"`
	ResourceID   string    `json:"resource_id" gorm:"size:64"`
	IPAddress    string    `json:"ip_address" gorm:"size:64"`
	UserAgent    string    `json:"user_agent"`
	Description  string    `json:"description" gorm:"type:text"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
