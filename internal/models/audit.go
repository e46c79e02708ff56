package models

import "time"

// Действия, фиксируемые в журнале аудита.
const (
	AuditActionLogin           = "login"
	AuditActionLoginFailed     = "login_failed"
	AuditActionLogout          = "logout"
	AuditActionRefresh         = "refresh"
	AuditActionSessionRejected = "session_rejected"
)

// AuditEvent — событие аудита административной панели, публикуемое во
// внешнюю систему доставки уведомлений.
type AuditEvent struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	Subject    string    `json:"subject,omitempty"`
	RemoteAddr string    `json:"remote_addr,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
