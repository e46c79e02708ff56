// Package services содержит публикацию событий аудита административной
// панели во внешнюю систему доставки уведомлений.
package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ifelse01-debug/subpool-admin/internal/lib/sl"
	"github.com/ifelse01-debug/subpool-admin/internal/models"
	"github.com/ifelse01-debug/subpool-admin/internal/rabbitmq"
)

// AuditService публикует события аудита в RabbitMQ. Доставка до чата —
// забота внешнего воркера-потребителя очереди.
type AuditService struct {
	ch  rabbitmq.Channel
	log *slog.Logger
}

// NewAuditService создает новый экземпляр AuditService.
func NewAuditService(ch rabbitmq.Channel, log *slog.Logger) *AuditService {
	return &AuditService{
		ch:  ch,
		log: log,
	}
}

// Record публикует событие аудита. Сбой публикации пишется в лог
// и не блокирует обрабатываемый запрос.
func (s *AuditService) Record(action, subject, remoteAddr string) {
	const op = "services.audit.Record"

	event := models.AuditEvent{
		ID:         uuid.New().String(),
		Action:     action,
		Subject:    subject,
		RemoteAddr: remoteAddr,
		Timestamp:  time.Now().UTC(),
	}

	if err := rabbitmq.Publish(s.ch, rabbitmq.AuditExchange, rabbitmq.AuditRoutingKey, event); err != nil {
		s.log.Warn("failed to publish audit event",
			slog.String("op", op),
			slog.String("action", action),
			sl.Err(err))
		return
	}
	s.log.Info("audit event published",
		slog.String("action", action),
		slog.String("event_id", event.ID))
}
