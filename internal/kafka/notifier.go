package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gunvolt24/sku_upload/internal/domain"
	"github.com/Gunvolt24/sku_upload/internal/ports"
	"github.com/Gunvolt24/sku_upload/pkg/ctxmeta"
	"github.com/Gunvolt24/sku_upload/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Notifier удовлетворяет интерфейсу CompletionNotifier.
var _ ports.CompletionNotifier = (*Notifier)(nil)

// writer — минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// CompletionEvent — сообщение о завершении прогона в топике уведомлений.
type CompletionEvent struct {
	RunID     string            `json:"runId"`
	SessionID string            `json:"sessionId"`
	Status    domain.RunStatus  `json:"status"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Severity  domain.Severity   `json:"severity"`
	Errors    []domain.RowError `json:"errors"`
}

// Notifier — публикует уведомления о завершении прогонов; ключ сообщения — id прогона.
type Notifier struct {
	writer writer
	topic  string
	log    ports.Logger
}

func NewNotifier(cfg *ProducerConfig, log ports.Logger) *Notifier {
	return &Notifier{writer: cfg.Writer(), topic: cfg.Topic, log: log}
}

// Notify — одно сообщение на прогон, без повторов сверх встроенных в kafka.Writer.
func (n *Notifier) Notify(ctx context.Context, run *domain.Run) error {
	errs := run.Result.Errors
	if errs == nil {
		errs = []domain.RowError{}
	}
	payload, err := json.Marshal(CompletionEvent{
		RunID:     run.ID,
		SessionID: run.SessionID,
		Status:    run.Status,
		Title:     run.Completion.Title,
		Message:   run.Completion.Message,
		Severity:  run.Completion.Severity,
		Errors:    errs,
	})
	if err != nil {
		return fmt.Errorf("marshal completion: %w", err)
	}

	msg := kafka.Message{Key: []byte(run.ID), Value: payload}
	if requestID, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		msg.Headers = append(msg.Headers, kafka.Header{Key: headerRequestID, Value: []byte(requestID)})
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		metrics.KafkaMessagesProduced.WithLabelValues(n.topic, "error").Inc()
		return fmt.Errorf("write completion: %w", err)
	}
	metrics.KafkaMessagesProduced.WithLabelValues(n.topic, "ok").Inc()
	n.log.Debugf(ctx, "completion published severity=%s", run.Completion.Severity)
	return nil
}

func (n *Notifier) Close() error { return n.writer.Close() }
