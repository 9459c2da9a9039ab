package nats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/resilience"
	"github.com/nats-io/nats.go"
)

const (
	DefaultSubject    = "documents.added"
	DefaultQueueGroup = "analyzers"

	publishOperation = "nats.publish_document_added"
)

// Queue carries document-added events over a NATS subject.
type Queue struct {
	conn       *nats.Conn
	subject    string
	queueGroup string
	executor   *resilience.Executor
	logger     *slog.Logger
}

type Options struct {
	ClientName         string
	QueueGroup         string
	ConnectTimeout     time.Duration
	ReconnectWait      time.Duration
	MaxReconnects      int
	ResilienceExecutor *resilience.Executor
	Logger             *slog.Logger
}

func Connect(url, subject string, options Options) (*Queue, error) {
	if subject == "" {
		subject = DefaultSubject
	}
	if options.ClientName == "" {
		options.ClientName = "document-analyzer"
	}
	if options.QueueGroup == "" {
		options.QueueGroup = DefaultQueueGroup
	}
	if options.ConnectTimeout <= 0 {
		options.ConnectTimeout = 2 * time.Second
	}
	if options.ReconnectWait <= 0 {
		options.ReconnectWait = 2 * time.Second
	}
	if options.MaxReconnects <= 0 {
		options.MaxReconnects = 60
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := nats.Connect(
		url,
		nats.Name(options.ClientName),
		nats.Timeout(options.ConnectTimeout),
		nats.ReconnectWait(options.ReconnectWait),
		nats.MaxReconnects(options.MaxReconnects),
		nats.RetryOnFailedConnect(true),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats_disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats_reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Queue{
		conn:       conn,
		subject:    subject,
		queueGroup: options.QueueGroup,
		executor:   options.ResilienceExecutor,
		logger:     logger,
	}, nil
}

func (q *Queue) Close() {
	if q.conn != nil {
		q.conn.Close()
	}
}

func (q *Queue) PublishDocumentAdded(ctx context.Context, doc domain.Document) error {
	payload, err := encodeDocumentAdded(doc, time.Now())
	if err != nil {
		return err
	}

	call := func(context.Context) error {
		if err := q.conn.Publish(q.subject, payload); err != nil {
			return fmt.Errorf("nats publish: %w", err)
		}
		return nil
	}

	if q.executor != nil {
		err = q.executor.Execute(ctx, publishOperation, call, classifyNATSError)
	} else {
		err = call(ctx)
	}
	return wrapTemporaryIfNeeded(err)
}

const drainTimeout = 10 * time.Second

// SubscribeDocumentAdded blocks until ctx is done, handing every decoded
// event to handler. Undecodable messages are logged and skipped. On
// cancellation the subscription is drained: messages already delivered are
// still handled, and the call returns only once the drain has finished.
func (q *Queue) SubscribeDocumentAdded(ctx context.Context, handler func(context.Context, domain.Document) error) error {
	handlerCtx := context.WithoutCancel(ctx)
	sub, err := q.conn.QueueSubscribe(q.subject, q.queueGroup, func(msg *nats.Msg) {
		q.deliver(handlerCtx, msg, handler)
	})
	if err != nil {
		return fmt.Errorf("nats subscribe: %w", err)
	}

	if err := q.conn.Flush(); err != nil {
		return fmt.Errorf("nats flush: %w", err)
	}

	<-ctx.Done()
	if err := sub.Drain(); err != nil {
		return fmt.Errorf("nats drain subscription: %w", err)
	}
	waitCtx, cancel := context.WithTimeout(handlerCtx, drainTimeout)
	defer cancel()
	if err := awaitDrained(waitCtx, sub.IsValid, 10*time.Millisecond); err != nil {
		return fmt.Errorf("nats drain subscription: %w", err)
	}
	return nil
}

func (q *Queue) deliver(ctx context.Context, msg *nats.Msg, handler func(context.Context, domain.Document) error) {
	event, err := decodeDocumentAdded(msg.Data)
	if err != nil {
		q.logger.Warn("document_event_decode_failed", "subject", msg.Subject, "error", err)
		return
	}

	if err := handler(ctx, event.Document); err != nil {
		q.logger.Error("document_event_handler_failed", "document_id", event.Document.ID, "error", err)
	}
}

// awaitDrained polls until the subscription stops being valid, which happens
// after its last pending message has been handled.
func awaitDrained(ctx context.Context, valid func() bool, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for valid() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("await drain: %w", ctx.Err())
		case <-ticker.C:
		}
	}
	return nil
}
