package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/fundraiser/internal/config"
	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/metrics"
	"github.com/GlebRadaev/fundraiser/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	batchLimit    = 1000
	workers       = 10
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

type EventSource interface {
	FindForDispatch(ctx context.Context, limit uint32) ([]domain.Event, error)
	MarkDispatched(ctx context.Context, id int64) error
}

// Envelope is the body posted to the observer webhook.
type Envelope struct {
	ID        int64           `json:"id"`
	Seq       int64           `json:"seq"`
	Type      string          `json:"type"`
	Campaign  string          `json:"campaign"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Service pushes undispatched events to the observer webhook. Delivery is at
// least once: an event is marked only after the webhook acknowledged it.
type Service struct {
	url            string
	events         EventSource
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
	metrics        *metrics.DispatchMetrics
	inFlight       sync.Map
}

func New(cfg *config.Config, events EventSource, client clients.HTTPClientI, m *metrics.DispatchMetrics) *Service {
	return &Service{
		url:            cfg.WebhookURL,
		events:         events,
		client:         client,
		limit:          batchLimit,
		workerPool:     NewWorkerPool(workers),
		updateInterval: time.Second * 5,
		metrics:        m,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("event dispatcher started", zap.String("webhook", s.url))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping event dispatcher")
			return
		case <-ticker.C:
			s.dispatchEvents(ctx)
		}
	}
}

func (s *Service) dispatchEvents(ctx context.Context) {
	events, err := s.events.FindForDispatch(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch events for dispatch", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, event := range events {
		if _, loaded := s.inFlight.LoadOrStore(event.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(event.ID)
				return s.handleEvent(ctx, event)
			})
			if err != nil {
				s.inFlight.Delete(event.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching events", zap.Error(err))
	}
}

func (s *Service) handleEvent(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(Envelope{
		ID:        event.ID,
		Seq:       event.Seq,
		Type:      string(event.Type),
		Campaign:  event.CampaignAddress,
		Payload:   event.Payload,
		CreatedAt: event.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode event %d: %w", event.ID, err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Idempotency-Key", strconv.FormatInt(event.ID, 10))

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, _, respHeaders, err := s.client.Post(s.url, headers, body)
		if err != nil {
			zap.L().Warn("webhook unreachable, retrying", zap.Int64("event", event.ID), zap.Int("attempt", attempt), zap.Error(err))
			if waitErr := s.wait(ctx, retryInterval*time.Duration(attempt)); waitErr != nil {
				return waitErr
			}
			continue
		}

		switch {
		case statusCode == http.StatusTooManyRequests:
			retryAfter := retryDelay(respHeaders, attempt)
			zap.L().Warn("rate limit detected, retrying",
				zap.Int64("event", event.ID),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", retryAfter),
			)
			if waitErr := s.wait(ctx, retryAfter); waitErr != nil {
				return waitErr
			}
		case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
			if err := s.events.MarkDispatched(ctx, event.ID); err != nil {
				return fmt.Errorf("failed to mark event %d dispatched: %w", event.ID, err)
			}
			s.observe(event, "ok")
			return nil
		case statusCode >= http.StatusInternalServerError:
			zap.L().Warn("webhook failed, retrying", zap.Int64("event", event.ID), zap.Int("status", statusCode))
			if waitErr := s.wait(ctx, retryInterval*time.Duration(attempt)); waitErr != nil {
				return waitErr
			}
		default:
			s.observe(event, "rejected")
			return fmt.Errorf("%w %d for event %d", ErrUnexpectedStatus, statusCode, event.ID)
		}
	}

	s.observe(event, "failed")
	return fmt.Errorf("failed to dispatch event %d after %d retries", event.ID, maxRetries)
}

func (s *Service) observe(event domain.Event, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.Events.WithLabelValues(string(event.Type), status).Inc()
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func retryDelay(headers http.Header, attempt int) time.Duration {
	retryAfter := retryInterval * time.Duration(attempt)
	if value := headers.Get("Retry-After"); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	return retryAfter
}
