package eventrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/pg"
)

// eventLogLockKey serializes assignment of log positions.
const eventLogLockKey int64 = 0x6576656e

const (
	appendEventQuery = `
        INSERT INTO events (type, campaign_address, payload, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	lockEventLogQuery = `SELECT pg_advisory_xact_lock($1)`

	// Only rows of transactions older than every in-flight one get a position,
	// so a late commit can never land behind a position already handed out.
	sequenceEventsQuery = `
        UPDATE events e
        SET seq = s.seq
        FROM (
            SELECT id, (SELECT COALESCE(MAX(seq), 0) FROM events) + row_number() OVER (ORDER BY id) AS seq
            FROM events
            WHERE seq IS NULL
              AND txid < pg_snapshot_xmin(pg_current_snapshot())
        ) s
        WHERE e.id = s.id
    `
	listEventsQuery = `
        SELECT id, seq, type, campaign_address::text, payload, created_at, dispatched_at
        FROM events
        WHERE seq > $1
        ORDER BY seq ASC
        LIMIT $2
    `
	findForDispatchQuery = `
        SELECT id, seq, type, campaign_address::text, payload, created_at, dispatched_at
        FROM events
        WHERE dispatched_at IS NULL AND seq IS NOT NULL
        ORDER BY seq ASC
        LIMIT $1
    `
	markDispatchedQuery = `UPDATE events SET dispatched_at = $1 WHERE id = $2`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Append must share the transaction of the state change it records.
func (r *Repository) Append(ctx context.Context, event *domain.Event) error {
	err := r.db.QueryRow(ctx, appendEventQuery,
		string(event.Type),
		event.CampaignAddress,
		event.Payload,
		event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		zap.L().Error("can't append event", zap.String("type", string(event.Type)), zap.Error(err))
		return err
	}
	return nil
}

// Sequence hands out log positions to events whose transactions have finished.
// It must run inside a transaction: the advisory lock is released on commit.
func (r *Repository) Sequence(ctx context.Context) (int64, error) {
	if _, err := r.db.Exec(ctx, lockEventLogQuery, eventLogLockKey); err != nil {
		zap.L().Error("can't lock event log", zap.Error(err))
		return 0, err
	}
	tag, err := r.db.Exec(ctx, sequenceEventsQuery)
	if err != nil {
		zap.L().Error("can't sequence events", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// List returns sequenced events with a position greater than afterSeq.
func (r *Repository) List(ctx context.Context, afterSeq int64, limit uint64) ([]domain.Event, error) {
	return r.query(ctx, listEventsQuery, afterSeq, int64(limit))
}

func (r *Repository) FindForDispatch(ctx context.Context, limit uint32) ([]domain.Event, error) {
	return r.query(ctx, findForDispatchQuery, int64(limit))
}

func (r *Repository) MarkDispatched(ctx context.Context, id int64, at time.Time) error {
	if _, err := r.db.Exec(ctx, markDispatchedQuery, at, id); err != nil {
		zap.L().Error("can't mark event dispatched", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var (
			event     domain.Event
			eventType string
		)
		err := rows.Scan(&event.ID, &event.Seq, &eventType, &event.CampaignAddress, &event.Payload, &event.CreatedAt, &event.DispatchedAt)
		if err != nil {
			zap.L().Error("can't scan event row", zap.Error(err))
			return nil, err
		}
		event.Type = domain.EventType(eventType)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate event rows", zap.Error(err))
		return nil, err
	}
	return events, nil
}
