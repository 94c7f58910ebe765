package eventservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/pg"
)

// MaxPage bounds a single page of the event log.
const MaxPage = 100

type Repo interface {
	Sequence(ctx context.Context) (int64, error)
	List(ctx context.Context, afterSeq int64, limit uint64) ([]domain.Event, error)
	FindForDispatch(ctx context.Context, limit uint32) ([]domain.Event, error)
	MarkDispatched(ctx context.Context, id int64, at time.Time) error
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// List returns events positioned after afterSeq, in log order. Positions are
// handed out before reading so a page never skips an event that commits late.
func (s *Service) List(ctx context.Context, afterSeq int64, limit uint64) ([]domain.Event, error) {
	if afterSeq < 0 {
		afterSeq = 0
	}
	if limit == 0 || limit > MaxPage {
		limit = MaxPage
	}
	if err := s.sequence(ctx); err != nil {
		return nil, err
	}
	events, err := s.repo.List(ctx, afterSeq, limit)
	if err != nil {
		zap.L().Error("failed to list events", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *Service) FindForDispatch(ctx context.Context, limit uint32) ([]domain.Event, error) {
	if err := s.sequence(ctx); err != nil {
		return nil, err
	}
	events, err := s.repo.FindForDispatch(ctx, limit)
	if err != nil {
		zap.L().Error("failed to fetch events for dispatch", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *Service) MarkDispatched(ctx context.Context, id int64) error {
	if err := s.repo.MarkDispatched(ctx, id, time.Now()); err != nil {
		zap.L().Error("failed to mark event dispatched", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) sequence(ctx context.Context) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		n, err := s.repo.Sequence(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			zap.L().Debug("events sequenced", zap.Int64("count", n))
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to sequence events", zap.Error(err))
		return err
	}
	return nil
}
