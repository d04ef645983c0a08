package usecase

import (
	"context"
	"errors"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/pkg/logger"
	"github.com/santoscleaning/website-api/pkg/metrics"
)

// FailoverLeadStore is the durable-write policy for leads: try the
// primary store, fall back to the document store when the primary is
// unconfigured or unreachable. ErrNotFound is a final answer and never
// triggers the fallback. Bookings, site reviews and offerings do not go
// through here; they are wired straight to the fallback store.
type FailoverLeadStore struct {
	Primary  entity.LeadRepositoryInterface // nil when unconfigured
	Fallback entity.LeadRepositoryInterface
	Log      logger.Logger
}

func NewFailoverLeadStore(primary, fallback entity.LeadRepositoryInterface, log logger.Logger) *FailoverLeadStore {
	return &FailoverLeadStore{Primary: primary, Fallback: fallback, Log: log}
}

func (s *FailoverLeadStore) Insert(ctx context.Context, lead *entity.Lead) (string, error) {
	if s.Primary == nil {
		return s.Fallback.Insert(ctx, lead)
	}

	id, err := s.Primary.Insert(ctx, lead)
	if err != nil {
		s.fellBack("insert", err)
		return s.Fallback.Insert(ctx, lead)
	}
	return id, nil
}

func (s *FailoverLeadStore) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, int, error) {
	if s.Primary == nil {
		return s.Fallback.List(ctx, filter)
	}

	leads, total, err := s.Primary.List(ctx, filter)
	if err != nil {
		s.fellBack("list", err)
		return s.Fallback.List(ctx, filter)
	}
	return leads, total, nil
}

func (s *FailoverLeadStore) Update(ctx context.Context, id string, update entity.LeadUpdate) error {
	if s.Primary == nil {
		return s.Fallback.Update(ctx, id, update)
	}

	err := s.Primary.Update(ctx, id, update)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		s.fellBack("update", err)
		return s.Fallback.Update(ctx, id, update)
	}
	return err
}

func (s *FailoverLeadStore) Delete(ctx context.Context, id string) error {
	if s.Primary == nil {
		return s.Fallback.Delete(ctx, id)
	}

	err := s.Primary.Delete(ctx, id)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		s.fellBack("delete", err)
		return s.Fallback.Delete(ctx, id)
	}
	return err
}

func (s *FailoverLeadStore) DeleteDemo(ctx context.Context, matcher entity.DemoLeadMatcher) (int, error) {
	if s.Primary == nil {
		return s.Fallback.DeleteDemo(ctx, matcher)
	}

	count, err := s.Primary.DeleteDemo(ctx, matcher)
	if err != nil {
		s.fellBack("delete_demo", err)
		return s.Fallback.DeleteDemo(ctx, matcher)
	}
	return count, nil
}

func (s *FailoverLeadStore) fellBack(op string, err error) {
	metrics.RecordStoreFallback("leads")
	if s.Log != nil {
		s.Log.Warn("primary store failed, using fallback", "op", op, "error", err)
	}
}
