package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/internal/infra/queue"
)

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) Insert(ctx context.Context, lead *entity.Lead) (string, error) {
	args := m.Called(ctx, lead)
	return args.String(0), args.Error(1)
}

func (m *MockLeadStore) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Lead), args.Int(1), args.Error(2)
}

func (m *MockLeadStore) Update(ctx context.Context, id string, update entity.LeadUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockLeadStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadStore) DeleteDemo(ctx context.Context, matcher entity.DemoLeadMatcher) (int, error) {
	args := m.Called(ctx, matcher)
	return args.Int(0), args.Error(1)
}

type MockExternalReviewStore struct {
	mock.Mock
}

func (m *MockExternalReviewStore) ListReviews(ctx context.Context, limit int) ([]entity.ExternalReview, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ExternalReview), args.Error(1)
}

func (m *MockExternalReviewStore) ReviewExists(ctx context.Context, reviewID string) (bool, error) {
	args := m.Called(ctx, reviewID)
	return args.Bool(0), args.Error(1)
}

func (m *MockExternalReviewStore) InsertReview(ctx context.Context, review *entity.ExternalReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockServiceRepo struct {
	mock.Mock
}

func (m *MockServiceRepo) ListActive(ctx context.Context) ([]entity.ServiceOffering, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ServiceOffering), args.Error(1)
}

func (m *MockServiceRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceRepo) InsertMany(ctx context.Context, offerings []*entity.ServiceOffering) error {
	args := m.Called(ctx, offerings)
	return args.Error(0)
}

type staticSamples struct{}

func (staticSamples) Samples() []ReviewView {
	return []ReviewView{{AuthorName: "Sample Customer", Rating: 5, Text: "Great service!", RelativeTime: "Recently"}}
}
