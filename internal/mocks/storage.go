package mocks

import (
	"context"

	"food-console/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RatingCache mocks service.RatingCache.
type RatingCache struct {
	mock.Mock
}

func NewRatingCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *RatingCache {
	return newMock(t, &RatingCache{})
}

func (m *RatingCache) AverageKey(restaurantID string) string {
	return m.Called(restaurantID).String(0)
}

func (m *RatingCache) GetAverage(ctx context.Context, key string) (float64, bool, error) {
	ret := m.Called(ctx, key)
	return ret.Get(0).(float64), ret.Bool(1), ret.Error(2)
}

func (m *RatingCache) SetAverage(ctx context.Context, key string, average float64) error {
	return m.Called(ctx, key, average).Error(0)
}

func (m *RatingCache) Invalidate(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// AuditStore mocks service.AuditStore.
type AuditStore struct {
	mock.Mock
}

func NewAuditStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuditStore {
	return newMock(t, &AuditStore{})
}

func (m *AuditStore) InsertEvent(event *domain.AuditEvent) error {
	return m.Called(event).Error(0)
}

// AuditPublisher mocks service.AuditPublisher.
type AuditPublisher struct {
	mock.Mock
}

func NewAuditPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuditPublisher {
	return newMock(t, &AuditPublisher{})
}

func (m *AuditPublisher) PublishEvent(ctx context.Context, event domain.AuditEvent) error {
	return m.Called(ctx, event).Error(0)
}
