package adventure

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mossvale/WildkeeperBot_Go/internal/domain"
)

// MockCharacterRepository
type MockCharacterRepository struct {
	mock.Mock
}

// GetSnapshot implements [repository.Character].
func (m *MockCharacterRepository) GetSnapshot(ctx context.Context, characterID string) (*domain.CharacterSnapshot, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterSnapshot), args.Error(1)
}

func (m *MockCharacterRepository) ApplyResolution(ctx context.Context, characterID string, update domain.CharacterUpdate) error {
	args := m.Called(ctx, characterID, update)
	return args.Error(0)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Items(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalogService) ItemsForJob(ctx context.Context, jobTag string) ([]domain.Item, error) {
	args := m.Called(ctx, jobTag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalogService) Monsters(ctx context.Context) ([]domain.Monster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Monster), args.Error(1)
}

func (m *MockCatalogService) MonstersForRegion(ctx context.Context, region string) ([]domain.Monster, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Monster), args.Error(1)
}

func (m *MockCatalogService) Invalidate() {
	m.Called()
}
