package mocks

import (
	"context"

	"event-lifecycle-service/internal/model"

	"github.com/stretchr/testify/mock"
)

type LocationRepositoryMock struct {
	mock.Mock
}

func NewLocationRepositoryMock() *LocationRepositoryMock {
	return &LocationRepositoryMock{}
}

func (m *LocationRepositoryMock) FindByCoordinates(ctx context.Context, latitude, longitude float64) (*model.Location, error) {
	args := m.Called(ctx, latitude, longitude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *LocationRepositoryMock) Create(ctx context.Context, latitude, longitude float64) (*model.Location, error) {
	args := m.Called(ctx, latitude, longitude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}
