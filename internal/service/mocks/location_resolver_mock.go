package mocks

import (
	"context"

	"event-lifecycle-service/internal/model"

	"github.com/stretchr/testify/mock"
)

type LocationResolverMock struct {
	mock.Mock
}

func NewLocationResolverMock() *LocationResolverMock {
	return &LocationResolverMock{}
}

func (m *LocationResolverMock) Resolve(ctx context.Context, latitude, longitude float64) (*model.Location, error) {
	args := m.Called(ctx, latitude, longitude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}
