package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type LocationCacheMock struct {
	mock.Mock
}

func NewLocationCacheMock() *LocationCacheMock {
	return &LocationCacheMock{}
}

func (m *LocationCacheMock) GetID(ctx context.Context, latitude, longitude float64) (int64, error) {
	args := m.Called(ctx, latitude, longitude)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LocationCacheMock) SetID(ctx context.Context, latitude, longitude float64, id int64) error {
	args := m.Called(ctx, latitude, longitude, id)
	return args.Error(0)
}
