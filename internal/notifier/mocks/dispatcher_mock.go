package mocks

import (
	"event-lifecycle-service/internal/model"

	"github.com/stretchr/testify/mock"
)

type DispatcherMock struct {
	mock.Mock
}

func NewDispatcherMock() *DispatcherMock {
	return &DispatcherMock{}
}

func (m *DispatcherMock) Dispatch(event *model.Event) {
	m.Called(event)
}
