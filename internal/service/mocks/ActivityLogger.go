package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// ActivityLogger is an autogenerated mock type for the ActivityLogger type
type ActivityLogger struct {
	mock.Mock
}

// Log provides a mock function with given fields: ctx, a
func (_m *ActivityLogger) Log(ctx context.Context, a *models.Activity) error {
	ret := _m.Called(ctx, a)

	if len(ret) == 0 {
		panic("no return value specified for Log")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Activity) error); ok {
		r0 = rf(ctx, a)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewActivityLogger creates a new instance of ActivityLogger. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewActivityLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *ActivityLogger {
	mock := &ActivityLogger{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
