package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// ActivityStore is an autogenerated mock type for the ActivityStore type
type ActivityStore struct {
	mock.Mock
}

// Log provides a mock function with given fields: ctx, a
func (_m *ActivityStore) Log(ctx context.Context, a *models.Activity) error {
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

// ListByTeam provides a mock function with given fields: ctx, teamID, limit
func (_m *ActivityStore) ListByTeam(ctx context.Context, teamID int, limit int) ([]*models.Activity, error) {
	ret := _m.Called(ctx, teamID, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListByTeam")
	}

	var r0 []*models.Activity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) ([]*models.Activity, error)); ok {
		return rf(ctx, teamID, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []*models.Activity); ok {
		r0 = rf(ctx, teamID, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*models.Activity)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, teamID, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewActivityStore creates a new instance of ActivityStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewActivityStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ActivityStore {
	mock := &ActivityStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
