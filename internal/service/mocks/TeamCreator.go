package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// TeamCreator is an autogenerated mock type for the TeamCreator type
type TeamCreator struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, name, slug
func (_m *TeamCreator) Create(ctx context.Context, name string, slug string) (*models.Team, error) {
	ret := _m.Called(ctx, name, slug)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *models.Team
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*models.Team, error)); ok {
		return rf(ctx, name, slug)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *models.Team); ok {
		r0 = rf(ctx, name, slug)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Team)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, name, slug)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetMembership provides a mock function with given fields: ctx, userID
func (_m *TeamCreator) GetMembership(ctx context.Context, userID int) (*models.Membership, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetMembership")
	}

	var r0 *models.Membership
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (*models.Membership, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) *models.Membership); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Membership)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewTeamCreator creates a new instance of TeamCreator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTeamCreator(t interface {
	mock.TestingT
	Cleanup(func())
}) *TeamCreator {
	mock := &TeamCreator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
