package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// InvitationStore is an autogenerated mock type for the InvitationStore type
type InvitationStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, inv
func (_m *InvitationStore) Create(ctx context.Context, inv *models.Invitation) (*models.Invitation, error) {
	ret := _m.Called(ctx, inv)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *models.Invitation
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Invitation) (*models.Invitation, error)); ok {
		return rf(ctx, inv)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *models.Invitation) *models.Invitation); ok {
		r0 = rf(ctx, inv)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Invitation)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.Invitation) error); ok {
		r1 = rf(ctx, inv)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListByTeam provides a mock function with given fields: ctx, teamID
func (_m *InvitationStore) ListByTeam(ctx context.Context, teamID int) ([]*models.Invitation, error) {
	ret := _m.Called(ctx, teamID)

	if len(ret) == 0 {
		panic("no return value specified for ListByTeam")
	}

	var r0 []*models.Invitation
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]*models.Invitation, error)); ok {
		return rf(ctx, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []*models.Invitation); ok {
		r0 = rf(ctx, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*models.Invitation)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewInvitationStore creates a new instance of InvitationStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewInvitationStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *InvitationStore {
	mock := &InvitationStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
