package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// InvitationAcceptor is an autogenerated mock type for the InvitationAcceptor type
type InvitationAcceptor struct {
	mock.Mock
}

// GetPending provides a mock function with given fields: ctx, id, email
func (_m *InvitationAcceptor) GetPending(ctx context.Context, id int, email string) (*models.Invitation, error) {
	ret := _m.Called(ctx, id, email)

	if len(ret) == 0 {
		panic("no return value specified for GetPending")
	}

	var r0 *models.Invitation
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string) (*models.Invitation, error)); ok {
		return rf(ctx, id, email)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string) *models.Invitation); ok {
		r0 = rf(ctx, id, email)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Invitation)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string) error); ok {
		r1 = rf(ctx, id, email)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MarkAccepted provides a mock function with given fields: ctx, id
func (_m *InvitationAcceptor) MarkAccepted(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for MarkAccepted")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewInvitationAcceptor creates a new instance of InvitationAcceptor. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewInvitationAcceptor(t interface {
	mock.TestingT
	Cleanup(func())
}) *InvitationAcceptor {
	mock := &InvitationAcceptor{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
