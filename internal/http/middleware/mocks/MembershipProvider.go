package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// MembershipProvider is an autogenerated mock type for the MembershipProvider type
type MembershipProvider struct {
	mock.Mock
}

// GetMembership provides a mock function with given fields: ctx, userID
func (_m *MembershipProvider) GetMembership(ctx context.Context, userID int) (*models.Membership, error) {
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

// NewMembershipProvider creates a new instance of MembershipProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMembershipProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MembershipProvider {
	mock := &MembershipProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
