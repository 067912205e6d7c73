package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MemberChecker is an autogenerated mock type for the MemberChecker type
type MemberChecker struct {
	mock.Mock
}

// IsMember provides a mock function with given fields: ctx, teamID, userID
func (_m *MemberChecker) IsMember(ctx context.Context, teamID int, userID int) (bool, error) {
	ret := _m.Called(ctx, teamID, userID)

	if len(ret) == 0 {
		panic("no return value specified for IsMember")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) (bool, error)); ok {
		return rf(ctx, teamID, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) bool); ok {
		r0 = rf(ctx, teamID, userID)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, teamID, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMemberChecker creates a new instance of MemberChecker. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMemberChecker(t interface {
	mock.TestingT
	Cleanup(func())
}) *MemberChecker {
	mock := &MemberChecker{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
