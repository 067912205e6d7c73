package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// MemberAdder is an autogenerated mock type for the MemberAdder type
type MemberAdder struct {
	mock.Mock
}

// Add provides a mock function with given fields: ctx, m
func (_m *MemberAdder) Add(ctx context.Context, m *models.Member) (*models.Member, error) {
	ret := _m.Called(ctx, m)

	if len(ret) == 0 {
		panic("no return value specified for Add")
	}

	var r0 *models.Member
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Member) (*models.Member, error)); ok {
		return rf(ctx, m)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *models.Member) *models.Member); ok {
		r0 = rf(ctx, m)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Member)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.Member) error); ok {
		r1 = rf(ctx, m)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMemberAdder creates a new instance of MemberAdder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMemberAdder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MemberAdder {
	mock := &MemberAdder{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
