package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// MemberLister is an autogenerated mock type for the MemberLister type
type MemberLister struct {
	mock.Mock
}

// ListByTeam provides a mock function with given fields: ctx, teamID
func (_m *MemberLister) ListByTeam(ctx context.Context, teamID int) ([]*models.Employee, error) {
	ret := _m.Called(ctx, teamID)

	if len(ret) == 0 {
		panic("no return value specified for ListByTeam")
	}

	var r0 []*models.Employee
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]*models.Employee, error)); ok {
		return rf(ctx, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []*models.Employee); ok {
		r0 = rf(ctx, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*models.Employee)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMemberLister creates a new instance of MemberLister. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMemberLister(t interface {
	mock.TestingT
	Cleanup(func())
}) *MemberLister {
	mock := &MemberLister{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
