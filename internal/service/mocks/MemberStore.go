package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// MemberStore is an autogenerated mock type for the MemberStore type
type MemberStore struct {
	mock.Mock
}

// Add provides a mock function with given fields: ctx, m
func (_m *MemberStore) Add(ctx context.Context, m *models.Member) (*models.Member, error) {
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

// ListByTeam provides a mock function with given fields: ctx, teamID
func (_m *MemberStore) ListByTeam(ctx context.Context, teamID int) ([]*models.Employee, error) {
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

// GetByID provides a mock function with given fields: ctx, teamID, memberID
func (_m *MemberStore) GetByID(ctx context.Context, teamID int, memberID int) (*models.Employee, error) {
	ret := _m.Called(ctx, teamID, memberID)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *models.Employee
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) (*models.Employee, error)); ok {
		return rf(ctx, teamID, memberID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *models.Employee); ok {
		r0 = rf(ctx, teamID, memberID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Employee)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, teamID, memberID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, m
func (_m *MemberStore) Update(ctx context.Context, m *models.Member) (*models.Member, error) {
	ret := _m.Called(ctx, m)

	if len(ret) == 0 {
		panic("no return value specified for Update")
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

// Delete provides a mock function with given fields: ctx, teamID, memberID
func (_m *MemberStore) Delete(ctx context.Context, teamID int, memberID int) (*models.Member, error) {
	ret := _m.Called(ctx, teamID, memberID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *models.Member
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) (*models.Member, error)); ok {
		return rf(ctx, teamID, memberID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *models.Member); ok {
		r0 = rf(ctx, teamID, memberID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Member)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, teamID, memberID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMemberStore creates a new instance of MemberStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMemberStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MemberStore {
	mock := &MemberStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
