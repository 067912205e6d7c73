package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	api "team-backoffice/internal/http/api"
)

// MockTeamService is an autogenerated mock type for the teamService type
type MockTeamService struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, teamID
func (_m *MockTeamService) Get(ctx context.Context, teamID int) (*api.TeamSchema, error) {
	ret := _m.Called(ctx, teamID)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *api.TeamSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (*api.TeamSchema, error)); ok {
		return rf(ctx, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) *api.TeamSchema); ok {
		r0 = rf(ctx, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.TeamSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateCompany provides a mock function with given fields: ctx, teamID, company
func (_m *MockTeamService) UpdateCompany(ctx context.Context, teamID int, company api.CompanySchema) (*api.TeamSchema, error) {
	ret := _m.Called(ctx, teamID, company)

	if len(ret) == 0 {
		panic("no return value specified for UpdateCompany")
	}

	var r0 *api.TeamSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, api.CompanySchema) (*api.TeamSchema, error)); ok {
		return rf(ctx, teamID, company)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, api.CompanySchema) *api.TeamSchema); ok {
		r0 = rf(ctx, teamID, company)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.TeamSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, api.CompanySchema) error); ok {
		r1 = rf(ctx, teamID, company)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Invite provides a mock function with given fields: ctx, teamID, invitedBy, email, role, ip
func (_m *MockTeamService) Invite(ctx context.Context, teamID int, invitedBy int, email string, role string, ip string) (*api.InvitationSchema, error) {
	ret := _m.Called(ctx, teamID, invitedBy, email, role, ip)

	if len(ret) == 0 {
		panic("no return value specified for Invite")
	}

	var r0 *api.InvitationSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int, string, string, string) (*api.InvitationSchema, error)); ok {
		return rf(ctx, teamID, invitedBy, email, role, ip)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int, string, string, string) *api.InvitationSchema); ok {
		r0 = rf(ctx, teamID, invitedBy, email, role, ip)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.InvitationSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int, string, string, string) error); ok {
		r1 = rf(ctx, teamID, invitedBy, email, role, ip)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Invitations provides a mock function with given fields: ctx, teamID
func (_m *MockTeamService) Invitations(ctx context.Context, teamID int) ([]api.InvitationSchema, error) {
	ret := _m.Called(ctx, teamID)

	if len(ret) == 0 {
		panic("no return value specified for Invitations")
	}

	var r0 []api.InvitationSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]api.InvitationSchema, error)); ok {
		return rf(ctx, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []api.InvitationSchema); ok {
		r0 = rf(ctx, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]api.InvitationSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Activity provides a mock function with given fields: ctx, teamID
func (_m *MockTeamService) Activity(ctx context.Context, teamID int) ([]api.ActivitySchema, error) {
	ret := _m.Called(ctx, teamID)

	if len(ret) == 0 {
		panic("no return value specified for Activity")
	}

	var r0 []api.ActivitySchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]api.ActivitySchema, error)); ok {
		return rf(ctx, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []api.ActivitySchema); ok {
		r0 = rf(ctx, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]api.ActivitySchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockTeamService creates a new instance of MockTeamService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTeamService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTeamService {
	mock := &MockTeamService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
