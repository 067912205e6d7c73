package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	api "team-backoffice/internal/http/api"
)

// MockEmployeeService is an autogenerated mock type for the employeeService type
type MockEmployeeService struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, teamID
func (_m *MockEmployeeService) List(ctx context.Context, teamID int) ([]api.EmployeeSchema, error) {
	ret := _m.Called(ctx, teamID)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []api.EmployeeSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]api.EmployeeSchema, error)); ok {
		return rf(ctx, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []api.EmployeeSchema); ok {
		r0 = rf(ctx, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]api.EmployeeSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Get provides a mock function with given fields: ctx, teamID, memberID
func (_m *MockEmployeeService) Get(ctx context.Context, teamID int, memberID int) (*api.EmployeeSchema, error) {
	ret := _m.Called(ctx, teamID, memberID)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *api.EmployeeSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) (*api.EmployeeSchema, error)); ok {
		return rf(ctx, teamID, memberID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *api.EmployeeSchema); ok {
		r0 = rf(ctx, teamID, memberID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.EmployeeSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, teamID, memberID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, teamID, req
func (_m *MockEmployeeService) Create(ctx context.Context, teamID int, req api.CreateEmployeeRequest) (*api.EmployeeSchema, error) {
	ret := _m.Called(ctx, teamID, req)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *api.EmployeeSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, api.CreateEmployeeRequest) (*api.EmployeeSchema, error)); ok {
		return rf(ctx, teamID, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, api.CreateEmployeeRequest) *api.EmployeeSchema); ok {
		r0 = rf(ctx, teamID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.EmployeeSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, api.CreateEmployeeRequest) error); ok {
		r1 = rf(ctx, teamID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, teamID, memberID, fields
func (_m *MockEmployeeService) Update(ctx context.Context, teamID int, memberID int, fields api.EmployeeFields) (*api.EmployeeSchema, error) {
	ret := _m.Called(ctx, teamID, memberID, fields)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *api.EmployeeSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int, api.EmployeeFields) (*api.EmployeeSchema, error)); ok {
		return rf(ctx, teamID, memberID, fields)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int, api.EmployeeFields) *api.EmployeeSchema); ok {
		r0 = rf(ctx, teamID, memberID, fields)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.EmployeeSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int, api.EmployeeFields) error); ok {
		r1 = rf(ctx, teamID, memberID, fields)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, teamID, actorID, memberID, ip
func (_m *MockEmployeeService) Delete(ctx context.Context, teamID int, actorID int, memberID int, ip string) (*api.DeleteEmployeeResponse, error) {
	ret := _m.Called(ctx, teamID, actorID, memberID, ip)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *api.DeleteEmployeeResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int, int, string) (*api.DeleteEmployeeResponse, error)); ok {
		return rf(ctx, teamID, actorID, memberID, ip)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int, int, string) *api.DeleteEmployeeResponse); ok {
		r0 = rf(ctx, teamID, actorID, memberID, ip)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.DeleteEmployeeResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int, int, string) error); ok {
		r1 = rf(ctx, teamID, actorID, memberID, ip)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockEmployeeService creates a new instance of MockEmployeeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEmployeeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEmployeeService {
	mock := &MockEmployeeService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
