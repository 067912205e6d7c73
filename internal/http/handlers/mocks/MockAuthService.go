package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	api "team-backoffice/internal/http/api"
	authsvc "team-backoffice/internal/service/auth"
)

// MockAuthService is an autogenerated mock type for the authService type
type MockAuthService struct {
	mock.Mock
}

// SignUp provides a mock function with given fields: ctx, in
func (_m *MockAuthService) SignUp(ctx context.Context, in authsvc.SignUpInput) (*api.AuthResponse, error) {
	ret := _m.Called(ctx, in)

	if len(ret) == 0 {
		panic("no return value specified for SignUp")
	}

	var r0 *api.AuthResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, authsvc.SignUpInput) (*api.AuthResponse, error)); ok {
		return rf(ctx, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, authsvc.SignUpInput) *api.AuthResponse); ok {
		r0 = rf(ctx, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.AuthResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, authsvc.SignUpInput) error); ok {
		r1 = rf(ctx, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SignIn provides a mock function with given fields: ctx, email, password, ip
func (_m *MockAuthService) SignIn(ctx context.Context, email string, password string, ip string) (*api.AuthResponse, error) {
	ret := _m.Called(ctx, email, password, ip)

	if len(ret) == 0 {
		panic("no return value specified for SignIn")
	}

	var r0 *api.AuthResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) (*api.AuthResponse, error)); ok {
		return rf(ctx, email, password, ip)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) *api.AuthResponse); ok {
		r0 = rf(ctx, email, password, ip)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.AuthResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, string) error); ok {
		r1 = rf(ctx, email, password, ip)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Me provides a mock function with given fields: ctx, userID
func (_m *MockAuthService) Me(ctx context.Context, userID int) (*api.UserSchema, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for Me")
	}

	var r0 *api.UserSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (*api.UserSchema, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) *api.UserSchema); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.UserSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockAuthService creates a new instance of MockAuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthService {
	mock := &MockAuthService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
