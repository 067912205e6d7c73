package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	api "team-backoffice/internal/http/api"
)

// MockLinkService is an autogenerated mock type for the linkService type
type MockLinkService struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, teamID, category
func (_m *MockLinkService) List(ctx context.Context, teamID int, category string) ([]api.LinkSchema, error) {
	ret := _m.Called(ctx, teamID, category)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []api.LinkSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string) ([]api.LinkSchema, error)); ok {
		return rf(ctx, teamID, category)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string) []api.LinkSchema); ok {
		r0 = rf(ctx, teamID, category)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]api.LinkSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string) error); ok {
		r1 = rf(ctx, teamID, category)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, teamID, userID, req
func (_m *MockLinkService) Create(ctx context.Context, teamID int, userID int, req api.LinkRequest) (*api.LinkSchema, error) {
	ret := _m.Called(ctx, teamID, userID, req)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *api.LinkSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int, api.LinkRequest) (*api.LinkSchema, error)); ok {
		return rf(ctx, teamID, userID, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int, api.LinkRequest) *api.LinkSchema); ok {
		r0 = rf(ctx, teamID, userID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.LinkSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int, api.LinkRequest) error); ok {
		r1 = rf(ctx, teamID, userID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, teamID, linkID
func (_m *MockLinkService) Delete(ctx context.Context, teamID int, linkID int) (*api.DeleteLinkResponse, error) {
	ret := _m.Called(ctx, teamID, linkID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *api.DeleteLinkResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) (*api.DeleteLinkResponse, error)); ok {
		return rf(ctx, teamID, linkID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *api.DeleteLinkResponse); ok {
		r0 = rf(ctx, teamID, linkID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.DeleteLinkResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, teamID, linkID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockLinkService creates a new instance of MockLinkService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLinkService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLinkService {
	mock := &MockLinkService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
