package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// LinkStore is an autogenerated mock type for the LinkStore type
type LinkStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, l
func (_m *LinkStore) Create(ctx context.Context, l *models.Link) (*models.Link, error) {
	ret := _m.Called(ctx, l)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *models.Link
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Link) (*models.Link, error)); ok {
		return rf(ctx, l)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *models.Link) *models.Link); ok {
		r0 = rf(ctx, l)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Link)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.Link) error); ok {
		r1 = rf(ctx, l)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListByTeam provides a mock function with given fields: ctx, teamID, category
func (_m *LinkStore) ListByTeam(ctx context.Context, teamID int, category string) ([]*models.Link, error) {
	ret := _m.Called(ctx, teamID, category)

	if len(ret) == 0 {
		panic("no return value specified for ListByTeam")
	}

	var r0 []*models.Link
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string) ([]*models.Link, error)); ok {
		return rf(ctx, teamID, category)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string) []*models.Link); ok {
		r0 = rf(ctx, teamID, category)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*models.Link)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string) error); ok {
		r1 = rf(ctx, teamID, category)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, teamID, linkID
func (_m *LinkStore) Delete(ctx context.Context, teamID int, linkID int) (*models.Link, error) {
	ret := _m.Called(ctx, teamID, linkID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 *models.Link
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) (*models.Link, error)); ok {
		return rf(ctx, teamID, linkID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *models.Link); ok {
		r0 = rf(ctx, teamID, linkID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Link)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, teamID, linkID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewLinkStore creates a new instance of LinkStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewLinkStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *LinkStore {
	mock := &LinkStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
