package mocks

import (
	context "context"

	decimal "github.com/shopspring/decimal"
	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// ProjectStore is an autogenerated mock type for the ProjectStore type
type ProjectStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, p
func (_m *ProjectStore) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *models.Project
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Project) (*models.Project, error)); ok {
		return rf(ctx, p)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *models.Project) *models.Project); ok {
		r0 = rf(ctx, p)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Project)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.Project) error); ok {
		r1 = rf(ctx, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListByTeam provides a mock function with given fields: ctx, teamID
func (_m *ProjectStore) ListByTeam(ctx context.Context, teamID int) ([]*models.Project, error) {
	ret := _m.Called(ctx, teamID)

	if len(ret) == 0 {
		panic("no return value specified for ListByTeam")
	}

	var r0 []*models.Project
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]*models.Project, error)); ok {
		return rf(ctx, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []*models.Project); ok {
		r0 = rf(ctx, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*models.Project)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, teamID, projectID
func (_m *ProjectStore) GetByID(ctx context.Context, teamID int, projectID int) (*models.Project, error) {
	ret := _m.Called(ctx, teamID, projectID)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *models.Project
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) (*models.Project, error)); ok {
		return rf(ctx, teamID, projectID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *models.Project); ok {
		r0 = rf(ctx, teamID, projectID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Project)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, teamID, projectID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetCost provides a mock function with given fields: ctx, projectID, cost
func (_m *ProjectStore) SetCost(ctx context.Context, projectID int, cost decimal.Decimal) error {
	ret := _m.Called(ctx, projectID, cost)

	if len(ret) == 0 {
		panic("no return value specified for SetCost")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, decimal.Decimal) error); ok {
		r0 = rf(ctx, projectID, cost)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, teamID, projectID
func (_m *ProjectStore) Delete(ctx context.Context, teamID int, projectID int) error {
	ret := _m.Called(ctx, teamID, projectID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) error); ok {
		r0 = rf(ctx, teamID, projectID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewProjectStore creates a new instance of ProjectStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewProjectStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProjectStore {
	mock := &ProjectStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
