package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// TeamStore is an autogenerated mock type for the TeamStore type
type TeamStore struct {
	mock.Mock
}

// GetByID provides a mock function with given fields: ctx, teamID
func (_m *TeamStore) GetByID(ctx context.Context, teamID int) (*models.Team, error) {
	ret := _m.Called(ctx, teamID)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *models.Team
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (*models.Team, error)); ok {
		return rf(ctx, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) *models.Team); ok {
		r0 = rf(ctx, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Team)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateCompany provides a mock function with given fields: ctx, teamID, c
func (_m *TeamStore) UpdateCompany(ctx context.Context, teamID int, c models.Company) (*models.Team, error) {
	ret := _m.Called(ctx, teamID, c)

	if len(ret) == 0 {
		panic("no return value specified for UpdateCompany")
	}

	var r0 *models.Team
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, models.Company) (*models.Team, error)); ok {
		return rf(ctx, teamID, c)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, models.Company) *models.Team); ok {
		r0 = rf(ctx, teamID, c)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Team)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, models.Company) error); ok {
		r1 = rf(ctx, teamID, c)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewTeamStore creates a new instance of TeamStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTeamStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *TeamStore {
	mock := &TeamStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
