package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// SettingsStore is an autogenerated mock type for the SettingsStore type
type SettingsStore struct {
	mock.Mock
}

// GetByTeam provides a mock function with given fields: ctx, teamID
func (_m *SettingsStore) GetByTeam(ctx context.Context, teamID int) (*models.TeamSettings, error) {
	ret := _m.Called(ctx, teamID)

	if len(ret) == 0 {
		panic("no return value specified for GetByTeam")
	}

	var r0 *models.TeamSettings
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (*models.TeamSettings, error)); ok {
		return rf(ctx, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) *models.TeamSettings); ok {
		r0 = rf(ctx, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.TeamSettings)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Save provides a mock function with given fields: ctx, s
func (_m *SettingsStore) Save(ctx context.Context, s *models.TeamSettings) (*models.TeamSettings, error) {
	ret := _m.Called(ctx, s)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	var r0 *models.TeamSettings
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.TeamSettings) (*models.TeamSettings, error)); ok {
		return rf(ctx, s)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *models.TeamSettings) *models.TeamSettings); ok {
		r0 = rf(ctx, s)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.TeamSettings)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.TeamSettings) error); ok {
		r1 = rf(ctx, s)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewSettingsStore creates a new instance of SettingsStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSettingsStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SettingsStore {
	mock := &SettingsStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
