package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	costcalc "team-backoffice/internal/costcalc"
	api "team-backoffice/internal/http/api"
	report "team-backoffice/internal/report"
)

// MockCalculatorService is an autogenerated mock type for the calculatorService type
type MockCalculatorService struct {
	mock.Mock
}

// Settings provides a mock function with given fields: ctx, teamID
func (_m *MockCalculatorService) Settings(ctx context.Context, teamID int) (*api.SettingsSchema, error) {
	ret := _m.Called(ctx, teamID)

	if len(ret) == 0 {
		panic("no return value specified for Settings")
	}

	var r0 *api.SettingsSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (*api.SettingsSchema, error)); ok {
		return rf(ctx, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) *api.SettingsSchema); ok {
		r0 = rf(ctx, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.SettingsSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SaveSettings provides a mock function with given fields: ctx, teamID, in
func (_m *MockCalculatorService) SaveSettings(ctx context.Context, teamID int, in costcalc.Settings) (*api.SettingsSchema, error) {
	ret := _m.Called(ctx, teamID, in)

	if len(ret) == 0 {
		panic("no return value specified for SaveSettings")
	}

	var r0 *api.SettingsSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, costcalc.Settings) (*api.SettingsSchema, error)); ok {
		return rf(ctx, teamID, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, costcalc.Settings) *api.SettingsSchema); ok {
		r0 = rf(ctx, teamID, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.SettingsSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, costcalc.Settings) error); ok {
		r1 = rf(ctx, teamID, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Compute provides a mock function with given fields: ctx, teamID, projectName, projectHours
func (_m *MockCalculatorService) Compute(ctx context.Context, teamID int, projectName string, projectHours float64) (*costcalc.Breakdown, error) {
	ret := _m.Called(ctx, teamID, projectName, projectHours)

	if len(ret) == 0 {
		panic("no return value specified for Compute")
	}

	var r0 *costcalc.Breakdown
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string, float64) (*costcalc.Breakdown, error)); ok {
		return rf(ctx, teamID, projectName, projectHours)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string, float64) *costcalc.Breakdown); ok {
		r0 = rf(ctx, teamID, projectName, projectHours)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*costcalc.Breakdown)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string, float64) error); ok {
		r1 = rf(ctx, teamID, projectName, projectHours)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Report provides a mock function with given fields: ctx, teamID, projectName, projectHours
func (_m *MockCalculatorService) Report(ctx context.Context, teamID int, projectName string, projectHours float64) (*report.File, error) {
	ret := _m.Called(ctx, teamID, projectName, projectHours)

	if len(ret) == 0 {
		panic("no return value specified for Report")
	}

	var r0 *report.File
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string, float64) (*report.File, error)); ok {
		return rf(ctx, teamID, projectName, projectHours)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string, float64) *report.File); ok {
		r0 = rf(ctx, teamID, projectName, projectHours)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*report.File)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string, float64) error); ok {
		r1 = rf(ctx, teamID, projectName, projectHours)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Projects provides a mock function with given fields: ctx, teamID
func (_m *MockCalculatorService) Projects(ctx context.Context, teamID int) ([]api.ProjectSchema, error) {
	ret := _m.Called(ctx, teamID)

	if len(ret) == 0 {
		panic("no return value specified for Projects")
	}

	var r0 []api.ProjectSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) ([]api.ProjectSchema, error)); ok {
		return rf(ctx, teamID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) []api.ProjectSchema); ok {
		r0 = rf(ctx, teamID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]api.ProjectSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, teamID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateProject provides a mock function with given fields: ctx, teamID, name, hours
func (_m *MockCalculatorService) CreateProject(ctx context.Context, teamID int, name string, hours int) (*api.ProjectSchema, error) {
	ret := _m.Called(ctx, teamID, name, hours)

	if len(ret) == 0 {
		panic("no return value specified for CreateProject")
	}

	var r0 *api.ProjectSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string, int) (*api.ProjectSchema, error)); ok {
		return rf(ctx, teamID, name, hours)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string, int) *api.ProjectSchema); ok {
		r0 = rf(ctx, teamID, name, hours)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.ProjectSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string, int) error); ok {
		r1 = rf(ctx, teamID, name, hours)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteProject provides a mock function with given fields: ctx, teamID, projectID
func (_m *MockCalculatorService) DeleteProject(ctx context.Context, teamID int, projectID int) error {
	ret := _m.Called(ctx, teamID, projectID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteProject")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) error); ok {
		r0 = rf(ctx, teamID, projectID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ProjectReport provides a mock function with given fields: ctx, teamID, projectID
func (_m *MockCalculatorService) ProjectReport(ctx context.Context, teamID int, projectID int) (*report.File, error) {
	ret := _m.Called(ctx, teamID, projectID)

	if len(ret) == 0 {
		panic("no return value specified for ProjectReport")
	}

	var r0 *report.File
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) (*report.File, error)); ok {
		return rf(ctx, teamID, projectID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *report.File); ok {
		r0 = rf(ctx, teamID, projectID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*report.File)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, teamID, projectID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockCalculatorService creates a new instance of MockCalculatorService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCalculatorService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCalculatorService {
	mock := &MockCalculatorService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
