package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	api "team-backoffice/internal/http/api"
	models "team-backoffice/internal/models"
	report "team-backoffice/internal/report"
)

// MockInvoiceService is an autogenerated mock type for the invoiceService type
type MockInvoiceService struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, teamID, status
func (_m *MockInvoiceService) List(ctx context.Context, teamID int, status string) ([]api.InvoiceSchema, error) {
	ret := _m.Called(ctx, teamID, status)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []api.InvoiceSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string) ([]api.InvoiceSchema, error)); ok {
		return rf(ctx, teamID, status)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string) []api.InvoiceSchema); ok {
		r0 = rf(ctx, teamID, status)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]api.InvoiceSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string) error); ok {
		r1 = rf(ctx, teamID, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Get provides a mock function with given fields: ctx, teamID, invoiceID
func (_m *MockInvoiceService) Get(ctx context.Context, teamID int, invoiceID string) (*api.InvoiceSchema, error) {
	ret := _m.Called(ctx, teamID, invoiceID)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *api.InvoiceSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string) (*api.InvoiceSchema, error)); ok {
		return rf(ctx, teamID, invoiceID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string) *api.InvoiceSchema); ok {
		r0 = rf(ctx, teamID, invoiceID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.InvoiceSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string) error); ok {
		r1 = rf(ctx, teamID, invoiceID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, teamID, userID, in
func (_m *MockInvoiceService) Create(ctx context.Context, teamID int, userID int, in api.InvoiceFields) (*api.InvoiceSchema, error) {
	ret := _m.Called(ctx, teamID, userID, in)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *api.InvoiceSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int, api.InvoiceFields) (*api.InvoiceSchema, error)); ok {
		return rf(ctx, teamID, userID, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int, api.InvoiceFields) *api.InvoiceSchema); ok {
		r0 = rf(ctx, teamID, userID, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.InvoiceSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int, api.InvoiceFields) error); ok {
		r1 = rf(ctx, teamID, userID, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, teamID, invoiceID, in
func (_m *MockInvoiceService) Update(ctx context.Context, teamID int, invoiceID string, in api.InvoiceFields) (*api.InvoiceSchema, error) {
	ret := _m.Called(ctx, teamID, invoiceID, in)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *api.InvoiceSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string, api.InvoiceFields) (*api.InvoiceSchema, error)); ok {
		return rf(ctx, teamID, invoiceID, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string, api.InvoiceFields) *api.InvoiceSchema); ok {
		r0 = rf(ctx, teamID, invoiceID, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.InvoiceSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string, api.InvoiceFields) error); ok {
		r1 = rf(ctx, teamID, invoiceID, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, teamID, invoiceID
func (_m *MockInvoiceService) Delete(ctx context.Context, teamID int, invoiceID string) error {
	ret := _m.Called(ctx, teamID, invoiceID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string) error); ok {
		r0 = rf(ctx, teamID, invoiceID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetStatus provides a mock function with given fields: ctx, teamID, invoiceID, status
func (_m *MockInvoiceService) SetStatus(ctx context.Context, teamID int, invoiceID string, status models.InvoiceStatus) (*api.InvoiceSchema, error) {
	ret := _m.Called(ctx, teamID, invoiceID, status)

	if len(ret) == 0 {
		panic("no return value specified for SetStatus")
	}

	var r0 *api.InvoiceSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string, models.InvoiceStatus) (*api.InvoiceSchema, error)); ok {
		return rf(ctx, teamID, invoiceID, status)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string, models.InvoiceStatus) *api.InvoiceSchema); ok {
		r0 = rf(ctx, teamID, invoiceID, status)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.InvoiceSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string, models.InvoiceStatus) error); ok {
		r1 = rf(ctx, teamID, invoiceID, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Assign provides a mock function with given fields: ctx, teamID, invoiceID, userID
func (_m *MockInvoiceService) Assign(ctx context.Context, teamID int, invoiceID string, userID int) (*api.InvoiceSchema, error) {
	ret := _m.Called(ctx, teamID, invoiceID, userID)

	if len(ret) == 0 {
		panic("no return value specified for Assign")
	}

	var r0 *api.InvoiceSchema
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string, int) (*api.InvoiceSchema, error)); ok {
		return rf(ctx, teamID, invoiceID, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string, int) *api.InvoiceSchema); ok {
		r0 = rf(ctx, teamID, invoiceID, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*api.InvoiceSchema)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string, int) error); ok {
		r1 = rf(ctx, teamID, invoiceID, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PDF provides a mock function with given fields: ctx, teamID, invoiceID
func (_m *MockInvoiceService) PDF(ctx context.Context, teamID int, invoiceID string) (*report.File, error) {
	ret := _m.Called(ctx, teamID, invoiceID)

	if len(ret) == 0 {
		panic("no return value specified for PDF")
	}

	var r0 *report.File
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string) (*report.File, error)); ok {
		return rf(ctx, teamID, invoiceID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string) *report.File); ok {
		r0 = rf(ctx, teamID, invoiceID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*report.File)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string) error); ok {
		r1 = rf(ctx, teamID, invoiceID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockInvoiceService creates a new instance of MockInvoiceService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockInvoiceService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInvoiceService {
	mock := &MockInvoiceService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
