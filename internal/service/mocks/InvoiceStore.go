package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	models "team-backoffice/internal/models"
)

// InvoiceStore is an autogenerated mock type for the InvoiceStore type
type InvoiceStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, inv
func (_m *InvoiceStore) Create(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	ret := _m.Called(ctx, inv)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Invoice) (*models.Invoice, error)); ok {
		return rf(ctx, inv)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *models.Invoice) *models.Invoice); ok {
		r0 = rf(ctx, inv)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Invoice)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.Invoice) error); ok {
		r1 = rf(ctx, inv)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, inv
func (_m *InvoiceStore) Update(ctx context.Context, inv *models.Invoice) (*models.Invoice, error) {
	ret := _m.Called(ctx, inv)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Invoice) (*models.Invoice, error)); ok {
		return rf(ctx, inv)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *models.Invoice) *models.Invoice); ok {
		r0 = rf(ctx, inv)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Invoice)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.Invoice) error); ok {
		r1 = rf(ctx, inv)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListByTeam provides a mock function with given fields: ctx, teamID, status
func (_m *InvoiceStore) ListByTeam(ctx context.Context, teamID int, status string) ([]*models.Invoice, error) {
	ret := _m.Called(ctx, teamID, status)

	if len(ret) == 0 {
		panic("no return value specified for ListByTeam")
	}

	var r0 []*models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string) ([]*models.Invoice, error)); ok {
		return rf(ctx, teamID, status)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string) []*models.Invoice); ok {
		r0 = rf(ctx, teamID, status)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*models.Invoice)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string) error); ok {
		r1 = rf(ctx, teamID, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, teamID, invoiceID
func (_m *InvoiceStore) GetByID(ctx context.Context, teamID int, invoiceID string) (*models.Invoice, error) {
	ret := _m.Called(ctx, teamID, invoiceID)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *models.Invoice
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string) (*models.Invoice, error)); ok {
		return rf(ctx, teamID, invoiceID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, string) *models.Invoice); ok {
		r0 = rf(ctx, teamID, invoiceID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Invoice)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, string) error); ok {
		r1 = rf(ctx, teamID, invoiceID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetStatus provides a mock function with given fields: ctx, teamID, invoiceID, status
func (_m *InvoiceStore) SetStatus(ctx context.Context, teamID int, invoiceID string, status models.InvoiceStatus) error {
	ret := _m.Called(ctx, teamID, invoiceID, status)

	if len(ret) == 0 {
		panic("no return value specified for SetStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string, models.InvoiceStatus) error); ok {
		r0 = rf(ctx, teamID, invoiceID, status)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Assign provides a mock function with given fields: ctx, teamID, invoiceID, userID
func (_m *InvoiceStore) Assign(ctx context.Context, teamID int, invoiceID string, userID int) error {
	ret := _m.Called(ctx, teamID, invoiceID, userID)

	if len(ret) == 0 {
		panic("no return value specified for Assign")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, string, int) error); ok {
		r0 = rf(ctx, teamID, invoiceID, userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, teamID, invoiceID
func (_m *InvoiceStore) Delete(ctx context.Context, teamID int, invoiceID string) error {
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

// NewInvoiceStore creates a new instance of InvoiceStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewInvoiceStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *InvoiceStore {
	mock := &InvoiceStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
