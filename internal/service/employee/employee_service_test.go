package employee_test

import (
	"context"
	"testing"
	"time"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/models"
	repo "team-backoffice/internal/repository"
	"team-backoffice/internal/service/employee"
	"team-backoffice/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTRM(t *testing.T, ctx context.Context, want error) *mocks.MockManager {
	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			err := fn(ctx)
			if want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, want)
			}
		}).
		Return(want).Once()

	return mockTRM
}

func createRequest() api.CreateEmployeeRequest {
	hireDate := "2024-08-01"
	return api.CreateEmployeeRequest{
		FirstName: "Kari",
		LastName:  "Nordmann",
		Email:     "kari@bygg.no",
		EmployeeFields: api.EmployeeFields{
			Position:       "Tømrer",
			Department:     "Produksjon",
			HireDate:       &hireDate,
			Skills:         []string{"forskaling"},
			Certifications: []string{"fagbrev"},
		},
	}
}

func TestEmployeeService_Create_NewUser(t *testing.T) {
	ctx := context.Background()

	mockAccounts := mocks.NewAccountStore(t)
	mockMembers := mocks.NewMemberStore(t)
	mockTRM := newTRM(t, ctx, nil)

	mockAccounts.On("GetByEmail", ctx, "kari@bygg.no").Return(nil, repo.ErrNotFound).Once()
	mockAccounts.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Name == "Kari Nordmann" && u.Email == "kari@bygg.no" && u.PasswordHash != ""
	})).Return(&models.User{ID: 8, Name: "Kari Nordmann", Email: "kari@bygg.no"}, nil).Once()

	mockMembers.On("Add", ctx, mock.MatchedBy(func(m *models.Member) bool {
		return m.UserID == 8 && m.TeamID == 3 && m.Role == models.RoleMember &&
			m.HireDate != nil && m.HireDate.Equal(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))
	})).Return(&models.Member{ID: 5, UserID: 8, TeamID: 3, Role: models.RoleMember, Position: "Tømrer"}, nil).Once()

	service := employee.NewEmployeeService(mockTRM, mockAccounts, mockMembers, nil)

	resp, err := service.Create(ctx, 3, createRequest())

	require.NoError(t, err)
	assert.Equal(t, 5, resp.ID)
	assert.Equal(t, "Kari Nordmann", resp.Name)
	assert.Equal(t, "Tømrer", resp.Position)
}

func TestEmployeeService_Create_ExistingUser(t *testing.T) {
	ctx := context.Background()

	mockAccounts := mocks.NewAccountStore(t)
	mockMembers := mocks.NewMemberStore(t)
	mockTRM := newTRM(t, ctx, repo.ErrEmployeeExists)

	mockAccounts.On("GetByEmail", ctx, "kari@bygg.no").Return(&models.User{ID: 8}, nil).Once()
	mockMembers.On("Add", ctx, mock.Anything).Return(nil, repo.ErrEmployeeExists).Once()

	service := employee.NewEmployeeService(mockTRM, mockAccounts, mockMembers, nil)

	resp, err := service.Create(ctx, 3, createRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrEmployeeExists)
	mockAccounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_List(t *testing.T) {
	ctx := context.Background()

	mockMembers := mocks.NewMemberStore(t)
	mockMembers.On("ListByTeam", ctx, 3).Return([]*models.Employee{
		{Member: models.Member{ID: 1, UserID: 7}, Name: "Ola", Email: "ola@bygg.no"},
	}, nil).Once()

	service := employee.NewEmployeeService(nil, nil, mockMembers, nil)

	resp, err := service.List(ctx, 3)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Ola", resp[0].Name)
	assert.NotNil(t, resp[0].Skills)
	assert.Nil(t, resp[0].HireDate)
}

func TestEmployeeService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	mockMembers := mocks.NewMemberStore(t)
	mockMembers.On("GetByID", ctx, 3, 99).Return(nil, repo.ErrNotFound).Once()

	service := employee.NewEmployeeService(nil, nil, mockMembers, nil)

	resp, err := service.Get(ctx, 3, 99)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestEmployeeService_Update_KeepsRole(t *testing.T) {
	ctx := context.Background()

	mockMembers := mocks.NewMemberStore(t)
	existing := &models.Employee{
		Member: models.Member{ID: 5, UserID: 8, TeamID: 3, Role: models.RoleOwner},
		Name:   "Kari",
		Email:  "kari@bygg.no",
	}

	mockMembers.On("GetByID", ctx, 3, 5).Return(existing, nil).Once()
	mockMembers.On("Update", ctx, mock.MatchedBy(func(m *models.Member) bool {
		return m.ID == 5 && m.Role == models.RoleOwner && m.Department == "Prosjekt" && m.HireDate == nil
	})).Return(&models.Member{ID: 5, Role: models.RoleOwner, Department: "Prosjekt"}, nil).Once()

	service := employee.NewEmployeeService(nil, nil, mockMembers, nil)

	resp, err := service.Update(ctx, 3, 5, api.EmployeeFields{Department: "Prosjekt"})

	require.NoError(t, err)
	assert.Equal(t, "Prosjekt", resp.Department)
	assert.Equal(t, "kari@bygg.no", resp.Email)
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	mockMembers := mocks.NewMemberStore(t)
	mockActivity := mocks.NewActivityLogger(t)
	mockTRM := newTRM(t, ctx, nil)

	mockMembers.On("GetByID", ctx, 3, 5).
		Return(&models.Employee{Member: models.Member{ID: 5}, Name: "Kari", Email: "kari@bygg.no"}, nil).Once()
	mockMembers.On("Delete", ctx, 3, 5).Return(&models.Member{ID: 5, UserID: 8, TeamID: 3}, nil).Once()
	mockActivity.On("Log", ctx, mock.MatchedBy(func(a *models.Activity) bool {
		return a.Action == models.ActivityRemoveMember && *a.UserID == 7
	})).Return(nil).Once()

	service := employee.NewEmployeeService(mockTRM, nil, mockMembers, mockActivity)

	resp, err := service.Delete(ctx, 3, 7, 5, "10.0.0.1")

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Kari", resp.DeletedEmployee.Name)
	assert.Equal(t, 8, resp.DeletedEmployee.UserID)
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()

	mockMembers := mocks.NewMemberStore(t)
	mockTRM := newTRM(t, ctx, repo.ErrNotFound)

	mockMembers.On("GetByID", ctx, 3, 5).Return(nil, repo.ErrNotFound).Once()

	service := employee.NewEmployeeService(mockTRM, nil, mockMembers, nil)

	resp, err := service.Delete(ctx, 3, 7, 5, "")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
