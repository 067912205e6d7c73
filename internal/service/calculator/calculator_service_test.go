package calculator_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"team-backoffice/internal/costcalc"
	"team-backoffice/internal/models"
	repo "team-backoffice/internal/repository"
	"team-backoffice/internal/service/calculator"
	"team-backoffice/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedSettings() *models.TeamSettings {
	return &models.TeamSettings{
		ID:                      1,
		TeamID:                  3,
		NumberOfEmployees:       2,
		AverageHoursPerEmployee: 1000,
		OverheadCosts:           models.JSONList[costcalc.CostItem]{{Name: "Kontor", Amount: 100000}},
		EquipmentCosts:          models.JSONList[costcalc.CostItem]{{Name: "Maskiner", Amount: 60000}},
		GeneralCosts:            models.JSONList[costcalc.CostItem]{{Name: "IT", Amount: 40000}},
	}
}

func cost(want string) any {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString(want))
	})
}

func TestCalculatorService_Settings_Defaults(t *testing.T) {
	ctx := context.Background()

	mockSettings := mocks.NewSettingsStore(t)
	mockSettings.On("GetByTeam", ctx, 3).Return(nil, repo.ErrNotFound).Once()

	service := calculator.NewCalculatorService(nil, mockSettings, nil)

	resp, err := service.Settings(ctx, 3)

	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	assert.Equal(t, costcalc.DefaultSettings(), resp.Settings)
	assert.Nil(t, resp.UpdatedAt)
}

func TestCalculatorService_Settings_Stored(t *testing.T) {
	ctx := context.Background()

	mockSettings := mocks.NewSettingsStore(t)
	mockSettings.On("GetByTeam", ctx, 3).Return(storedSettings(), nil).Once()

	service := calculator.NewCalculatorService(nil, mockSettings, nil)

	resp, err := service.Settings(ctx, 3)

	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, 2, resp.NumberOfEmployees)
	assert.NotNil(t, resp.UpdatedAt)
}

func TestCalculatorService_SaveSettings_RepricesProjects(t *testing.T) {
	ctx := context.Background()

	mockSettings := mocks.NewSettingsStore(t)
	mockProjects := mocks.NewProjectStore(t)
	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	in := storedSettings().Calc()

	mockSettings.On("Save", ctx, mock.MatchedBy(func(s *models.TeamSettings) bool {
		return s.TeamID == 3 && s.NumberOfEmployees == 2 && len(s.OverheadCosts) == 1
	})).Return(storedSettings(), nil).Once()

	mockProjects.On("ListByTeam", ctx, 3).Return([]*models.Project{
		{ID: 10, Hours: 100},
		{ID: 11, Hours: 15},
	}, nil).Once()

	// 200 000 kr over 2 000 hours is 100 kr/hour.
	mockProjects.On("SetCost", ctx, 10, cost("10000")).Return(nil).Once()
	mockProjects.On("SetCost", ctx, 11, cost("1500")).Return(nil).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	service := calculator.NewCalculatorService(mockTRM, mockSettings, mockProjects)

	resp, err := service.SaveSettings(ctx, 3, in)

	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, 1000, resp.AverageHoursPerEmployee)
}

func TestCalculatorService_SaveSettings_SetCostError(t *testing.T) {
	ctx := context.Background()

	mockSettings := mocks.NewSettingsStore(t)
	mockProjects := mocks.NewProjectStore(t)
	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	setErr := errors.New("update failed")

	mockSettings.On("Save", ctx, mock.Anything).Return(storedSettings(), nil).Once()
	mockProjects.On("ListByTeam", ctx, 3).Return([]*models.Project{{ID: 10, Hours: 100}}, nil).Once()
	mockProjects.On("SetCost", ctx, 10, mock.Anything).Return(setErr).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), setErr)
		}).
		Return(setErr).Once()

	service := calculator.NewCalculatorService(mockTRM, mockSettings, mockProjects)

	resp, err := service.SaveSettings(ctx, 3, storedSettings().Calc())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, setErr)
}

func TestCalculatorService_Compute(t *testing.T) {
	ctx := context.Background()

	mockSettings := mocks.NewSettingsStore(t)
	mockSettings.On("GetByTeam", ctx, 3).Return(storedSettings(), nil).Once()

	service := calculator.NewCalculatorService(nil, mockSettings, nil)

	b, err := service.Compute(ctx, 3, "Garasje", 40)

	require.NoError(t, err)
	assert.Equal(t, "Garasje", b.ProjectName)
	assert.InDelta(t, 100, b.IndirectCostRate, 1e-9)
	assert.InDelta(t, 4000, b.ProjectIndirectCost, 1e-9)
	assert.InDelta(t, 50, b.Overhead.Percentage, 1e-9)
}

func TestCalculatorService_CreateProject(t *testing.T) {
	ctx := context.Background()

	mockSettings := mocks.NewSettingsStore(t)
	mockProjects := mocks.NewProjectStore(t)

	mockSettings.On("GetByTeam", ctx, 3).Return(storedSettings(), nil).Once()
	mockProjects.On("Create", ctx, mock.MatchedBy(func(p *models.Project) bool {
		return p.TeamID == 3 && p.Name == "Tilbygg" && p.Hours == 250 && p.Cost.Equal(decimal.NewFromInt(25000))
	})).Return(&models.Project{ID: 12, Name: "Tilbygg", Hours: 250, Cost: decimal.NewFromInt(25000)}, nil).Once()

	service := calculator.NewCalculatorService(nil, mockSettings, mockProjects)

	resp, err := service.CreateProject(ctx, 3, "Tilbygg", 250)

	require.NoError(t, err)
	assert.Equal(t, 12, resp.ID)
	assert.Equal(t, 25000.0, resp.Cost)
}

func TestCalculatorService_Projects(t *testing.T) {
	ctx := context.Background()

	mockProjects := mocks.NewProjectStore(t)
	mockProjects.On("ListByTeam", ctx, 3).Return([]*models.Project{}, nil).Once()

	service := calculator.NewCalculatorService(nil, nil, mockProjects)

	resp, err := service.Projects(ctx, 3)

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestCalculatorService_DeleteProject(t *testing.T) {
	ctx := context.Background()

	mockProjects := mocks.NewProjectStore(t)
	mockProjects.On("Delete", ctx, 3, 12).Return(repo.ErrNotFound).Once()

	service := calculator.NewCalculatorService(nil, nil, mockProjects)

	assert.ErrorIs(t, service.DeleteProject(ctx, 3, 12), repo.ErrNotFound)
}

func TestCalculatorService_ProjectReport(t *testing.T) {
	ctx := context.Background()

	mockSettings := mocks.NewSettingsStore(t)
	mockProjects := mocks.NewProjectStore(t)

	mockProjects.On("GetByID", ctx, 3, 12).Return(&models.Project{ID: 12, Name: "Tilbygg", Hours: 250}, nil).Once()
	mockSettings.On("GetByTeam", ctx, 3).Return(nil, repo.ErrNotFound).Once()

	service := calculator.NewCalculatorService(nil, mockSettings, mockProjects)

	f, err := service.ProjectReport(ctx, 3, 12)

	require.NoError(t, err)
	assert.Equal(t, "tilbygg_kostnadsrapport.pdf", f.Name)
	assert.True(t, bytes.HasPrefix(f.Data, []byte("%PDF-")))
}
