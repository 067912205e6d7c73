package calculator

import (
	"context"
	"errors"
	"time"

	"team-backoffice/internal/costcalc"
	"team-backoffice/internal/http/api"
	"team-backoffice/internal/models"
	"team-backoffice/internal/report"
	repo "team-backoffice/internal/repository"
	"team-backoffice/internal/service"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=SettingsStore
type SettingsStore interface {
	GetByTeam(ctx context.Context, teamID int) (*models.TeamSettings, error)
	Save(ctx context.Context, s *models.TeamSettings) (*models.TeamSettings, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ProjectStore
type ProjectStore interface {
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.Project, error)
	GetByID(ctx context.Context, teamID, projectID int) (*models.Project, error)
	SetCost(ctx context.Context, projectID int, cost decimal.Decimal) error
	Delete(ctx context.Context, teamID, projectID int) error
}

type CalculatorService struct {
	trm      service.TransactionManager
	settings SettingsStore
	projects ProjectStore
	now      func() time.Time
}

func NewCalculatorService(trm service.TransactionManager, settings SettingsStore, projects ProjectStore) *CalculatorService {
	return &CalculatorService{
		trm:      trm,
		settings: settings,
		projects: projects,
		now:      time.Now,
	}
}

// Settings returns the team's calculator settings, or the defaults when the
// team never saved any.
func (s *CalculatorService) Settings(ctx context.Context, teamID int) (*api.SettingsSchema, error) {
	stored, err := s.settings.GetByTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &api.SettingsSchema{Settings: costcalc.DefaultSettings(), IsDefault: true}, nil
		}
		return nil, err
	}

	return toSettingsSchema(stored), nil
}

// SaveSettings stores new settings and reprices every saved project at the
// resulting rate.
func (s *CalculatorService) SaveSettings(ctx context.Context, teamID int, in costcalc.Settings) (*api.SettingsSchema, error) {
	var saved *models.TeamSettings

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.settings.Save(ctx, &models.TeamSettings{
			TeamID:                  teamID,
			NumberOfEmployees:       in.NumberOfEmployees,
			AverageHoursPerEmployee: in.AverageHoursPerEmployee,
			OverheadCosts:           in.OverheadCosts,
			EquipmentCosts:          in.EquipmentCosts,
			GeneralCosts:            in.GeneralCosts,
		})
		if err != nil {
			return err
		}

		projects, err := s.projects.ListByTeam(ctx, teamID)
		if err != nil {
			return err
		}

		calc := saved.Calc()
		for _, p := range projects {
			if err := s.projects.SetCost(ctx, p.ID, projectCost(calc, p.Hours)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSettingsSchema(saved), nil
}

func (s *CalculatorService) Compute(ctx context.Context, teamID int, projectName string, projectHours float64) (*costcalc.Breakdown, error) {
	settings, err := s.current(ctx, teamID)
	if err != nil {
		return nil, err
	}

	b := costcalc.Compute(settings, projectName, projectHours)
	return &b, nil
}

// Report renders the cost report of a project that has not been saved.
func (s *CalculatorService) Report(ctx context.Context, teamID int, projectName string, projectHours float64) (*report.File, error) {
	settings, err := s.current(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return report.Project(settings, costcalc.Compute(settings, projectName, projectHours), s.now())
}

func (s *CalculatorService) Projects(ctx context.Context, teamID int) ([]api.ProjectSchema, error) {
	projects, err := s.projects.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := make([]api.ProjectSchema, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, api.ToProjectSchema(p))
	}

	return resp, nil
}

func (s *CalculatorService) CreateProject(ctx context.Context, teamID int, name string, hours int) (*api.ProjectSchema, error) {
	settings, err := s.current(ctx, teamID)
	if err != nil {
		return nil, err
	}

	created, err := s.projects.Create(ctx, &models.Project{
		TeamID: teamID,
		Name:   name,
		Hours:  hours,
		Cost:   projectCost(settings, hours),
	})
	if err != nil {
		return nil, err
	}

	resp := api.ToProjectSchema(created)
	return &resp, nil
}

func (s *CalculatorService) DeleteProject(ctx context.Context, teamID, projectID int) error {
	return s.projects.Delete(ctx, teamID, projectID)
}

// ProjectReport renders the cost report of a saved project at the current rate.
func (s *CalculatorService) ProjectReport(ctx context.Context, teamID, projectID int) (*report.File, error) {
	p, err := s.projects.GetByID(ctx, teamID, projectID)
	if err != nil {
		return nil, err
	}

	return s.Report(ctx, teamID, p.Name, float64(p.Hours))
}

func (s *CalculatorService) current(ctx context.Context, teamID int) (costcalc.Settings, error) {
	stored, err := s.settings.GetByTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return costcalc.DefaultSettings(), nil
		}
		return costcalc.Settings{}, err
	}

	return stored.Calc(), nil
}

func projectCost(s costcalc.Settings, hours int) decimal.Decimal {
	return decimal.NewFromFloat(s.ProjectCost(float64(hours))).Round(2)
}

func toSettingsSchema(s *models.TeamSettings) *api.SettingsSchema {
	updatedAt := s.UpdatedAt
	return &api.SettingsSchema{
		Settings:  s.Calc(),
		UpdatedAt: &updatedAt,
	}
}
