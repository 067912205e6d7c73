package employee

import (
	"context"
	"errors"
	"strings"
	"time"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/lib/password"
	"team-backoffice/internal/models"
	repo "team-backoffice/internal/repository"
	"team-backoffice/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AccountStore
type AccountStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MemberStore
type MemberStore interface {
	Add(ctx context.Context, m *models.Member) (*models.Member, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.Employee, error)
	GetByID(ctx context.Context, teamID, memberID int) (*models.Employee, error)
	Update(ctx context.Context, m *models.Member) (*models.Member, error)
	Delete(ctx context.Context, teamID, memberID int) (*models.Member, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ActivityLogger
type ActivityLogger interface {
	Log(ctx context.Context, a *models.Activity) error
}

type EmployeeService struct {
	trm      service.TransactionManager
	accounts AccountStore
	members  MemberStore
	activity ActivityLogger
}

func NewEmployeeService(
	trm service.TransactionManager,
	accounts AccountStore,
	members MemberStore,
	activity ActivityLogger,
) *EmployeeService {
	return &EmployeeService{
		trm:      trm,
		accounts: accounts,
		members:  members,
		activity: activity,
	}
}

func (s *EmployeeService) List(ctx context.Context, teamID int) ([]api.EmployeeSchema, error) {
	employees, err := s.members.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := make([]api.EmployeeSchema, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, api.ToEmployeeSchema(&e.Member, e.Name, e.Email))
	}

	return resp, nil
}

func (s *EmployeeService) Get(ctx context.Context, teamID, memberID int) (*api.EmployeeSchema, error) {
	e, err := s.members.GetByID(ctx, teamID, memberID)
	if err != nil {
		return nil, err
	}

	resp := api.ToEmployeeSchema(&e.Member, e.Name, e.Email)
	return &resp, nil
}

// Create adds an employee to the team. A user with the same email is reused,
// otherwise one is registered without a usable password.
func (s *EmployeeService) Create(ctx context.Context, teamID int, req api.CreateEmployeeRequest) (*api.EmployeeSchema, error) {
	m := &models.Member{TeamID: teamID, Role: models.RoleMember}
	if err := apply(m, req.EmployeeFields); err != nil {
		return nil, err
	}

	var (
		user    *models.User
		created *models.Member
	)

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.accounts.GetByEmail(ctx, req.Email)
		if errors.Is(err, repo.ErrNotFound) {
			user, err = s.register(ctx, req)
		}
		if err != nil {
			return err
		}

		m.UserID = user.ID
		created, err = s.members.Add(ctx, m)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := api.ToEmployeeSchema(created, user.Name, user.Email)
	return &resp, nil
}

func (s *EmployeeService) register(ctx context.Context, req api.CreateEmployeeRequest) (*models.User, error) {
	hash, err := password.Unusable()
	if err != nil {
		return nil, err
	}

	return s.accounts.Create(ctx, &models.User{
		Name:         strings.TrimSpace(req.FirstName + " " + req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         models.RoleMember,
	})
}

func (s *EmployeeService) Update(ctx context.Context, teamID, memberID int, fields api.EmployeeFields) (*api.EmployeeSchema, error) {
	e, err := s.members.GetByID(ctx, teamID, memberID)
	if err != nil {
		return nil, err
	}

	m := e.Member
	if err := apply(&m, fields); err != nil {
		return nil, err
	}

	updated, err := s.members.Update(ctx, &m)
	if err != nil {
		return nil, err
	}

	resp := api.ToEmployeeSchema(updated, e.Name, e.Email)
	return &resp, nil
}

// Delete removes the employee from the team and logs who removed them.
func (s *EmployeeService) Delete(ctx context.Context, teamID, actorID, memberID int, ip string) (*api.DeleteEmployeeResponse, error) {
	var resp *api.DeleteEmployeeResponse

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		e, err := s.members.GetByID(ctx, teamID, memberID)
		if err != nil {
			return err
		}

		deleted, err := s.members.Delete(ctx, teamID, memberID)
		if err != nil {
			return err
		}

		if err := s.activity.Log(ctx, models.NewActivity(teamID, actorID, models.ActivityRemoveMember, ip)); err != nil {
			return err
		}

		resp = &api.DeleteEmployeeResponse{
			Success:         true,
			DeletedEmployee: api.ToEmployeeSchema(deleted, e.Name, e.Email),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// apply copies the editable fields onto m. An empty role keeps the current one.
func apply(m *models.Member, f api.EmployeeFields) error {
	if f.Role != "" {
		m.Role = f.Role
	}
	m.Position = f.Position
	m.Department = f.Department
	m.Phone = f.Phone
	m.Address = f.Address
	m.EmergencyContact = f.EmergencyContact
	m.Skills = f.Skills
	m.Certifications = f.Certifications

	m.HireDate = nil
	if f.HireDate != nil && *f.HireDate != "" {
		d, err := time.Parse(api.DateLayout, *f.HireDate)
		if err != nil {
			return err
		}
		m.HireDate = &d
	}

	return nil
}
