package team

import (
	"context"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/models"
	"team-backoffice/internal/service"
)

const activityLimit = 50

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamStore
type TeamStore interface {
	GetByID(ctx context.Context, teamID int) (*models.Team, error)
	UpdateCompany(ctx context.Context, teamID int, c models.Company) (*models.Team, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MemberLister
type MemberLister interface {
	ListByTeam(ctx context.Context, teamID int) ([]*models.Employee, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=InvitationStore
type InvitationStore interface {
	Create(ctx context.Context, inv *models.Invitation) (*models.Invitation, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.Invitation, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ActivityStore
type ActivityStore interface {
	Log(ctx context.Context, a *models.Activity) error
	ListByTeam(ctx context.Context, teamID, limit int) ([]*models.Activity, error)
}

type TeamService struct {
	trm         service.TransactionManager
	teams       TeamStore
	members     MemberLister
	invitations InvitationStore
	activity    ActivityStore
}

func NewTeamService(
	trm service.TransactionManager,
	teams TeamStore,
	members MemberLister,
	invitations InvitationStore,
	activity ActivityStore,
) *TeamService {
	return &TeamService{
		trm:         trm,
		teams:       teams,
		members:     members,
		invitations: invitations,
		activity:    activity,
	}
}

func (s *TeamService) Get(ctx context.Context, teamID int) (*api.TeamSchema, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return s.withMembers(ctx, team)
}

func (s *TeamService) UpdateCompany(ctx context.Context, teamID int, company api.CompanySchema) (*api.TeamSchema, error) {
	team, err := s.teams.UpdateCompany(ctx, teamID, company.Model())
	if err != nil {
		return nil, err
	}

	return s.withMembers(ctx, team)
}

func (s *TeamService) withMembers(ctx context.Context, team *models.Team) (*api.TeamSchema, error) {
	employees, err := s.members.ListByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	members := make([]api.TeamMember, 0, len(employees))
	for _, e := range employees {
		members = append(members, api.TeamMember{
			ID:     e.ID,
			UserID: e.UserID,
			Role:   e.Role,
			Name:   e.Name,
			Email:  e.Email,
		})
	}

	return &api.TeamSchema{
		ID:            team.ID,
		Name:          team.Name,
		Slug:          team.Slug,
		CompanySchema: api.ToCompanySchema(team.Company),
		Members:       members,
		CreatedAt:     team.CreatedAt,
		UpdatedAt:     team.UpdatedAt,
	}, nil
}

// Invite records a pending invitation to join the team.
func (s *TeamService) Invite(ctx context.Context, teamID, invitedBy int, email, role, ip string) (*api.InvitationSchema, error) {
	var created *models.Invitation

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.invitations.Create(ctx, &models.Invitation{
			TeamID:    teamID,
			Email:     email,
			Role:      role,
			InvitedBy: invitedBy,
			Status:    models.InvitationPending,
		})
		if err != nil {
			return err
		}

		return s.activity.Log(ctx, models.NewActivity(teamID, invitedBy, models.ActivityInviteMember, ip))
	})
	if err != nil {
		return nil, err
	}

	resp := toInvitationSchema(created)
	return &resp, nil
}

func (s *TeamService) Invitations(ctx context.Context, teamID int) ([]api.InvitationSchema, error) {
	invitations, err := s.invitations.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := make([]api.InvitationSchema, 0, len(invitations))
	for _, inv := range invitations {
		resp = append(resp, toInvitationSchema(inv))
	}

	return resp, nil
}

// Activity returns the most recent log entries of the team, newest first.
func (s *TeamService) Activity(ctx context.Context, teamID int) ([]api.ActivitySchema, error) {
	entries, err := s.activity.ListByTeam(ctx, teamID, activityLimit)
	if err != nil {
		return nil, err
	}

	resp := make([]api.ActivitySchema, 0, len(entries))
	for _, a := range entries {
		resp = append(resp, api.ActivitySchema{
			ID:        a.ID,
			UserID:    a.UserID,
			UserName:  a.UserName,
			Action:    string(a.Action),
			Timestamp: a.Timestamp,
			IPAddress: a.IPAddress,
		})
	}

	return resp, nil
}

func toInvitationSchema(inv *models.Invitation) api.InvitationSchema {
	return api.InvitationSchema{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      inv.Role,
		InvitedBy: inv.InvitedBy,
		InvitedAt: inv.InvitedAt,
		Status:    inv.Status,
	}
}
