package team_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/models"
	repo "team-backoffice/internal/repository"
	"team-backoffice/internal/service/mocks"
	"team-backoffice/internal/service/team"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTeamService_Get_Success(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStore(t)
	mockMembers := mocks.NewMemberLister(t)

	tm := &models.Team{ID: 3, Name: "Bygg AS", Slug: "bygg", Company: models.Company{CompanyName: "Bygg AS", Currency: "NOK"}}
	employees := []*models.Employee{
		{Member: models.Member{ID: 1, UserID: 7, Role: models.RoleOwner}, Name: "Ola", Email: "ola@bygg.no"},
		{Member: models.Member{ID: 2, UserID: 8, Role: models.RoleMember}, Name: "Kari", Email: "kari@bygg.no"},
	}

	mockTeams.On("GetByID", ctx, 3).Return(tm, nil).Once()
	mockMembers.On("ListByTeam", ctx, 3).Return(employees, nil).Once()

	service := team.NewTeamService(nil, mockTeams, mockMembers, nil, nil)

	resp, err := service.Get(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, "Bygg AS", resp.CompanyName)
	assert.Equal(t, "NOK", resp.Currency)
	require.Len(t, resp.Members, 2)
	assert.Equal(t, api.TeamMember{ID: 2, UserID: 8, Role: models.RoleMember, Name: "Kari", Email: "kari@bygg.no"}, resp.Members[1])
}

func TestTeamService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStore(t)
	mockTeams.On("GetByID", ctx, 3).Return(nil, repo.ErrNotFound).Once()

	service := team.NewTeamService(nil, mockTeams, nil, nil, nil)

	resp, err := service.Get(ctx, 3)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTeamService_UpdateCompany(t *testing.T) {
	ctx := context.Background()

	mockTeams := mocks.NewTeamStore(t)
	mockMembers := mocks.NewMemberLister(t)

	company := api.CompanySchema{
		CompanyName:    "Bygg & Betong AS",
		CompanyAddress: "Industriveien 4",
		CompanyPhone:   "55123456",
		CompanyEmail:   "post@byggbetong.no",
		Theme:          "dark",
		Timezone:       "Europe/Oslo",
		Language:       "no",
		Currency:       "NOK",
		DateFormat:     "DD.MM.YYYY",
		TimeFormat:     "24",
	}

	mockTeams.On("UpdateCompany", ctx, 3, company.Model()).
		Return(&models.Team{ID: 3, Company: company.Model()}, nil).Once()
	mockMembers.On("ListByTeam", ctx, 3).Return([]*models.Employee{}, nil).Once()

	service := team.NewTeamService(nil, mockTeams, mockMembers, nil, nil)

	resp, err := service.UpdateCompany(ctx, 3, company)

	require.NoError(t, err)
	assert.Equal(t, company, resp.CompanySchema)
	assert.Empty(t, resp.Members)
}

func TestTeamService_Invite(t *testing.T) {
	ctx := context.Background()

	mockInvitations := mocks.NewInvitationStore(t)
	mockActivity := mocks.NewActivityStore(t)
	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	invitedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mockInvitations.On("Create", ctx, mock.MatchedBy(func(inv *models.Invitation) bool {
		return inv.TeamID == 3 && inv.Email == "nils@bygg.no" && inv.InvitedBy == 7 &&
			inv.Status == models.InvitationPending
	})).Return(&models.Invitation{
		ID: 4, TeamID: 3, Email: "nils@bygg.no", Role: models.RoleMember,
		InvitedBy: 7, InvitedAt: invitedAt, Status: models.InvitationPending,
	}, nil).Once()

	mockActivity.On("Log", ctx, mock.MatchedBy(func(a *models.Activity) bool {
		return a.Action == models.ActivityInviteMember && a.TeamID == 3 && *a.UserID == 7
	})).Return(nil).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	service := team.NewTeamService(mockTRM, nil, nil, mockInvitations, mockActivity)

	resp, err := service.Invite(ctx, 3, 7, "nils@bygg.no", models.RoleMember, "10.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, 4, resp.ID)
	assert.Equal(t, invitedAt, resp.InvitedAt)
}

func TestTeamService_Invite_LogError(t *testing.T) {
	ctx := context.Background()

	mockInvitations := mocks.NewInvitationStore(t)
	mockActivity := mocks.NewActivityStore(t)
	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	logErr := errors.New("log failed")

	mockInvitations.On("Create", ctx, mock.Anything).Return(&models.Invitation{ID: 4}, nil).Once()
	mockActivity.On("Log", ctx, mock.Anything).Return(logErr).Once()

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), logErr)
		}).
		Return(logErr).Once()

	service := team.NewTeamService(mockTRM, nil, nil, mockInvitations, mockActivity)

	resp, err := service.Invite(ctx, 3, 7, "nils@bygg.no", models.RoleMember, "")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, logErr)
}

func TestTeamService_Invitations(t *testing.T) {
	ctx := context.Background()

	mockInvitations := mocks.NewInvitationStore(t)
	mockInvitations.On("ListByTeam", ctx, 3).Return([]*models.Invitation{
		{ID: 1, Email: "a@bygg.no", Status: models.InvitationPending},
		{ID: 2, Email: "b@bygg.no", Status: models.InvitationAccepted},
	}, nil).Once()

	service := team.NewTeamService(nil, nil, nil, mockInvitations, nil)

	resp, err := service.Invitations(ctx, 3)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, models.InvitationAccepted, resp[1].Status)
}

func TestTeamService_Activity(t *testing.T) {
	ctx := context.Background()

	userID := 7
	name := "Ola"

	mockActivity := mocks.NewActivityStore(t)
	mockActivity.On("ListByTeam", ctx, 3, 50).Return([]*models.Activity{
		{ID: 1, UserID: &userID, UserName: &name, Action: models.ActivitySignIn},
	}, nil).Once()

	service := team.NewTeamService(nil, nil, nil, nil, mockActivity)

	resp, err := service.Activity(ctx, 3)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "SIGN_IN", resp[0].Action)
	assert.Equal(t, "Ola", *resp[0].UserName)
}
