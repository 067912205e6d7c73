package auth_test

import (
	"context"
	"errors"
	"testing"

	"team-backoffice/internal/lib/password"
	"team-backoffice/internal/models"
	repo "team-backoffice/internal/repository"
	"team-backoffice/internal/service"
	"team-backoffice/internal/service/auth"
	"team-backoffice/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	trm         *mocks.MockManager
	users       *mocks.UserStore
	teams       *mocks.TeamCreator
	members     *mocks.MemberAdder
	invitations *mocks.InvitationAcceptor
	activity    *mocks.ActivityLogger
	tokens      *mocks.TokenIssuer
}

func newService(t *testing.T) (*auth.AuthService, deps) {
	d := deps{
		trm:         &mocks.MockManager{},
		users:       mocks.NewUserStore(t),
		teams:       mocks.NewTeamCreator(t),
		members:     mocks.NewMemberAdder(t),
		invitations: mocks.NewInvitationAcceptor(t),
		activity:    mocks.NewActivityLogger(t),
		tokens:      mocks.NewTokenIssuer(t),
	}
	d.trm.Test(t)
	t.Cleanup(func() { d.trm.AssertExpectations(t) })

	s := auth.NewAuthService(d.trm, d.users, d.teams, d.members, d.invitations, d.activity, d.tokens)
	return s, d
}

func runTx(t *testing.T, trm *mocks.MockManager, ctx context.Context, want error) {
	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
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
}

func activity(action models.ActivityType) any {
	return mock.MatchedBy(func(a *models.Activity) bool {
		return a.Action == action
	})
}

func TestAuthService_SignUp_CreatesTeam(t *testing.T) {
	ctx := context.Background()
	s, d := newService(t)

	d.users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ola@bygg.no" && u.Name == "Ola" && u.PasswordHash != "secret123"
	})).Return(&models.User{ID: 7, Name: "Ola", Email: "ola@bygg.no"}, nil).Once()

	d.teams.On("Create", ctx, "ola@bygg.no's Team", mock.AnythingOfType("string")).
		Return(&models.Team{ID: 3}, nil).Once()

	d.members.On("Add", ctx, mock.MatchedBy(func(m *models.Member) bool {
		return m.UserID == 7 && m.TeamID == 3 && m.Role == models.RoleOwner
	})).Return(&models.Member{ID: 1}, nil).Once()

	d.activity.On("Log", ctx, activity(models.ActivitySignUp)).Return(nil).Once()
	d.activity.On("Log", ctx, activity(models.ActivityCreateTeam)).Return(nil).Once()
	d.tokens.On("Issue", 7).Return("token", nil).Once()

	runTx(t, d.trm, ctx, nil)

	resp, err := s.SignUp(ctx, auth.SignUpInput{
		Email:    " Ola@Bygg.no ",
		Password: "secret123",
		Name:     "Ola",
		IP:       "10.0.0.1",
	})

	require.NoError(t, err)
	assert.Equal(t, "token", resp.Token)
	assert.Equal(t, 7, resp.User.ID)
}

func TestAuthService_SignUp_AcceptsInvitation(t *testing.T) {
	ctx := context.Background()
	s, d := newService(t)
	inviteID := 11

	d.users.On("Create", ctx, mock.Anything).Return(&models.User{ID: 8, Email: "kari@bygg.no"}, nil).Once()
	d.invitations.On("GetPending", ctx, inviteID, "kari@bygg.no").
		Return(&models.Invitation{ID: inviteID, TeamID: 5, Role: models.RoleMember}, nil).Once()
	d.invitations.On("MarkAccepted", ctx, inviteID).Return(nil).Once()
	d.members.On("Add", ctx, mock.MatchedBy(func(m *models.Member) bool {
		return m.UserID == 8 && m.TeamID == 5 && m.Role == models.RoleMember
	})).Return(&models.Member{ID: 2}, nil).Once()
	d.activity.On("Log", ctx, activity(models.ActivitySignUp)).Return(nil).Once()
	d.activity.On("Log", ctx, activity(models.ActivityAcceptInvitation)).Return(nil).Once()
	d.tokens.On("Issue", 8).Return("token", nil).Once()

	runTx(t, d.trm, ctx, nil)

	resp, err := s.SignUp(ctx, auth.SignUpInput{Email: "kari@bygg.no", Password: "secret123", InviteID: &inviteID})

	require.NoError(t, err)
	assert.Equal(t, 8, resp.User.ID)
	d.teams.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_SignUp_InvalidInvitation(t *testing.T) {
	ctx := context.Background()
	s, d := newService(t)
	inviteID := 12

	d.users.On("Create", ctx, mock.Anything).Return(&models.User{ID: 9, Email: "per@bygg.no"}, nil).Once()
	d.invitations.On("GetPending", ctx, inviteID, "per@bygg.no").Return(nil, repo.ErrNotFound).Once()

	runTx(t, d.trm, ctx, service.ErrInvitationInvalid)

	resp, err := s.SignUp(ctx, auth.SignUpInput{Email: "per@bygg.no", Password: "secret123", InviteID: &inviteID})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, service.ErrInvitationInvalid)
}

func TestAuthService_SignUp_UserExists(t *testing.T) {
	ctx := context.Background()
	s, d := newService(t)

	d.users.On("Create", ctx, mock.Anything).Return(nil, repo.ErrUserExists).Once()

	runTx(t, d.trm, ctx, repo.ErrUserExists)

	resp, err := s.SignUp(ctx, auth.SignUpInput{Email: "ola@bygg.no", Password: "secret123"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrUserExists)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	ctx := context.Background()
	s, d := newService(t)

	hash, err := password.Hash("secret123")
	require.NoError(t, err)

	d.users.On("GetByEmail", ctx, "ola@bygg.no").
		Return(&models.User{ID: 7, Email: "ola@bygg.no", PasswordHash: hash}, nil).Once()
	d.teams.On("GetMembership", ctx, 7).Return(&models.Membership{TeamID: 3, Role: models.RoleOwner}, nil).Once()
	d.activity.On("Log", ctx, mock.MatchedBy(func(a *models.Activity) bool {
		return a.Action == models.ActivitySignIn && a.TeamID == 3 && *a.IPAddress == "10.0.0.1"
	})).Return(nil).Once()
	d.tokens.On("Issue", 7).Return("token", nil).Once()

	resp, err := s.SignIn(ctx, "ola@bygg.no", "secret123", "10.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "token", resp.Token)
}

func TestAuthService_SignIn_NoTeamSkipsActivity(t *testing.T) {
	ctx := context.Background()
	s, d := newService(t)

	hash, err := password.Hash("secret123")
	require.NoError(t, err)

	d.users.On("GetByEmail", ctx, "ola@bygg.no").Return(&models.User{ID: 7, PasswordHash: hash}, nil).Once()
	d.teams.On("GetMembership", ctx, 7).Return(nil, repo.ErrNotFound).Once()
	d.tokens.On("Issue", 7).Return("token", nil).Once()

	_, err = s.SignIn(ctx, "ola@bygg.no", "secret123", "")

	require.NoError(t, err)
	d.activity.AssertNotCalled(t, "Log", mock.Anything, mock.Anything)
}

func TestAuthService_SignIn_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	s, d := newService(t)

	hash, err := password.Hash("secret123")
	require.NoError(t, err)

	d.users.On("GetByEmail", ctx, "ola@bygg.no").Return(&models.User{ID: 7, PasswordHash: hash}, nil).Once()
	d.users.On("GetByEmail", ctx, "ukjent@bygg.no").Return(nil, repo.ErrNotFound).Once()

	_, err = s.SignIn(ctx, "ola@bygg.no", "wrong", "")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = s.SignIn(ctx, "ukjent@bygg.no", "secret123", "")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_SignIn_RepoError(t *testing.T) {
	ctx := context.Background()
	s, d := newService(t)
	dbErr := errors.New("db down")

	d.users.On("GetByEmail", ctx, "ola@bygg.no").Return(nil, dbErr).Once()

	_, err := s.SignIn(ctx, "ola@bygg.no", "secret123", "")

	assert.ErrorIs(t, err, dbErr)
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	s, d := newService(t)

	d.users.On("GetByID", ctx, 7).Return(&models.User{ID: 7, Name: "Ola", Email: "ola@bygg.no", Role: "member"}, nil).Once()

	resp, err := s.Me(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, "Ola", resp.Name)
	assert.Equal(t, "member", resp.Role)
}
