package auth

import (
	"context"
	"errors"
	"strings"

	"team-backoffice/internal/http/api"
	"team-backoffice/internal/lib/password"
	"team-backoffice/internal/models"
	repo "team-backoffice/internal/repository"
	"team-backoffice/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserStore
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, userID int) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamCreator
type TeamCreator interface {
	Create(ctx context.Context, name, slug string) (*models.Team, error)
	GetMembership(ctx context.Context, userID int) (*models.Membership, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MemberAdder
type MemberAdder interface {
	Add(ctx context.Context, m *models.Member) (*models.Member, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=InvitationAcceptor
type InvitationAcceptor interface {
	GetPending(ctx context.Context, id int, email string) (*models.Invitation, error)
	MarkAccepted(ctx context.Context, id int) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ActivityLogger
type ActivityLogger interface {
	Log(ctx context.Context, a *models.Activity) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TokenIssuer
type TokenIssuer interface {
	Issue(userID int) (string, error)
}

type AuthService struct {
	trm         service.TransactionManager
	users       UserStore
	teams       TeamCreator
	members     MemberAdder
	invitations InvitationAcceptor
	activity    ActivityLogger
	tokens      TokenIssuer
}

func NewAuthService(
	trm service.TransactionManager,
	users UserStore,
	teams TeamCreator,
	members MemberAdder,
	invitations InvitationAcceptor,
	activity ActivityLogger,
	tokens TokenIssuer,
) *AuthService {
	return &AuthService{
		trm:         trm,
		users:       users,
		teams:       teams,
		members:     members,
		invitations: invitations,
		activity:    activity,
		tokens:      tokens,
	}
}

type SignUpInput struct {
	Email    string
	Password string
	Name     string
	InviteID *int
	IP       string
}

// SignUp registers a user. Without an invitation the user gets a team of
// their own, with one they join the inviting team.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*api.AuthResponse, error) {
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	var user *models.User

	err = s.trm.Do(ctx, func(ctx context.Context) error {
		user, err = s.users.Create(ctx, &models.User{
			Name:         in.Name,
			Email:        email,
			PasswordHash: hash,
			Role:         models.RoleMember,
		})
		if err != nil {
			return err
		}

		var (
			teamID int
			role   string
			action models.ActivityType
		)

		if in.InviteID != nil {
			inv, err := s.invitations.GetPending(ctx, *in.InviteID, email)
			if err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return service.ErrInvitationInvalid
				}
				return err
			}

			if err := s.invitations.MarkAccepted(ctx, inv.ID); err != nil {
				return err
			}

			teamID, role, action = inv.TeamID, inv.Role, models.ActivityAcceptInvitation
		} else {
			team, err := s.teams.Create(ctx, email+"'s Team", uuid.NewString())
			if err != nil {
				return err
			}

			teamID, role, action = team.ID, models.RoleOwner, models.ActivityCreateTeam
		}

		_, err = s.members.Add(ctx, &models.Member{
			UserID: user.ID,
			TeamID: teamID,
			Role:   role,
		})
		if err != nil {
			return err
		}

		if err := s.activity.Log(ctx, models.NewActivity(teamID, user.ID, models.ActivitySignUp, in.IP)); err != nil {
			return err
		}

		return s.activity.Log(ctx, models.NewActivity(teamID, user.ID, action, in.IP))
	})
	if err != nil {
		return nil, err
	}

	return s.respond(user)
}

func (s *AuthService) SignIn(ctx context.Context, email, plain, ip string) (*api.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Compare(user.PasswordHash, plain); err != nil {
		return nil, service.ErrInvalidCredentials
	}

	m, err := s.teams.GetMembership(ctx, user.ID)
	switch {
	case err == nil:
		if err := s.activity.Log(ctx, models.NewActivity(m.TeamID, user.ID, models.ActivitySignIn, ip)); err != nil {
			return nil, err
		}
	case !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}

	return s.respond(user)
}

func (s *AuthService) Me(ctx context.Context, userID int) (*api.UserSchema, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := api.ToUserSchema(user)
	return &resp, nil
}

func (s *AuthService) respond(user *models.User) (*api.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &api.AuthResponse{
		Token: token,
		User:  api.ToUserSchema(user),
	}, nil
}
