package models

import "time"

type ActivityType string

const (
	ActivitySignUp           ActivityType = "SIGN_UP"
	ActivitySignIn           ActivityType = "SIGN_IN"
	ActivitySignOut          ActivityType = "SIGN_OUT"
	ActivityUpdatePassword   ActivityType = "UPDATE_PASSWORD"
	ActivityDeleteAccount    ActivityType = "DELETE_ACCOUNT"
	ActivityUpdateAccount    ActivityType = "UPDATE_ACCOUNT"
	ActivityCreateTeam       ActivityType = "CREATE_TEAM"
	ActivityRemoveMember     ActivityType = "REMOVE_TEAM_MEMBER"
	ActivityInviteMember     ActivityType = "INVITE_TEAM_MEMBER"
	ActivityAcceptInvitation ActivityType = "ACCEPT_INVITATION"
)

type Activity struct {
	ID        int          `db:"id"`
	TeamID    int          `db:"team_id"`
	UserID    *int         `db:"user_id"`
	UserName  *string      `db:"user_name"`
	Action    ActivityType `db:"action"`
	Timestamp time.Time    `db:"timestamp"`
	IPAddress *string      `db:"ip_address"`
}

// NewActivity builds a log entry for an action a user took in a team.
func NewActivity(teamID, userID int, action ActivityType, ip string) *Activity {
	a := &Activity{
		TeamID: teamID,
		UserID: &userID,
		Action: action,
	}
	if ip != "" {
		a.IPAddress = &ip
	}
	return a
}
