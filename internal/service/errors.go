package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvitationInvalid  = errors.New("invitation not found or already used")
	ErrInvalidStatus      = errors.New("invoice cannot move to this status")
)
