package dbhelper

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCodeInvalid        = errors.New("confirmation code invalid or expired")

	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists for this user")

	ErrHabitNotFound    = errors.New("habit not found")
	ErrHabitLogNotFound = errors.New("habit log not found")

	ErrChallengeNotFound      = errors.New("challenge not found")
	ErrParticipantNotFound    = errors.New("participant not found")
	ErrChallengeHabitNotFound = errors.New("challenge habit not found")
	ErrAlreadyJoined          = errors.New("user already joined this challenge")
)
