package domain

import "errors"

var (
	ErrEmailTaken           = errors.New("user already exists with this email")
	ErrApplicationExists    = errors.New("an application already exists for this email address")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrApplicationFinalized = errors.New("application review is already finalized")
)
