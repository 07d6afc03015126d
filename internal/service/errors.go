package service

import "errors"

// Expected, caller-facing failures of the processes in this package. The API
// layer maps each of them to an HTTP status; none of them is a crash.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrFolderNotFound     = errors.New("folder not found")
	ErrFileNotFound       = errors.New("file not found")
	ErrRootFolderNotFound = errors.New("root folder not found")

	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token has expired")

	ErrOwnershipViolated = errors.New("caller is not the owner of the record")

	ErrInvalidLogin    = errors.New("login must be at least 4 alphanumeric characters")
	ErrInvalidPassword = errors.New("password must be at least 8 alphanumeric characters and contain a lower-case letter, an upper-case letter and a digit")

	ErrUserAlreadyExists    = errors.New("a user with this login already exists")
	ErrUserNotAuthenticated = errors.New("invalid login or password")
)
