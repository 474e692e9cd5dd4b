package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrWorkerNotFound          = errors.New("worker not found")
	ErrDuplicateUsername       = errors.New("username already taken")
	ErrInvalidCurrentPassword  = errors.New("current password is incorrect")
	ErrInvalidPhotoType        = errors.New("invalid file type: only jpg, jpeg, png allowed")
	ErrOwnerAccessRequired     = errors.New("owner access required")
	ErrWorkerAccessRequired    = errors.New("worker access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
