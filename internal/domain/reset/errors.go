package reset

import "errors"

var (
	ErrResetRecordNotFound = errors.New("reset record not found")
)
