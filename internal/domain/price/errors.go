package price

import "errors"

var (
	ErrPriceNotFound = errors.New("price not configured for this size and subtype")
)
