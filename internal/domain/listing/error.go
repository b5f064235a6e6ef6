package listing

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateID      = errors.New("record id already used")
	ErrInvalid          = errors.New("invalid record")
	ErrProtected        = errors.New("record is protected")
	ErrUnknownDimension = errors.New("unknown filter dimension")
	ErrBadFilter        = errors.New("malformed filter")
)
