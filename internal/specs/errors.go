package specs

import "errors"

var (
	ErrUnreadable      = errors.New("file unreadable")
	ErrNotFound        = errors.New("not found")
	ErrUnparseable     = errors.New("unparseable")
	ErrUnsupportedUnit = errors.New("unsupported unit")
	ErrEncoding        = errors.New("invalid text encoding")
)
