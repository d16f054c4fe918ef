package blacklist

import "errors"

var (
	ErrWindowNotFound = errors.New("blacklist window not found")
	ErrNotWindowOwner = errors.New("blacklist window belongs to another manager")
)
