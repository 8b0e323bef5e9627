package models

import "errors"

// ErrUnknownRestriction is returned when a restriction name cannot be parsed
var ErrUnknownRestriction = errors.New("unknown dietary restriction")
