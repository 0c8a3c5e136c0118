package core

import "errors"

var (
	// ErrConstruction is wrapped by every error returned while building a grid
	// or habitat from loader input.
	ErrConstruction = errors.New("construction error")
	// ErrInvalidRule reports a rulestring that could not be parsed.
	ErrInvalidRule = errors.New("invalid rule")
)
