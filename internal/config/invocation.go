package config

import (
	"errors"
	"fmt"
)

// ErrMissingArgument is returned when a required positional argument is absent.
var ErrMissingArgument = errors.New("not enough arguments provided")

// Invocation is the positional part of a word count run.
type Invocation struct {
	Path     string
	Query    string
	HasQuery bool
}

// ParseInvocation builds an Invocation from positional arguments
// (program name excluded). The first argument is the file path, the
// optional second one is the query.
func ParseInvocation(args []string) (Invocation, error) {
	if len(args) == 0 || args[0] == "" {
		return Invocation{}, fmt.Errorf("%w: missing file path", ErrMissingArgument)
	}
	if len(args) > 2 {
		return Invocation{}, fmt.Errorf("too many arguments: expected <file-path> [query], got %d", len(args))
	}

	inv := Invocation{Path: args[0]}
	if len(args) == 2 {
		inv.Query = args[1]
		inv.HasQuery = true
	}
	return inv, nil
}
