package types

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a data error, identified by a dotted code and described by its context.
type Error struct {
	Code    string
	Context map[string]any
}

func (err Error) Error() string {
	if len(err.Context) == 0 {
		return err.Code
	}
	keys := make([]string, 0, len(err.Context))
	for k := range err.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%+v", k, err.Context[k]))
	}
	return fmt.Sprintf("%s: %s", err.Code, strings.Join(parts, " "))
}

// Is reports whether target is an Error with the same code.
func (err Error) Is(target error) bool {
	other, ok := target.(Error)
	return ok && other.Code == err.Code
}

// NewError builds an error from a code and alternating context keys and values.
func NewError(code string, args ...any) Error {
	n := len(args)
	if n%2 != 0 {
		panic("Invalid error context args")
	}
	err := Error{Code: code, Context: make(map[string]any, n/2)}
	for i := 0; i < n; i += 2 {
		s, ok := args[i].(string)
		if !ok {
			panic("Invalid error context args")
		}
		err.Context[s] = args[i+1]
	}
	return err
}
