// Package types defines the small shared types of the catalog.
package types

// Void is used for values in maps used as sets.
type Void struct{}

// Unset is the sentinel for numeric attributes that carry no value.
const Unset int64 = -1
