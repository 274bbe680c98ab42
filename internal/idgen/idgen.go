package idgen

import "github.com/google/uuid"

// NewFunc returns a new globally unique identifier.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new identifier.
func New() string { return NewFunc() }

// Thread returns an identifier for a spawned thread.
func Thread() string { return "thread-" + NewFunc() }
