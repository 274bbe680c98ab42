package threadstart

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidArguments is returned when a host method gets the wrong number of
// arguments.
var ErrInvalidArguments = errors.New("invalid arguments")

// Method is an operation exported to the embedding host.
type Method struct {
	Name string
	Doc  string
	Fn   func(ctx context.Context, args ...interface{}) (interface{}, error)
}

// Methods returns the table of operations the host registers when it loads
// the module.
func (s *Service) Methods() []*Method {
	return []*Method{
		{Name: "thread_start", Doc: "Start a new thread.", Fn: s.threadStart},
	}
}

// Lookup returns the host method with the given name.
func (s *Service) Lookup(name string) (*Method, bool) {
	for _, method := range s.Methods() {
		if method.Name == name {
			return method, true
		}
	}
	return nil, false
}

func (s *Service) threadStart(ctx context.Context, args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("thread_start: %w: expected 1 argument, got %d", ErrInvalidArguments, len(args))
	}
	return nil, s.ThreadStart(ctx, args[0])
}
