package launcher

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrSpawnFailed matches every *SpawnError.
	ErrSpawnFailed = errors.New("error during thread start")
	// ErrSpawnDenied is the cause of spawns refused by policy.
	ErrSpawnDenied = errors.New("spawn denied by policy")
)

// SpawnError reports a thread that could not be created. Status carries the
// OS style error number; Err the underlying cause.
type SpawnError struct {
	ThreadID string
	Callable string
	Status   syscall.Errno
	Err      error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%v: %v (callable %s, status %d)", ErrSpawnFailed, e.Err, e.Callable, int(e.Status))
}

func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawnFailed
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

func statusOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	if errors.Is(err, ErrSpawnDenied) {
		return syscall.EPERM
	}
	return syscall.EAGAIN
}
