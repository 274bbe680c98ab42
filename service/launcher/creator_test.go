package launcher

import (
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSThreads_Limit(t *testing.T) {
	threads := NewOSThreads(2)
	gate := make(chan struct{})
	started := make(chan struct{}, 2)
	entry := func() {
		started <- struct{}{}
		<-gate
	}

	require.NoError(t, threads.Create(entry))
	require.NoError(t, threads.Create(entry))
	assert.Equal(t, syscall.EAGAIN, threads.Create(entry))
	<-started
	<-started
	assert.Equal(t, 2, threads.Live())

	close(gate)
	require.Eventually(t, func() bool { return threads.Live() == 0 }, 2*time.Second, time.Millisecond)
}

func TestSpawnError(t *testing.T) {
	err := error(&SpawnError{ThreadID: "t-1", Callable: "job", Status: syscall.EAGAIN, Err: syscall.EAGAIN})
	assert.True(t, errors.Is(err, ErrSpawnFailed))
	assert.Contains(t, err.Error(), "error during thread start")
	assert.Contains(t, err.Error(), "job")

	assert.Equal(t, syscall.EPERM, statusOf(ErrSpawnDenied))
	assert.Equal(t, syscall.ENOMEM, statusOf(syscall.ENOMEM))
	assert.Equal(t, syscall.EAGAIN, statusOf(errors.New("unknown")))
}
