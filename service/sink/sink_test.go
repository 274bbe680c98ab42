package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_Report(t *testing.T) {
	buf := &bytes.Buffer{}
	aSink := NewLog(zerolog.New(buf))
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	aSink.Report(context.Background(), &Report{
		ThreadID:  "thread-1",
		Callable:  "job",
		Err:       errors.New("boom"),
		Panicked:  true,
		Stack:     []byte("goroutine 7"),
		StartedAt: started,
		EndedAt:   started.Add(time.Second),
	})

	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "callback failed", entry["message"])
	assert.Equal(t, "thread-1", entry["thread"])
	assert.Equal(t, "job", entry["callable"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, true, entry["panic"])
	assert.Equal(t, "goroutine 7", entry["stack"])
}

func TestByKind(t *testing.T) {
	logger := zerolog.Nop()
	testCases := []struct {
		kind      string
		expectErr bool
		discard   bool
	}{
		{kind: ""},
		{kind: "LOG"},
		{kind: KindDiscard, discard: true},
		{kind: "kafka", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.kind, func(t *testing.T) {
			aSink, err := ByKind(tc.kind, logger)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.discard, aSink == Discard)
		})
	}
}
