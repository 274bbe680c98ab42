package callable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	calls int
}

func (c *counter) Invoke() error {
	c.calls++
	return nil
}

func TestFrom(t *testing.T) {
	var nilFunc func()
	var nilCounter *counter
	testCases := []struct {
		name        string
		value       interface{}
		expectError bool
	}{
		{name: "plain func", value: func() {}},
		{name: "error func", value: func() error { return nil }},
		{name: "func with results", value: func() (int, string) { return 1, "a" }},
		{name: "variadic func", value: func(args ...int) {}},
		{name: "callable implementation", value: &counter{}},
		{name: "adapter", value: Func(func() {})},
		{name: "handle", value: New(Func(func() {}))},
		{name: "nil", value: nil, expectError: true},
		{name: "int", value: 42, expectError: true},
		{name: "string", value: "callback", expectError: true},
		{name: "func with arguments", value: func(int) {}, expectError: true},
		{name: "nil func", value: nilFunc, expectError: true},
		{name: "nil callable pointer", value: nilCounter, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := From(tc.value)
			if tc.expectError {
				assert.ErrorIs(t, err, ErrNotCallable)
				var typeErr *TypeError
				assert.True(t, errors.As(err, &typeErr))
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestFrom_TrailingError(t *testing.T) {
	boom := errors.New("boom")
	c, err := From(func() (int, error) { return 0, boom })
	require.NoError(t, err)
	assert.ErrorIs(t, c.Invoke(), boom)

	c, err = From(func() (int, error) { return 1, nil })
	require.NoError(t, err)
	assert.NoError(t, c.Invoke())
}

func TestNameOf(t *testing.T) {
	assert.Equal(t, "nil", NameOf(nil))
	assert.Equal(t, "int", NameOf(1))
	assert.Contains(t, NameOf(TestNameOf), "TestNameOf")
	assert.Equal(t, "job", NameOf(New(Func(func() {}), WithName("job"))))
}
