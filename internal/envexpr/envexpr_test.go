package envexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandWith(t *testing.T) {
	env := map[string]string{"FOO": "bar", "A": "1", "B": "2", "X": "x"}
	lookup := func(key string) string { return env[key] }

	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "no expressions", input: "just a plain string", expect: "just a plain string"},
		{name: "single expression", input: "value is ${env.FOO}", expect: "value is bar"},
		{name: "multiple expressions", input: "${env.A}-${env.B}-${env.A}", expect: "1-2-1"},
		{name: "unset variable becomes empty", input: "unset=${env.NOTSET}-end", expect: "unset=-end"},
		{name: "invalid key keeps prefix", input: "start ${env.X and ${env.B} end", expect: "start ${env.X and 2 end"},
		{name: "missing closing brace", input: "tail ${env.FOO", expect: "tail ${env.FOO"},
		{name: "prefix only no key", input: "oops ${env.} done", expect: "oops  done"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ExpandWith(tc.input, lookup))
		})
	}
}

func TestExpand(t *testing.T) {
	t.Setenv("THREADSTART_TEST_LIMIT", "12")
	assert.Equal(t, "maxThreads: 12", Expand("maxThreads: ${env.THREADSTART_TEST_LIMIT}"))
}
