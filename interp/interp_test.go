package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orlp/pyth5/fixtures"
	"github.com/orlp/pyth5/interp"
)

// TestScenarios runs every (source, stdout) pair from the embedded
// scenario table through Interpret.
func TestScenarios(t *testing.T) {
	scenarios, err := fixtures.Load()
	require.NoError(t, err)
	require.Len(t, scenarios, 15)

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			var opts []interp.Option
			if sc.Stdin != "" {
				opts = append(opts, interp.WithStdin(sc.Stdin))
			}
			out, err := interp.Interpret([]byte(sc.Source), opts...)
			require.NoError(t, err)
			assert.Equal(t, sc.Output, trimTrailingNewline(out))
		})
	}
}

func trimTrailingNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}
	return s
}

func TestInterpret_PartialOutputOnError(t *testing.T) {
	// "p" prints "ok" before the second statement; "h" (head) on the
	// empty-string preset "d" raises an IndexError. The partial stdout
	// preceding the failure must still be delivered.
	out, err := interp.Interpret([]byte(`p"ok"hd`))
	require.Error(t, err)
	assert.Equal(t, "ok", out)
}

func TestInterpret_BreakNeverEscapesToCaller(t *testing.T) {
	// A "B" outside of any enclosing loop unwinds to the root silently;
	// the internal break signal never surfaces as an error.
	out, err := interp.Interpret([]byte(`p"before"Bp"after"`))
	require.NoError(t, err)
	assert.Equal(t, "before", out)
}

func TestInterpret_ForeverLoopSwallowsErrors(t *testing.T) {
	// "hd" (head of the empty-string preset) raises an IndexError on
	// every iteration; inside "#" that terminates the loop normally
	// instead of aborting the run, so the trailing literal still prints.
	out, err := interp.Interpret([]byte(`#p"x"hd)"done"`))
	require.NoError(t, err)
	assert.Equal(t, "xdone\n", out)
}

func TestInterpret_ForeverLoopBreak(t *testing.T) {
	out, err := interp.Interpret([]byte(`#B)5`))
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestInterpret_PlusNoArgsIsInfinity(t *testing.T) {
	out, err := interp.Interpret([]byte(`+)`))
	require.NoError(t, err)
	assert.Equal(t, "inf\n", out)
}

func TestInterpret_CachedRunMatchesFirstRun(t *testing.T) {
	cache := interp.NewCache()
	src := []byte(`+3 5`)

	out1, err := interp.Interpret(src, interp.WithCache(cache))
	require.NoError(t, err)
	out2, err := interp.Interpret(src, interp.WithCache(cache))
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
	assert.Equal(t, "8\n", out1)
}

func TestInterpret_DebugDumpPrecedesOutput(t *testing.T) {
	out, err := interp.Interpret([]byte(`+3 5`), interp.WithDebug())
	require.NoError(t, err)
	assert.Contains(t, out, "bytes ======")
	assert.Contains(t, out, "8")
}
