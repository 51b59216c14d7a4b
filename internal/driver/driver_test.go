package driver

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vic/lazyk/internal/combinator"
	"github.com/vic/lazyk/internal/lazyparse"
)

func TestEmptyProgramEchoesInputAndExitsZeroOnEOF(t *testing.T) {
	prog, err := lazyparse.Parse("")
	require.NoError(t, err)

	var out bytes.Buffer
	code, err := Run(prog, strings.NewReader("hi"), &out)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "hi", out.String())
}

func TestIdentityProgramEchoesLikeEmptyProgram(t *testing.T) {
	prog, err := lazyparse.Parse("I")
	require.NoError(t, err)

	var out bytes.Buffer
	code, err := Run(prog, strings.NewReader("abc"), &out)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "abc", out.String())
}

func TestEmptyInputExitsZeroWithNoOutput(t *testing.T) {
	prog, err := lazyparse.Parse("I")
	require.NoError(t, err)

	var out bytes.Buffer
	code, err := Run(prog, strings.NewReader(""), &out)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "", out.String())
}

func TestNonNumeralOutputIsReported(t *testing.T) {
	// "K" applied to the input list, then asked to produce a numeral: K
	// ignores the selector argument and yields the raw input cons cell,
	// which is not a valid Church numeral.
	prog, err := lazyparse.Parse("K")
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = Run(prog, strings.NewReader(""), &out)
	require.ErrorIs(t, err, ErrNonNumeralOutput)
}

func TestDebugTraceDumpsStepCountToStderr(t *testing.T) {
	prog, err := lazyparse.Parse("I")
	require.NoError(t, err)

	old := os.Getenv("LAZYK_DEBUG")
	require.NoError(t, os.Setenv("LAZYK_DEBUG", "1"))
	debugTrace = true
	defer func() {
		debugTrace = old != ""
		require.NoError(t, os.Setenv("LAZYK_DEBUG", old))
	}()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = origStderr }()

	var out bytes.Buffer
	_, err = Run(prog, strings.NewReader("x"), &out)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	var captured bytes.Buffer
	_, readErr := captured.ReadFrom(r)
	require.NoError(t, readErr)

	require.Contains(t, captured.String(), "reduction steps")
	require.Greater(t, combinator.StepCount(), int64(0))
}

func TestSentinelNumeralSelectsExitCode(t *testing.T) {
	// Bypass the parser: build a program whose output list head is the
	// constant numeral 256+42, ignoring stdin entirely.
	out256plus42 := combinator.Apply(combinator.K, combinator.Cons(combinator.ChurchNat(256+42), combinator.I))
	prog := &lazyparse.Program{Expr: out256plus42}

	var out bytes.Buffer
	code, err := Run(prog, strings.NewReader(""), &out)
	require.NoError(t, err)
	require.Equal(t, 42, code)
	require.Equal(t, "", out.String())
}
