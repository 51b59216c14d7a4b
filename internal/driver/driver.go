// Package driver implements the Lazy K I/O loop: it feeds a program the
// input byte stream as a lazy Scott list of Church numerals and decodes
// the resulting output list back to bytes until a sentinel numeral
// terminates the run.
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vic/lazyk/internal/combinator"
	"github.com/vic/lazyk/internal/lazyparse"
)

// debugTrace gates the reduction-step stats dump emitted when Run
// finishes, mirroring pkg/lambda/translate.go's DELTA_DEBUG toggle.
var debugTrace = os.Getenv("LAZYK_DEBUG") != ""

// ErrNonNumeralOutput is returned when the head of the current
// output-list cell does not reduce to a Church numeral.
var ErrNonNumeralOutput = errors.New("attempt to output non-numeral")

// Run applies prog to in and streams decoded bytes to out, one Write per
// byte; when out also has a Flush() error method, Run calls it after
// every byte. It returns the program's chosen exit status from the
// sentinel numeral.
func Run(prog *lazyparse.Program, in io.Reader, out io.Writer) (int, error) {
	combinator.ResetStepCount()
	if debugTrace {
		defer func() {
			fmt.Fprintf(os.Stderr, "lazyk: %d reduction steps\n", combinator.StepCount())
		}()
	}

	reader := combinator.NewReader(in)
	cur := combinator.Apply(prog.Expr, combinator.WrapMagic(combinator.NewInput(reader)))

	flusher, _ := out.(interface{ Flush() error })

	for {
		head, tail := combinator.Uncons(cur)

		n, isNumeral, err := combinator.DecodeChurchNat(head)
		if err != nil {
			return 0, err
		}
		if !isNumeral {
			return 0, ErrNonNumeralOutput
		}

		if n >= 256 {
			return n - 256, nil
		}

		if _, err := out.Write([]byte{byte(n)}); err != nil {
			return 0, err
		}
		if flusher != nil {
			if err := flusher.Flush(); err != nil {
				return 0, err
			}
		}

		cur = tail
	}
}
