package combinator

import "sync/atomic"

// stepCount tallies reduction steps taken across the process; its report
// is gated behind LAZYK_DEBUG the same way pkg/lambda/translate.go's
// DELTA_DEBUG toggle gates the teacher's own verbose translation trace. It is an
// atomic counter rather than a plain int because tests exercise the
// reducer from multiple packages without any synchronization of their
// own (the reducer itself is still single-threaded per call, per §5).
var stepCount atomic.Int64

// StepCount reports the number of reduction steps taken since the last
// ResetStepCount, for the LAZYK_DEBUG stats dump in internal/driver.
func StepCount() int64 { return stepCount.Load() }

// ResetStepCount zeroes the step counter, called once per driver run so
// repeated Run calls in a test binary report independent counts.
func ResetStepCount() { stepCount.Store(0) }

// reduce computes the weak-head-normal form of e per the rewrite table:
// only the spine (leftmost chain of Apply) is forced; arguments stay
// thunked and are forced on demand by whichever combinator inspects
// them. Iota-unpacking and the S rule duplicate an argument thunk by
// sharing the same *Thunk, not by copying its contents, so the shared
// work is performed at most once.
func reduce(e Expression) (Expression, error) {
	for {
		stepCount.Add(1)
		switch e.Kind {
		case KindApply:
			f, err := e.Arg0.Thaw()
			if err != nil {
				return Expression{}, err
			}
			x := e.Arg1

			switch f.Kind {
			case KindS:
				return S1(x), nil
			case KindK:
				return K1(x), nil
			case KindI:
				return x.Thaw()
			case KindIota:
				e = ApplyExpr(Freeze(ApplyExpr(x, Freeze(S))), Freeze(K))
			case KindS1:
				return S2(f.Arg0, x), nil
			case KindS2:
				a, b := f.Arg0, f.Arg1
				e = ApplyExpr(Freeze(ApplyExpr(a, x)), Freeze(ApplyExpr(b, x)))
			case KindK1:
				return f.Arg0.Thaw()
			case KindApply:
				// Only a Magic primitive's Apply can hand back a stuck
				// Apply as its own WHNF; that spine cannot consume x.
				return ApplyExpr(Freeze(f), x), nil
			case KindMagic:
				// A magic primitive's Apply is responsible for fully
				// reducing its own result (Input does so by calling
				// reduce itself; NatDecoder's results, reduced or
				// stuck, are already terminal) — unlike Iota/S2 the
				// outer loop must not re-dispatch on it, or a stuck
				// NatDecoder form would be handed straight back to
				// this same Apply and loop forever.
				return f.Magic.Apply(x)
			default:
				return Expression{}, errUnreachableHead(f.Kind)
			}

		case KindMagic:
			// Same reasoning as above: Reduce already returns a final
			// weak-head-normal form.
			return e.Magic.Reduce()

		default:
			return e, nil
		}
	}
}
