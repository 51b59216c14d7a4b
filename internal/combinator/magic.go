package combinator

import "fmt"

// MagicExpr is the reducer's extension point for opaque or
// side-effecting leaves. Reduce is invoked when a bare Magic(m) is the
// current term; Apply is invoked when Magic(m) is the head of an
// application. The reducer returns what either hook yields without
// reducing it further, so each must return a weak-head-normal form, or
// a stuck form that preserves its argument — an Apply that drops x
// silently would break the engine.
type MagicExpr interface {
	String() string
	Reduce() (Expression, error)
	Apply(x *Thunk) (Expression, error)
}

// NatDecoder is a probe injected by the Church-numeral decoder (see
// codec.go): Succ increments, Nat(n) carries the decoded count so far.
// The parser never produces these; they exist only as decoding
// machinery.
type NatDecoder struct {
	isSucc bool
	n      int
}

// Succ is the NatDecoder probe that increments a Nat it is applied to.
var Succ = NatDecoder{isSucc: true}

// Nat wraps a decoded count.
func Nat(n int) NatDecoder { return NatDecoder{n: n} }

// Count returns the decoded count for a Nat(n) decoder, and false for
// Succ.
func (d NatDecoder) Count() (int, bool) {
	if d.isSucc {
		return 0, false
	}
	return d.n, true
}

func (d NatDecoder) String() string {
	if d.isSucc {
		return "Succ"
	}
	return fmt.Sprintf("Nat(%d)", d.n)
}

// Reduce is a no-op: NatDecoder values are already their own
// weak-head-normal form.
func (d NatDecoder) Reduce() (Expression, error) {
	return WrapMagic(d), nil
}

// Apply implements the two NatDecoder rules: Succ applied to a reduced
// Nat(n) becomes Nat(n+1); everything else, including Nat(n) applied to
// anything, is stuck and preserved as an Apply.
func (d NatDecoder) Apply(x *Thunk) (Expression, error) {
	if !d.isSucc {
		return ApplyExpr(Freeze(WrapMagic(d)), x), nil
	}

	xv, err := x.Thaw()
	if err != nil {
		return Expression{}, err
	}
	if xv.Kind == KindMagic {
		if inner, ok := xv.Magic.(NatDecoder); ok {
			if n, isNat := inner.Count(); isNat {
				return WrapMagic(Nat(n + 1)), nil
			}
		}
	}
	return ApplyExpr(Freeze(WrapMagic(d)), Freeze(xv)), nil
}
