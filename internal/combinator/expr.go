// Package combinator implements the lazy S/K/I/Iota graph reducer: the
// expression model, shared memoized thunks, the magic-primitive
// extension point, and the Church-numeral / Scott-list codecs that
// bridge it to host bytes.
package combinator

import "fmt"

// Kind identifies which variant an Expression holds.
type Kind int

const (
	KindI Kind = iota
	KindS
	KindK
	KindIota
	KindK1
	KindS1
	KindS2
	KindApply
	KindMagic
)

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindS:
		return "S"
	case KindK:
		return "K"
	case KindIota:
		return "Iota"
	case KindK1:
		return "K1"
	case KindS1:
		return "S1"
	case KindS2:
		return "S2"
	case KindApply:
		return "Apply"
	case KindMagic:
		return "Magic"
	default:
		return "Unknown"
	}
}

// Expression is a node of the evaluation graph. The zero value is the
// I combinator, matching the grammar rule that an empty program folds
// to I.
//
// Arg0/Arg1 hold the Thunk operands for K1/S1/S2/Apply; Magic holds the
// payload for KindMagic. Leaves (I, S, K, Iota) use none of these.
type Expression struct {
	Kind  Kind
	Arg0  *Thunk
	Arg1  *Thunk
	Magic MagicExpr
}

var (
	I    = Expression{Kind: KindI}
	S    = Expression{Kind: KindS}
	K    = Expression{Kind: KindK}
	Iota = Expression{Kind: KindIota}
)

// K1 builds a partial application `K a`.
func K1(a *Thunk) Expression { return Expression{Kind: KindK1, Arg0: a} }

// S1 builds a partial application `S a`.
func S1(a *Thunk) Expression { return Expression{Kind: KindS1, Arg0: a} }

// S2 builds a partial application `S a b`.
func S2(a, b *Thunk) Expression { return Expression{Kind: KindS2, Arg0: a, Arg1: b} }

// ApplyExpr builds an unevaluated application; it performs no reduction.
func ApplyExpr(f, x *Thunk) Expression { return Expression{Kind: KindApply, Arg0: f, Arg1: x} }

// WrapMagic lifts a MagicExpr into an Expression.
func WrapMagic(m MagicExpr) Expression { return Expression{Kind: KindMagic, Magic: m} }

// Apply returns Apply(freeze(f), freeze(x)) without reducing.
func Apply(f, x Expression) Expression {
	return ApplyExpr(Freeze(f), Freeze(x))
}

func (e Expression) String() string {
	switch e.Kind {
	case KindI, KindS, KindK, KindIota:
		return e.Kind.String()
	case KindK1:
		return fmt.Sprintf("(K %s)", e.Arg0)
	case KindS1:
		return fmt.Sprintf("(S %s)", e.Arg0)
	case KindS2:
		return fmt.Sprintf("(S %s %s)", e.Arg0, e.Arg1)
	case KindApply:
		return fmt.Sprintf("(%s %s)", e.Arg0, e.Arg1)
	case KindMagic:
		return e.Magic.String()
	default:
		return "?"
	}
}
