package combinator

// ChurchNat builds the Church numeral for n: the function that applies
// its first argument n times to its second. zero = K I;
// succ(e) = S (S (K S) K) e.
func ChurchNat(n int) Expression {
	e := Apply(K, I)
	for i := 0; i < n; i++ {
		e = churchSucc(e)
	}
	return e
}

func churchSucc(e Expression) Expression {
	inner := Apply(Apply(S, Apply(K, S)), K)
	return Apply(Apply(S, inner), e)
}

// DecodeChurchNat probes e as a Church numeral by applying it to the
// NatDecoder markers Succ and Nat(0) and reducing. Succeeding means e
// applies its first argument (Succ) n times to its second (Nat(0)),
// which Succ's Apply rule turns into Nat(n). This makes decoding a
// side effect of ordinary reduction: large numerals decode in time
// linear in n, not in the size of their syntactic representation,
// because every intermediate application thunk is memoized once.
func DecodeChurchNat(e Expression) (int, bool, error) {
	probe := Apply(Apply(e, WrapMagic(Succ)), WrapMagic(Nat(0)))
	result, err := reduce(probe)
	if err != nil {
		return 0, false, err
	}
	if result.Kind == KindMagic {
		if d, ok := result.Magic.(NatDecoder); ok {
			if n, isNat := d.Count(); isNat {
				return n, true, nil
			}
		}
	}
	return 0, false, nil
}

// Cons builds the Scott-list cell cons(h, t) = S (S I (K h)) (K t).
func Cons(h, t Expression) Expression {
	left := Apply(Apply(S, I), Apply(K, h))
	right := Apply(K, t)
	return Apply(Apply(S, left), right)
}

// Uncons decomposes a list expression into (head, tail) by applying it
// to K (selects the head) and to K I (selects the tail). Both results
// share a single frozen reference to list, so whichever is forced
// first does the (typically expensive) reduction work just once and
// the other reuses it.
func Uncons(list Expression) (head, tail Expression) {
	shared := Freeze(list)
	head = ApplyExpr(shared, Freeze(K))
	tail = ApplyExpr(shared, Freeze(Apply(K, I)))
	return head, tail
}
