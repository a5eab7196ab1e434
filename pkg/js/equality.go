package js

// StrictEquals implements the === comparison: different kinds are never
// equal, NaN is not equal to itself, +0 equals -0, objects compare by
// identity.
func StrictEquals(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindUndefined, KindNull:
		return true
	case KindBoolean:
		return a.bool == b.bool
	case KindNumber:
		// Go float64 == already gives NaN != NaN and +0 == -0.
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindObject:
		return a.obj == b.obj
	}
	return false
}

// Equals implements the == comparison matrix. It only fails when an object
// operand has to be reduced via ToPrimitive and cannot be.
func Equals(a, b Value) (bool, error) {
	if a.kind == b.kind {
		return StrictEquals(a, b), nil
	}

	switch {
	case (a.kind == KindNull && b.kind == KindUndefined) ||
		(a.kind == KindUndefined && b.kind == KindNull):
		return true, nil

	case a.kind == KindNumber && b.kind == KindString:
		return a.num == parseNumber(b.str), nil

	case a.kind == KindString && b.kind == KindNumber:
		return parseNumber(a.str) == b.num, nil

	case a.kind == KindBoolean:
		n, _ := ToNumber(a)
		return Equals(Number(n), b)

	case b.kind == KindBoolean:
		n, _ := ToNumber(b)
		return Equals(a, Number(n))

	case (a.kind == KindNumber || a.kind == KindString) && b.kind == KindObject:
		prim, err := ToPrimitive(b, HintDefault)
		if err != nil {
			return false, err
		}
		return Equals(a, prim)

	case a.kind == KindObject && (b.kind == KindNumber || b.kind == KindString):
		prim, err := ToPrimitive(a, HintDefault)
		if err != nil {
			return false, err
		}
		return Equals(prim, b)
	}

	return false, nil
}
