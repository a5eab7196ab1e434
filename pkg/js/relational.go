package js

import (
	"math"
	"unicode/utf16"
)

// LessThan implements the abstract relational comparison. Both operands are
// reduced with hint number; if both resolve to strings the comparison is
// lexicographic by UTF-16 code unit, otherwise numeric with NaN making the
// result false.
func LessThan(a, b Value) (bool, error) {
	ap, err := ToPrimitive(a, HintNumber)
	if err != nil {
		return false, err
	}
	bp, err := ToPrimitive(b, HintNumber)
	if err != nil {
		return false, err
	}

	if ap.kind == KindString && bp.kind == KindString {
		return lessThanStrings(ap.str, bp.str), nil
	}

	an, _ := ToNumber(ap)
	bn, _ := ToNumber(bp)
	if math.IsNaN(an) || math.IsNaN(bn) {
		return false, nil
	}
	return an < bn, nil
}

// GreaterThan is defined as LessThan with the operands swapped.
func GreaterThan(a, b Value) (bool, error) {
	return LessThan(b, a)
}

// LessThanOrEqual is the negation of GreaterThan, not an independent
// comparison. This is what makes x <= y true when NaN keeps both x < y
// and x == y false.
func LessThanOrEqual(a, b Value) (bool, error) {
	gt, err := LessThan(b, a)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

// GreaterThanOrEqual is the negation of LessThan.
func GreaterThanOrEqual(a, b Value) (bool, error) {
	lt, err := LessThan(a, b)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

// lessThanStrings compares by UTF-16 code unit, which orders astral-plane
// characters by their surrogate halves rather than by UTF-8 byte order.
func lessThanStrings(a, b string) bool {
	au := utf16.Encode([]rune(a))
	bu := utf16.Encode([]rune(b))
	for i := 0; i < len(au) && i < len(bu); i++ {
		if au[i] != bu[i] {
			return au[i] < bu[i]
		}
	}
	return len(au) < len(bu)
}
