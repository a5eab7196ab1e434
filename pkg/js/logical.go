package js

// Thunk defers evaluation of an operand so that && and || keep their
// short-circuit behavior. Or and And call each thunk at most once.
type Thunk func() (Value, error)

// Or implements the || operator: it selects and returns an operand value,
// it does not produce a boolean. The right thunk is only evaluated when
// the left value is falsy.
func Or(left, right Thunk) (Value, error) {
	lv, err := left()
	if err != nil {
		return Undefined(), err
	}
	if ToBoolean(lv) {
		return lv, nil
	}
	return right()
}

// And implements the && operator, selecting the left value when it is
// falsy and the right value otherwise.
func And(left, right Thunk) (Value, error) {
	lv, err := left()
	if err != nil {
		return Undefined(), err
	}
	if !ToBoolean(lv) {
		return lv, nil
	}
	return right()
}

// Not implements the ! operator. Unlike && and ||, it always produces a
// boolean.
func Not(v Value) Value {
	return Boolean(!ToBoolean(v))
}
