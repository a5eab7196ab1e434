package exprparser

import (
	"math"
	"testing"

	"github.com/nektos/coerce/pkg/js"
	"github.com/stretchr/testify/assert"
)

func TestLiterals(t *testing.T) {
	table := []struct {
		input    string
		expected js.Value
		name     string
	}{
		{"true", js.Boolean(true), "true"},
		{"false", js.Boolean(false), "false"},
		{"null", js.Null(), "null"},
		{"123", js.Number(123), "integer"},
		{"-9.7", js.Number(-9.7), "float"},
		{"0xff", js.Number(255), "hex"},
		{"-2.99e-2", js.Number(-2.99e-2), "exponential"},
		{"'foo'", js.String("foo"), "string"},
		{"'it''s foo'", js.String("it's foo"), "string-quote"},
		{"undefined", js.Undefined(), "undefined"},
		{"infinity", js.Number(math.Inf(1)), "infinity"},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			output, err := NewInterpeter(Config{}).Evaluate(tt.input)
			assert.Nil(t, err)

			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestNaNLiteral(t *testing.T) {
	output, err := NewInterpeter(Config{}).Evaluate("nan")
	assert.Nil(t, err)
	assert.Equal(t, js.KindNumber, output.Kind())
	assert.True(t, math.IsNaN(output.Num()))
}

func TestOperators(t *testing.T) {
	table := []struct {
		input    string
		expected js.Value
		name     string
		error    string
	}{
		{"!true", js.Boolean(false), "not", ""},
		{"!''", js.Boolean(true), "not-empty-string", ""},
		{"!0", js.Boolean(true), "not-zero", ""},
		{"1 < 2", js.Boolean(true), "less-than", ""},
		{"1 < '2'", js.Boolean(true), "less-than-coerced", ""},
		{"'b' <= 'a'", js.Boolean(false), "less-than-or-equal", ""},
		{"1 > 2", js.Boolean(false), "greater-than", ""},
		{"'b' >= 'a'", js.Boolean(true), "greater-than-or-equal", ""},
		{"'42' < '043'", js.Boolean(false), "string-relational-lexicographic", ""},
		{"'42' > '043'", js.Boolean(true), "string-relational-lexicographic-swap", ""},
		{"'a' == 'a'", js.Boolean(true), "equal", ""},
		{"'a' != 'a'", js.Boolean(false), "not-equal", ""},
		{"nan == nan", js.Boolean(false), "nan-never-equal", ""},
		{"nan <= 1", js.Boolean(true), "nan-less-than-or-equal", ""},
		{"nan >= 1", js.Boolean(true), "nan-greater-than-or-equal", ""},
		{"nan < 1", js.Boolean(false), "nan-less-than", ""},
		{"true && false", js.Boolean(false), "and", ""},
		{"true || false", js.Boolean(true), "or", ""},
		{"1 && 2", js.Number(2), "and-selects-value", ""},
		{"0 && 2", js.Number(0), "and-selects-falsy-left", ""},
		{"'' || 'fallback'", js.String("fallback"), "or-selects-right", ""},
		{"'left' || 'right'", js.String("left"), "or-selects-left", ""},
		{"(false || (false || true))", js.Boolean(true), "logical-grouping", ""},
		{"foo.bar", js.Undefined(), "property-dereference", "Property access is not supported"},
		{"foo['bar']", js.Undefined(), "property-index", "Property access is not supported"},
		{"foo.*.bar", js.Undefined(), "array-dereference", "Property access is not supported"},
		{"foo", js.Undefined(), "unknown-variable", "Unavailable variable: foo"},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			output, err := NewInterpeter(Config{}).Evaluate(tt.input)
			if tt.error != "" {
				assert.NotNil(t, err)
				assert.Equal(t, tt.error, err.Error())
			} else {
				assert.Nil(t, err)
			}

			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestOperatorsCoercion(t *testing.T) {
	table := []struct {
		input    string
		expected js.Value
		name     string
	}{
		{"null == undefined", js.Boolean(true), "null-undefined"},
		{"null == 0", js.Boolean(false), "null-zero"},
		{"undefined == 0", js.Boolean(false), "undefined-zero"},
		{"true == 1", js.Boolean(true), "boolean-coercion"},
		{"'' == 0", js.Boolean(true), "empty-string-coercion"},
		{"'3' == 3", js.Boolean(true), "string-number-coercion"},
		{"'0x10' == 16", js.Boolean(true), "hex-string-coercion"},
		{"'TEST' == 'test'", js.Boolean(false), "string-casing-matters"},
		{"true > false", js.Boolean(true), "bool-greater-than"},
		{"null < 1", js.Boolean(true), "null-relational"},
		{"undefined < 1", js.Boolean(false), "undefined-relational"},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			output, err := NewInterpeter(Config{}).Evaluate(tt.input)
			assert.Nil(t, err)

			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestGlobals(t *testing.T) {
	box := js.ObjectValue(&js.Object{
		ValueOf: func() (js.Value, error) {
			return js.Number(1), nil
		},
	})
	bare := js.ObjectValue(&js.Object{})

	config := Config{
		Globals: map[string]js.Value{
			"box":  box,
			"bare": bare,
		},
	}

	table := []struct {
		input    string
		expected js.Value
		name     string
		error    string
	}{
		{"box == 1", js.Boolean(true), "object-number", ""},
		{"box == true", js.Boolean(true), "object-boolean-via-number", ""},
		{"box < 2", js.Boolean(true), "object-relational", ""},
		{"box || 'other'", box, "object-truthy-selection", ""},
		{"bare == 1", js.Undefined(), "no-primitive-representation", "object cannot be converted to a primitive value"},
		{"bare == bare", js.Boolean(true), "object-identity", ""},
		{"BOX == 1", js.Boolean(true), "case-insensitive-lookup", ""},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			output, err := NewInterpeter(config).Evaluate(tt.input)
			if tt.error != "" {
				assert.NotNil(t, err)
				assert.Equal(t, tt.error, err.Error())
			} else {
				assert.Nil(t, err)
			}

			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestShortCircuitEvaluation(t *testing.T) {
	calls := 0
	config := Config{
		Globals: map[string]js.Value{
			"counter": js.ObjectValue(&js.Object{
				ValueOf: func() (js.Value, error) {
					calls++
					return js.Number(1), nil
				},
			}),
		},
	}

	// the right operand must never be evaluated
	output, err := NewInterpeter(config).Evaluate("1 || counter == 1")
	assert.Nil(t, err)
	assert.Equal(t, js.Number(1), output)
	assert.Equal(t, 0, calls)

	output, err = NewInterpeter(config).Evaluate("0 && counter == 1")
	assert.Nil(t, err)
	assert.Equal(t, js.Number(0), output)
	assert.Equal(t, 0, calls)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"1 +", "==", "'unterminated"} {
		_, err := NewInterpeter(Config{}).Evaluate(input)
		assert.NotNil(t, err, "input %q should not parse", input)
	}
}
