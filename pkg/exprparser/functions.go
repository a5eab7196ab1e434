package exprparser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nektos/coerce/pkg/js"
	"github.com/rhysd/actionlint"
)

func (impl *interperterImpl) evaluateFuncCall(funcCallNode *actionlint.FuncCallNode) (js.Value, error) {
	args := make([]js.Value, 0)

	for _, arg := range funcCallNode.Args {
		value, err := impl.evaluateNode(arg)
		if err != nil {
			return js.Undefined(), err
		}

		args = append(args, value)
	}

	callee := strings.ToLower(funcCallNode.Callee)

	if len(args) != 1 {
		return js.Undefined(), fmt.Errorf("Invalid number of arguments to %s: expected 1, got %d", callee, len(args))
	}

	switch callee {
	case "tonumber":
		n, err := js.ToNumber(args[0])
		if err != nil {
			return js.Undefined(), err
		}
		return js.Number(n), nil
	case "tostring":
		s, err := js.ToString(args[0])
		if err != nil {
			return js.Undefined(), err
		}
		return js.String(s), nil
	case "toboolean":
		return js.Boolean(js.ToBoolean(args[0])), nil
	case "typeof":
		return js.String(js.TypeOf(args[0])), nil
	case "fromjson":
		return impl.fromJSON(args[0])
	default:
		return js.Undefined(), fmt.Errorf("Unknown function: %s", funcCallNode.Callee)
	}
}

func (impl *interperterImpl) fromJSON(value js.Value) (js.Value, error) {
	if value.Kind() != js.KindString {
		return js.Undefined(), fmt.Errorf("Cannot parse non-string type %s as JSON", js.TypeOf(value))
	}

	var data interface{}

	err := json.Unmarshal([]byte(value.Str()), &data)
	if err != nil {
		return js.Undefined(), fmt.Errorf("Invalid JSON: %v", err)
	}

	return impl.valueFromJSON(data), nil
}

func (impl *interperterImpl) valueFromJSON(data interface{}) js.Value {
	switch d := data.(type) {
	case nil:
		return js.Null()
	case bool:
		return js.Boolean(d)
	case float64:
		return js.Number(d)
	case string:
		return js.String(d)
	case []interface{}:
		elems := make([]js.Value, 0, len(d))
		for _, item := range d {
			elems = append(elems, impl.valueFromJSON(item))
		}
		return newArrayHandle(elems)
	case map[string]interface{}:
		return newPlainObjectHandle()
	}
	return js.Undefined()
}

// newArrayHandle models a JSON array as an object handle whose toString
// joins the elements with commas; null and undefined elements render empty,
// so fromjson('[1,null,2]') stringifies to "1,,2".
func newArrayHandle(elems []js.Value) js.Value {
	return js.ObjectValue(&js.Object{
		ToString: func() (js.Value, error) {
			parts := make([]string, 0, len(elems))
			for _, elem := range elems {
				if elem.Kind() == js.KindNull || elem.Kind() == js.KindUndefined {
					parts = append(parts, "")
					continue
				}
				s, err := js.ToString(elem)
				if err != nil {
					return js.Undefined(), err
				}
				parts = append(parts, s)
			}
			return js.String(strings.Join(parts, ",")), nil
		},
	})
}

func newPlainObjectHandle() js.Value {
	return js.ObjectValue(&js.Object{
		ToString: func() (js.Value, error) {
			return js.String("[object Object]"), nil
		},
	})
}
