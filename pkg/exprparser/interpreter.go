package exprparser

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/nektos/coerce/pkg/js"
	"github.com/rhysd/actionlint"
)

// Config binds caller-supplied values into the expression namespace.
// Globals lets a host expose primitives and object handles under a name;
// lookup is case-insensitive as with the built-in variables.
type Config struct {
	Globals map[string]js.Value
}

type Interpreter interface {
	Evaluate(input string) (js.Value, error)
}

type interperterImpl struct {
	config Config
}

func NewInterpeter(config Config) Interpreter {
	return &interperterImpl{
		config: config,
	}
}

func (impl *interperterImpl) Evaluate(input string) (js.Value, error) {
	input = strings.TrimPrefix(input, "${{")
	parser := actionlint.NewExprParser()
	exprNode, err := parser.Parse(actionlint.NewExprLexer(input + "}}"))
	if err != nil {
		return js.Undefined(), fmt.Errorf("Failed to parse: %s", err.Message)
	}

	return impl.evaluateNode(exprNode)
}

func (impl *interperterImpl) evaluateNode(exprNode actionlint.ExprNode) (js.Value, error) {
	switch node := exprNode.(type) {
	case *actionlint.VariableNode:
		return impl.evaluateVariable(node)
	case *actionlint.BoolNode:
		return js.Boolean(node.Value), nil
	case *actionlint.NullNode:
		return js.Null(), nil
	case *actionlint.IntNode:
		return js.Number(float64(node.Value)), nil
	case *actionlint.FloatNode:
		return js.Number(node.Value), nil
	case *actionlint.StringNode:
		return js.String(node.Value), nil
	case *actionlint.NotOpNode:
		return impl.evaluateNot(node)
	case *actionlint.CompareOpNode:
		return impl.evaluateCompare(node)
	case *actionlint.LogicalOpNode:
		return impl.evaluateLogicalCompare(node)
	case *actionlint.FuncCallNode:
		return impl.evaluateFuncCall(node)
	case *actionlint.IndexAccessNode, *actionlint.ObjectDerefNode, *actionlint.ArrayDerefNode:
		return js.Undefined(), fmt.Errorf("Property access is not supported")
	default:
		return js.Undefined(), fmt.Errorf("Fatal error! Unknown node type: %s node: %+v", reflect.TypeOf(exprNode), exprNode)
	}
}

func (impl *interperterImpl) evaluateVariable(variableNode *actionlint.VariableNode) (js.Value, error) {
	name := strings.ToLower(variableNode.Name)

	if value, ok := impl.config.Globals[name]; ok {
		return value, nil
	}

	switch name {
	case "undefined":
		return js.Undefined(), nil
	case "infinity":
		return js.Number(math.Inf(1)), nil
	case "nan":
		return js.Number(math.NaN()), nil
	default:
		return js.Undefined(), fmt.Errorf("Unavailable variable: %s", variableNode.Name)
	}
}

func (impl *interperterImpl) evaluateNot(notNode *actionlint.NotOpNode) (js.Value, error) {
	operand, err := impl.evaluateNode(notNode.Operand)
	if err != nil {
		return js.Undefined(), err
	}

	return js.Not(operand), nil
}

func (impl *interperterImpl) evaluateCompare(compareNode *actionlint.CompareOpNode) (js.Value, error) {
	left, err := impl.evaluateNode(compareNode.Left)
	if err != nil {
		return js.Undefined(), err
	}

	right, err := impl.evaluateNode(compareNode.Right)
	if err != nil {
		return js.Undefined(), err
	}

	var result bool
	switch compareNode.Kind {
	case actionlint.CompareOpNodeKindEq:
		result, err = js.Equals(left, right)
	case actionlint.CompareOpNodeKindNotEq:
		result, err = js.Equals(left, right)
		result = !result
	case actionlint.CompareOpNodeKindLess:
		result, err = js.LessThan(left, right)
	case actionlint.CompareOpNodeKindLessEq:
		result, err = js.LessThanOrEqual(left, right)
	case actionlint.CompareOpNodeKindGreater:
		result, err = js.GreaterThan(left, right)
	case actionlint.CompareOpNodeKindGreaterEq:
		result, err = js.GreaterThanOrEqual(left, right)
	default:
		return js.Undefined(), fmt.Errorf("Unknown compare operator: %+v", compareNode.Kind)
	}
	if err != nil {
		return js.Undefined(), err
	}

	return js.Boolean(result), nil
}

// evaluateLogicalCompare defers both operands into thunks so that && and ||
// keep short-circuit order and select an operand value, not a boolean.
func (impl *interperterImpl) evaluateLogicalCompare(compareNode *actionlint.LogicalOpNode) (js.Value, error) {
	left := func() (js.Value, error) {
		return impl.evaluateNode(compareNode.Left)
	}
	right := func() (js.Value, error) {
		return impl.evaluateNode(compareNode.Right)
	}

	switch compareNode.Kind {
	case actionlint.LogicalOpNodeKindAnd:
		return js.And(left, right)
	case actionlint.LogicalOpNodeKindOr:
		return js.Or(left, right)
	default:
		return js.Undefined(), fmt.Errorf("Unknown logical operator: %+v", compareNode.Kind)
	}
}
