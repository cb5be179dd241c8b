// Package exprconv converts arithmetic expressions between the infix, postfix
// and prefix notations and evaluates the postfix and prefix forms. Operands
// are single alphanumeric characters (single digits for evaluation), the
// supported operators are + - * / ^ and parentheses group sub-expressions.
package exprconv

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"unicode"

	"github.com/inoxlang/seqds/internal/utils"
	"github.com/inoxlang/seqds/stackcoll"
	"golang.org/x/exp/maps"
)

var (
	ErrUnbalancedExpression = errors.New("unbalanced expression")
	ErrMalformedExpression  = errors.New("malformed expression")

	operatorPrecedence = map[rune]int{
		'+': 1,
		'-': 1,
		'*': 2,
		'/': 2,
		'^': 3,
	}
)

// Operators returns the supported operator tokens in lexical order.
func Operators() []string {
	operators := utils.MapSlice(maps.Keys(operatorPrecedence), func(r rune) string {
		return string(r)
	})
	slices.Sort(operators)
	return operators
}

// precedence returns the precedence of an operator, it returns -1 for any
// other rune: '(' never wins a precedence comparison, so it blocks the pop
// loop of the conversion.
func precedence(r rune) int {
	if prec, ok := operatorPrecedence[r]; ok {
		return prec
	}
	return -1
}

func isOperator(r rune) bool {
	_, ok := operatorPrecedence[r]
	return ok
}

// InfixToPostfix converts an infix expression to the equivalent postfix
// (reverse Polish) expression using the shunting-yard algorithm: operands go
// straight to the output, operators wait on a stack until an operator of
// lower precedence or a parenthesis boundary flushes them.
//
// It returns ErrUnbalancedExpression if a parenthesis has no counterpart and
// ErrMalformedExpression if the expression contains an unexpected character.
func InfixToPostfix(expr string) (string, error) {
	operators := stackcoll.NewArrayStack[rune]()
	output := stackcoll.NewArrayStack[rune]()

	for _, r := range expr {
		switch {
		case r == ' ' || r == '\t':
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			output.Push(r)
		case r == '(':
			operators.Push(r)
		case r == ')':
			for {
				top, err := operators.Pop()
				if err != nil {
					return "", fmt.Errorf("%w: no opening parenthesis matches ')'", ErrUnbalancedExpression)
				}
				if top == '(' {
					break
				}
				output.Push(top)
			}
		case isOperator(r):
			//flush the operators that should be applied before r.
			for !operators.IsEmpty() && precedence(r) <= precedence(utils.Must(operators.Top())) {
				output.Push(utils.Must(operators.Pop()))
			}
			operators.Push(r)
		default:
			return "", fmt.Errorf("%w: unexpected character %q", ErrMalformedExpression, r)
		}
	}

	for !operators.IsEmpty() {
		top := utils.Must(operators.Pop())
		if top == '(' {
			return "", fmt.Errorf("%w: no closing parenthesis matches '('", ErrUnbalancedExpression)
		}
		output.Push(top)
	}

	return string(output.Elements()), nil
}

// InfixToPrefix converts an infix expression to the equivalent prefix (Polish)
// expression: the expression is reversed with swapped parentheses, converted
// to postfix and the result is reversed again.
func InfixToPrefix(expr string) (string, error) {
	postfix, err := InfixToPostfix(reverseExpression(expr))
	if err != nil {
		return "", err
	}

	prefix := []rune(postfix)
	utils.Reverse(prefix)
	return string(prefix), nil
}

// reverseExpression reverses the expression and swaps the parentheses so that
// they still open before they close.
func reverseExpression(expr string) string {
	runes := []rune(expr)
	utils.Reverse(runes)

	for i, r := range runes {
		switch r {
		case '(':
			runes[i] = ')'
		case ')':
			runes[i] = '('
		}
	}
	return string(runes)
}

// EvaluatePostfix evaluates a postfix expression whose operands are single
// digits, division is floating-point. It returns ErrMalformedExpression if an
// operator lacks operands, if the expression contains an unexpected character
// or if the expression does not reduce to a single value.
func EvaluatePostfix(expr string) (float64, error) {
	operands := stackcoll.NewArrayStack[float64]()

	for _, r := range expr {
		if err := evaluateChar(r, operands, popPostfixOperands); err != nil {
			return 0, err
		}
	}

	return finalValue(operands)
}

// EvaluatePrefix evaluates a prefix expression whose operands are single
// digits: the expression is scanned from right to left, so operands are
// popped in operator order. The errors are the same as for EvaluatePostfix.
func EvaluatePrefix(expr string) (float64, error) {
	operands := stackcoll.NewArrayStack[float64]()
	runes := []rune(expr)

	for i := len(runes) - 1; i >= 0; i-- {
		if err := evaluateChar(runes[i], operands, popPrefixOperands); err != nil {
			return 0, err
		}
	}

	return finalValue(operands)
}

// evaluateChar processes a single character of an expression being evaluated:
// digits are pushed on the operand stack and operators replace their two
// operands by the operation's result.
func evaluateChar(r rune, operands *stackcoll.ArrayStack[float64], popOperands func(s *stackcoll.ArrayStack[float64]) (left, right float64, err error)) error {
	switch {
	case r == ' ' || r == '\t':
		return nil
	case unicode.IsDigit(r):
		operands.Push(float64(r - '0'))
		return nil
	case isOperator(r):
		left, right, err := popOperands(operands)
		if err != nil {
			return fmt.Errorf("%w: operator %q lacks operands", ErrMalformedExpression, r)
		}
		operands.Push(apply(r, left, right))
		return nil
	default:
		return fmt.Errorf("%w: unexpected character %q", ErrMalformedExpression, r)
	}
}

// popPostfixOperands pops the right operand first: in postfix order the left
// operand was pushed before the right one.
func popPostfixOperands(s *stackcoll.ArrayStack[float64]) (left, right float64, err error) {
	right, err = s.Pop()
	if err != nil {
		return 0, 0, err
	}
	left, err = s.Pop()
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

// popPrefixOperands pops the left operand first: the right-to-left scan
// pushed the right operand before the left one.
func popPrefixOperands(s *stackcoll.ArrayStack[float64]) (left, right float64, err error) {
	left, err = s.Pop()
	if err != nil {
		return 0, 0, err
	}
	right, err = s.Pop()
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

func apply(operator rune, left, right float64) float64 {
	switch operator {
	case '+':
		return left + right
	case '-':
		return left - right
	case '*':
		return left * right
	case '/':
		return left / right
	case '^':
		return math.Pow(left, right)
	default:
		panic(fmt.Errorf("unknown operator %q", operator))
	}
}

// finalValue returns the single value a fully evaluated expression reduces to.
func finalValue(operands *stackcoll.ArrayStack[float64]) (float64, error) {
	value, err := operands.Pop()
	if err != nil {
		return 0, fmt.Errorf("%w: the expression has no value", ErrMalformedExpression)
	}
	if !operands.IsEmpty() {
		return 0, fmt.Errorf("%w: %d operands are left over", ErrMalformedExpression, operands.Len())
	}
	return value, nil
}
