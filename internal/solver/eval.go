package solver

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Safety bounds for evaluation. Anything outside these limits fails the
// whole solve rather than producing a degenerate huge answer.
const (
	maxMagnitude = 1_000_000_000
	maxExponent  = 8
	maxPowerBase = 1_000_000
	minDivisor   = 1e-12
	intTolerance = 1e-9
	answerDigits = 6
)

var errUnsafe = errors.New("expression exceeds safety bounds")

// FormatAnswer renders a numeric value the way answers are displayed:
// integer-style when within 1e-9 of an integer, else a 6-decimal string
// with trailing zeros trimmed.
func FormatAnswer(v float64) string {
	rounded := math.Round(v)
	if math.Abs(v-rounded) < intTolerance {
		return strconv.FormatInt(int64(rounded), 10)
	}
	s := strconv.FormatFloat(v, 'f', answerDigits, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// evaluate parses and evaluates a normalized expression.
// The grammar is deliberately tiny: literals, unary +/-, binary
// + - * / // % ^, parentheses. No names, no calls, no assignment.
func evaluate(expr string) (float64, error) {
	p := &parser{input: expr}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("unexpected character at offset %d", p.pos)
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// checkBound rejects non-finite values and magnitudes beyond the cap.
// Applied to every intermediate result, not just the final one.
func checkBound(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errUnsafe
	}
	if math.Abs(v) > maxMagnitude {
		return 0, errUnsafe
	}
	return v, nil
}

// parseExpr handles + and - at the lowest precedence.
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left, err = checkBound(left + right)
		} else {
			left, err = checkBound(left - right)
		}
		if err != nil {
			return 0, err
		}
	}
}

// parseTerm handles *, /, // and %.
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' && op != '%' {
			return left, nil
		}
		p.pos++

		floorDiv := false
		if op == '/' && p.peek() == '/' {
			floorDiv = true
			p.pos++
		}

		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}

		switch {
		case op == '*':
			left, err = checkBound(left * right)
		case op == '%':
			if math.Abs(right) < minDivisor {
				return 0, errUnsafe
			}
			left, err = checkBound(math.Mod(left, right))
		case floorDiv:
			if math.Abs(right) < minDivisor {
				return 0, errUnsafe
			}
			left, err = checkBound(math.Floor(left / right))
		default:
			if math.Abs(right) < minDivisor {
				return 0, errUnsafe
			}
			left, err = checkBound(left / right)
		}
		if err != nil {
			return 0, err
		}
	}
}

// parseUnary handles leading + and - signs.
func (p *parser) parseUnary() (float64, error) {
	switch p.peek() {
	case '+':
		p.pos++
		return p.parseUnary()
	case '-':
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	return p.parsePower()
}

// parsePower handles ^, right-associative so 2^3^2 is 2^(3^2).
func (p *parser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++

	// The exponent may itself be signed or another power.
	exp, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	if math.Abs(exp) > maxExponent || math.Abs(base) > maxPowerBase {
		return 0, errUnsafe
	}
	return checkBound(math.Pow(base, exp))
}

// parsePrimary handles literals and parenthesized sub-expressions.
func (p *parser) parsePrimary() (float64, error) {
	if p.peek() == '(' {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis at offset %d", p.pos)
		}
		p.pos++
		return v, nil
	}
	return p.parseNumber()
}

// parseNumber reads an int or float literal.
func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	seenDot := false
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			p.pos++
			continue
		}
		break
	}
	if p.pos == start || (p.pos == start+1 && seenDot) {
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", p.input[start:p.pos], err)
	}
	return checkBound(v)
}
