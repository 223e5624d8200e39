// Package classify assigns every problem text exactly one arithmetic kind.
//
// Classification is a total function over ordered pattern rules: the first
// rule that matches wins, so "x + 5 = 12" is an equation even though it
// contains a plus sign.
package classify

import "regexp"

// Kind is the classified arithmetic category of a problem.
type Kind string

const (
	KindAddition       Kind = "addition"
	KindSubtraction    Kind = "subtraction"
	KindMultiplication Kind = "multiplication"
	KindDivision       Kind = "division"
	KindFractions      Kind = "fractions"
	KindDecimals       Kind = "decimals"
	KindEquations      Kind = "equations"
	KindExponents      Kind = "exponents"
	KindMixed          Kind = "mixed"
)

// Label returns a child-friendly operation name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindAddition:
		return "addition"
	case KindSubtraction:
		return "subtraction"
	case KindMultiplication:
		return "multiplication"
	case KindDivision:
		return "division"
	case KindFractions:
		return "fractions"
	case KindDecimals:
		return "decimals"
	case KindEquations:
		return "equations"
	case KindExponents:
		return "exponents"
	default:
		return "mixed operations"
	}
}

// Symbol returns the core operator symbol for the kind, or "?" when the
// kind has no single symbol.
func (k Kind) Symbol() string {
	switch k {
	case KindAddition:
		return "+"
	case KindSubtraction:
		return "-"
	case KindMultiplication:
		return "×"
	case KindDivision, KindFractions:
		return "÷"
	case KindEquations:
		return "="
	case KindExponents:
		return "^"
	case KindDecimals:
		return "."
	default:
		return "?"
	}
}

var (
	equationRe = regexp.MustCompile(`(?i)=|\bsolve\s+for\b|\bequation\b`)
	exponentRe = regexp.MustCompile(`(?i)\^|\*\*|²|³|\bsquared\b|\bcubed\b|\bpower\b|\bexponent\b`)

	// Fraction literals are written tight (3/4); spaced division (12 / 3)
	// falls through to the division rule.
	fracPairRe    = regexp.MustCompile(`\d+/\d+\s*[+\-±]\s*\d+/\d+`)
	fracOfRe      = regexp.MustCompile(`(?i)\d+/\d+\s+of\b`)
	fracKeywordRe = regexp.MustCompile(`(?i)\bfraction\b|\bnumerator\b|\bdenominator\b|\bhalf\b|\bthird\b|\bquarter\b`)

	decimalRe = regexp.MustCompile(`(?i)\d+\.\d+|\bdecimal\b`)

	divisionRe = regexp.MustCompile(`(?i)[/÷]|\bdivide\b|\bdivided\b|\bquotient\b|\bshare\b|\bsplit\b`)
	multiplyRe = regexp.MustCompile(`(?i)[*×✕]|\btimes\b|\bmultiply\b|\bmultiplied\b|\bproduct\b|\d\s*x\s*\d`)
	subtractRe = regexp.MustCompile(`(?i)[-−–—]|\bminus\b|\bsubtract\b|\bdifference\b|\btake\s+away\b|\bfewer\b|\bless\b`)
	additionRe = regexp.MustCompile(`(?i)\+|\bplus\b|\badd\b|\bsum\b|\btotal\b|\baltogether\b|\bcombined\b|\bmore\s+than\b`)
)

// Classify returns the kind of the problem. Every input yields exactly one
// kind; unmatched inputs are KindMixed.
func Classify(problem string) Kind {
	switch {
	case equationRe.MatchString(problem):
		return KindEquations
	case exponentRe.MatchString(problem):
		return KindExponents
	case fracPairRe.MatchString(problem),
		fracOfRe.MatchString(problem),
		fracKeywordRe.MatchString(problem):
		return KindFractions
	case decimalRe.MatchString(problem):
		return KindDecimals
	case divisionRe.MatchString(problem):
		return KindDivision
	case multiplyRe.MatchString(problem):
		return KindMultiplication
	case subtractRe.MatchString(problem):
		return KindSubtraction
	case additionRe.MatchString(problem):
		return KindAddition
	default:
		return KindMixed
	}
}
