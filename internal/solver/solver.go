// Package solver implements the deterministic arithmetic fast path.
//
// TrySolve recognizes free-text problems that are really just arithmetic
// expressions ("What is 8 + 5?", "7 x 6", "12 ÷ 4"), evaluates them with a
// restricted grammar and bounded operators, and produces a formatted answer
// with a short step narrative. Anything it cannot prove safe it declines,
// and the caller falls back to the AI solver.
package solver

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxProblemLen caps raw problem input. Longer inputs are declined.
const MaxProblemLen = 500

// maxExprLen caps the normalized expression length.
const maxExprLen = 48

// Solution is the result of a successful deterministic solve.
type Solution struct {
	// Value is the evaluated numeric result.
	Value float64

	// Answer is the display form of Value: integer-style when within 1e-9
	// of an integer, otherwise a 6-decimal string with trailing zeros
	// trimmed.
	Answer string

	// DisplayExpr is the normalized expression that was evaluated,
	// e.g. "8+5" for the input "What is 8 + 5?".
	DisplayExpr string

	// Steps is the 3-line solution narrative ending with "Answer: N".
	Steps []string

	// SolutionText is the one-line summary, e.g. "8+5 = 13".
	SolutionText string
}

var (
	leadinRe    = regexp.MustCompile(`(?i)^\s*(?:what\s+is|what'?s|solve|calculate|find)\b[:\s]*`)
	thousandsRe = regexp.MustCompile(`(\d),(\d{3})`)
	digitXRe    = regexp.MustCompile(`(?i)(\d)\s*x\s*(\d)`)
	exprCharsRe = regexp.MustCompile(`^[0-9+\-*/().^%]+$`)

	wordOps = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`(?i)\bdivided\s+by\b`), "/"},
		{regexp.MustCompile(`(?i)\bmultiplied\s+by\b`), "*"},
		{regexp.MustCompile(`(?i)\btimes\b`), "*"},
		{regexp.MustCompile(`(?i)\bover\b`), "/"},
		{regexp.MustCompile(`(?i)\bplus\b`), "+"},
		{regexp.MustCompile(`(?i)\bminus\b`), "-"},
	}

	symbolReplacer = strings.NewReplacer(
		"×", "*",
		"✕", "*",
		"÷", "/",
		"−", "-",
		"–", "-",
		"—", "-",
		"²", "^2",
		"³", "^3",
	)
)

// TrySolve attempts to solve the problem deterministically.
// Returns (nil, false) whenever the input is not a pure arithmetic
// expression or evaluation would violate a safety bound. It never panics
// and never returns an error.
func TrySolve(problem string) (*Solution, bool) {
	expr, ok := Normalize(problem)
	if !ok {
		return nil, false
	}

	value, err := evaluate(expr)
	if err != nil {
		return nil, false
	}

	answer := FormatAnswer(value)
	return &Solution{
		Value:       value,
		Answer:      answer,
		DisplayExpr: expr,
		Steps: []string{
			fmt.Sprintf("Rewrite the challenge as %s.", expr),
			fmt.Sprintf("Compute it: %s = %s.", expr, answer),
			fmt.Sprintf("Answer: %s", answer),
		},
		SolutionText: fmt.Sprintf("%s = %s", expr, answer),
	}, true
}

// Normalize extracts the normalized arithmetic expression from free text.
// Returns ("", false) if the input is not a pure arithmetic expression.
func Normalize(problem string) (string, bool) {
	if problem == "" || len(problem) > MaxProblemLen {
		return "", false
	}

	s := leadinRe.ReplaceAllString(problem, "")
	s = symbolReplacer.Replace(s)

	// "1,234" style thousands separators. Loop because each pass rewrites
	// one group: "1,234,567" needs two.
	for thousandsRe.MatchString(s) {
		s = thousandsRe.ReplaceAllString(s, "$1$2")
	}

	for _, w := range wordOps {
		s = w.re.ReplaceAllString(s, w.repl)
	}
	s = digitXRe.ReplaceAllString(s, "$1*$2")

	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "?!. ")

	// "8+5 = ?" forms: keep the left side when the right side is empty or a
	// placeholder. A non-trivial right side means this is an equation, not
	// an expression to evaluate.
	if i := strings.Index(s, "="); i >= 0 {
		rhs := strings.TrimSpace(s[i+1:])
		if rhs != "" && !isPlaceholder(rhs) {
			return "", false
		}
		s = s[:i]
	}

	s = strings.Join(strings.Fields(s), "")

	if s == "" || len(s) > maxExprLen {
		return "", false
	}
	if !exprCharsRe.MatchString(s) {
		return "", false
	}
	// ^ is the only power spelling we accept; a literal ** means the input
	// collided with the exponent substitution or was malformed.
	if strings.Contains(s, "**") {
		return "", false
	}
	return s, true
}

// isPlaceholder reports whether the right side of an equals sign is a
// "fill in the blank" marker rather than a value.
func isPlaceholder(rhs string) bool {
	trimmed := strings.TrimSpace(rhs)
	switch strings.ToLower(trimmed) {
	case "?", "??", "x", "y", "n", "_", "__", "...":
		return true
	}
	return false
}
