package minigame

import (
	"regexp"
	"strings"

	"github.com/devika/mathquest/internal/classify"
	"github.com/devika/mathquest/internal/solver"
)

// DisplayProblem returns the form of the problem used inside mini-game
// questions: the normalized expression with * and / rendered as x and ÷
// for readability, or the whitespace-collapsed raw text when the problem
// is not a pure expression.
func DisplayProblem(problem string) string {
	if expr, ok := solver.Normalize(problem); ok {
		return strings.NewReplacer("*", " x ", "/", " ÷ ").Replace(expr)
	}
	return strings.Join(strings.Fields(problem), " ")
}

var bareXBetweenDigits = regexp.MustCompile(`(?i)\d\s*x\s*\d`)

// opCues maps each kind to the textual cues a question about that kind
// should carry. Empty for mixed: no single cue is required.
func opCues(kind classify.Kind) []string {
	switch kind {
	case classify.KindAddition:
		return []string{"+", "plus", "add", "sum", "total"}
	case classify.KindSubtraction:
		return []string{"-", "−", "minus", "subtract", "difference", "take away"}
	case classify.KindMultiplication:
		return []string{"×", "*", "times", "multiply"}
	case classify.KindDivision:
		return []string{"÷", "/", "divide", "divided", "quotient", "share"}
	case classify.KindFractions:
		return []string{"/", "÷", "fraction", "of"}
	case classify.KindDecimals:
		return []string{".", "decimal"}
	case classify.KindEquations:
		return []string{"=", "equation", "solve"}
	case classify.KindExponents:
		return []string{"^", "²", "³", "power", "squared", "cubed", "exponent"}
	default:
		return nil
	}
}

// MatchesProblem reports whether every game in the set is about the given
// problem. Used to vet externally generated candidate sets before
// accepting them; a failing set is discarded wholesale.
//
// Each question must reference the problem (contain its display form, or
// share a numeric literal with it) and must carry an operation cue
// matching the problem's kind. The check is heuristic and
// order-independent.
func MatchesProblem(problem string, games []Game) bool {
	display := DisplayProblem(problem)
	nums := numberLiterals(problem)
	cues := opCues(classify.Classify(problem))

	for _, g := range games {
		if !questionReferencesProblem(g.Question, display, nums) {
			return false
		}
		if !questionCarriesCue(g.Question, cues) {
			return false
		}
	}
	return true
}

func questionReferencesProblem(question, display string, nums []string) bool {
	if display != "" && strings.Contains(question, display) {
		return true
	}
	if len(nums) == 0 {
		return false
	}
	qNums := numberLiterals(question)
	for _, n := range nums {
		for _, qn := range qNums {
			if n == qn {
				return true
			}
		}
	}
	return false
}

func questionCarriesCue(question string, cues []string) bool {
	if len(cues) == 0 {
		return true
	}
	lower := strings.ToLower(question)
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	// A bare x between digits counts as a multiplication cue.
	for _, cue := range cues {
		if cue == "×" && bareXBetweenDigits.MatchString(question) {
			return true
		}
	}
	return false
}
