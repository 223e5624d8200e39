package minigame

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numericRe = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	numbersRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// isNumeric reports whether s looks like a plain number.
func isNumeric(s string) bool {
	return numericRe.MatchString(strings.TrimSpace(s))
}

// numberLiterals extracts every numeric literal from text.
func numberLiterals(text string) []string {
	return numbersRe.FindAllString(text, -1)
}

var (
	intOffsets     = []int64{1, -1, 2, -2, 5, -5}
	decimalOffsets = []float64{1, -1, 2, -2, 0.5}
)

// NumericDistractors generates up to needed wrong-answer choices near the
// correct value. Integer-looking answers get offsets ±1 ±2 ±5 in order;
// decimal-looking answers get ±1 ±2 +0.5 rounded to 2 decimals. It never
// fails; callers must tolerate a short list.
func NumericDistractors(correct string, needed int) []string {
	correct = strings.TrimSpace(correct)
	if needed <= 0 || !isNumeric(correct) {
		return nil
	}

	var candidates []string
	if n, err := strconv.ParseInt(correct, 10, 64); err == nil {
		for _, off := range intOffsets {
			candidates = append(candidates, strconv.FormatInt(n+off, 10))
		}
	} else if f, err := strconv.ParseFloat(correct, 64); err == nil {
		for _, off := range decimalOffsets {
			v := f + off
			s := strconv.FormatFloat(v, 'f', 2, 64)
			s = strings.TrimRight(s, "0")
			s = strings.TrimRight(s, ".")
			candidates = append(candidates, s)
		}
	} else {
		return nil
	}

	seen := map[string]bool{correct: true}
	var out []string
	for _, c := range candidates {
		if len(out) == needed {
			break
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
