package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		problem string
		want    Kind
	}{
		{"x + 5 = 12", KindEquations},
		{"solve for x: 2x + 1 = 7", KindEquations},
		{"2^5", KindExponents},
		{"what is 3 squared", KindExponents},
		{"3/4 of 20", KindFractions},
		{"1/2 + 1/4", KindFractions},
		{"what fraction is shaded", KindFractions},
		{"3.5 + 1.2", KindDecimals},
		{"12 / 3", KindDivision},
		{"20 divided by 4", KindDivision},
		{"7 x 6", KindMultiplication},
		{"6 times 7", KindMultiplication},
		{"9 - 4", KindSubtraction},
		{"what is the difference between 9 and 4", KindSubtraction},
		{"8 + 5", KindAddition},
		{"find the sum of 8 and 5", KindAddition},
		{"tell me about math", KindMixed},
		{"", KindMixed},
	}

	for _, tc := range tests {
		if got := Classify(tc.problem); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.problem, got, tc.want)
		}
	}
}

// Rules run in a fixed order, so every input gets exactly one kind even
// when several patterns match.
func TestClassify_Priority(t *testing.T) {
	if got := Classify("x + 5 = 12"); got != KindEquations {
		t.Errorf("equation rule should win over addition, got %s", got)
	}
	if got := Classify("2^3 + 1"); got != KindExponents {
		t.Errorf("exponent rule should win over addition, got %s", got)
	}
	if got := Classify("1/2 + 1/4"); got != KindFractions {
		t.Errorf("fraction rule should win over division, got %s", got)
	}
	if got := Classify("3.5 / 7"); got != KindDecimals {
		t.Errorf("decimal rule should win over division, got %s", got)
	}
}

func TestClassify_Total(t *testing.T) {
	known := map[Kind]bool{
		KindAddition: true, KindSubtraction: true, KindMultiplication: true,
		KindDivision: true, KindFractions: true, KindDecimals: true,
		KindEquations: true, KindExponents: true, KindMixed: true,
	}
	inputs := []string{"", "?", "8 + 5", "½", "🚀", "x = y", "a b c"}
	for _, in := range inputs {
		if !known[Classify(in)] {
			t.Errorf("Classify(%q) returned unknown kind %q", in, Classify(in))
		}
	}
}
