package solver

import (
	"strings"
	"testing"
)

func TestTrySolve_BasicArithmetic(t *testing.T) {
	tests := []struct {
		problem string
		answer  string
	}{
		{"What is 8 + 5?", "13"},
		{"what's 12 - 7", "5"},
		{"7 x 6", "42"},
		{"6 × 7", "42"},
		{"12 ÷ 4", "3"},
		{"calculate 3 * (2 + 4)", "18"},
		{"8 plus 5", "13"},
		{"9 minus 4", "5"},
		{"10 divided by 2", "5"},
		{"4 multiplied by 3", "12"},
		{"2^3", "8"},
		{"3²", "9"},
		{"2³", "8"},
		{"7 // 2", "3"},
		{"7 % 4", "3"},
		{"-5 + 3", "-2"},
		{"1,234 + 1", "1235"},
		{"8+5=?", "13"},
		{"8 + 5 =", "13"},
	}

	for _, tc := range tests {
		sol, ok := TrySolve(tc.problem)
		if !ok {
			t.Errorf("TrySolve(%q) declined, want %q", tc.problem, tc.answer)
			continue
		}
		if sol.Answer != tc.answer {
			t.Errorf("TrySolve(%q) = %q, want %q", tc.problem, sol.Answer, tc.answer)
		}
	}
}

func TestTrySolve_DecimalFormatting(t *testing.T) {
	sol, ok := TrySolve("1 / 3")
	if !ok {
		t.Fatal("1 / 3 should solve")
	}
	if sol.Answer != "0.333333" {
		t.Errorf("1/3 = %q, want 0.333333", sol.Answer)
	}

	sol, ok = TrySolve("3.5 + 1.2")
	if !ok {
		t.Fatal("3.5 + 1.2 should solve")
	}
	if sol.Answer != "4.7" {
		t.Errorf("3.5 + 1.2 = %q, want 4.7 (trailing zeros trimmed)", sol.Answer)
	}
}

func TestTrySolve_Rejections(t *testing.T) {
	rejected := []string{
		"",
		"10 / 0",
		"7 % 0",
		"8 // 0",
		"2^10000",
		"2000000^2",
		"999999999 * 999999999",
		"2**3",
		"what is the capital of France",
		"x + 5 = 12",
		"8 + 5 = 13",
		"(2 + 3",
		"1 + + 2 +",
		"import os",
		strings.Repeat("1+", 40) + "1",
	}

	for _, problem := range rejected {
		if sol, ok := TrySolve(problem); ok {
			t.Errorf("TrySolve(%q) = %q, want decline", problem, sol.Answer)
		}
	}
}

func TestTrySolve_NeverExceedsMagnitudeBound(t *testing.T) {
	inputs := []string{
		"1000000000 + 0",
		"999999999 + 1",
		"1000000 * 1000",
		"1000000 * 1001",
		"1000000^2",
		"100^4",
	}
	for _, problem := range inputs {
		sol, ok := TrySolve(problem)
		if !ok {
			continue
		}
		if sol.Value > 1_000_000_000 || sol.Value < -1_000_000_000 {
			t.Errorf("TrySolve(%q) returned out-of-bound value %v", problem, sol.Value)
		}
	}
}

func TestTrySolve_Deterministic(t *testing.T) {
	first, ok := TrySolve("What is 8 + 5?")
	if !ok {
		t.Fatal("expected solve")
	}
	second, ok := TrySolve("What is 8 + 5?")
	if !ok {
		t.Fatal("expected solve")
	}
	if first.Answer != second.Answer || first.DisplayExpr != second.DisplayExpr {
		t.Errorf("re-running TrySolve changed the result: %+v vs %+v", first, second)
	}
}

func TestTrySolve_StepsAndDisplay(t *testing.T) {
	sol, ok := TrySolve("What is 8 + 5?")
	if !ok {
		t.Fatal("expected solve")
	}
	if sol.DisplayExpr != "8+5" {
		t.Errorf("DisplayExpr = %q, want 8+5", sol.DisplayExpr)
	}
	if len(sol.Steps) != 3 {
		t.Fatalf("want 3 steps, got %d", len(sol.Steps))
	}
	if sol.Steps[2] != "Answer: 13" {
		t.Errorf("last step = %q, want %q", sol.Steps[2], "Answer: 13")
	}
	if sol.SolutionText != "8+5 = 13" {
		t.Errorf("SolutionText = %q", sol.SolutionText)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"What is 8 + 5?", "8+5", true},
		{"1,234,567 + 1", "1234567+1", true},
		{"6 × 7", "6*7", true},
		{"3² + 1", "3^2+1", true},
		{"8+5 = ?", "8+5", true},
		{"hello world", "", false},
		{"8 + 5 = 14", "", false},
	}
	for _, tc := range tests {
		got, ok := Normalize(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
