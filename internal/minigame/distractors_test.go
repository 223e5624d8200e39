package minigame

import (
	"reflect"
	"testing"
)

func TestNumericDistractors_Integers(t *testing.T) {
	got := NumericDistractors("13", 3)
	want := []string{"14", "12", "15"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NumericDistractors(13, 3) = %v, want %v", got, want)
	}
}

func TestNumericDistractors_Negative(t *testing.T) {
	got := NumericDistractors("-2", 4)
	want := []string{"-1", "-3", "0", "-4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NumericDistractors(-2, 4) = %v, want %v", got, want)
	}
}

func TestNumericDistractors_Decimals(t *testing.T) {
	got := NumericDistractors("4.7", 3)
	want := []string{"5.7", "3.7", "6.7"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NumericDistractors(4.7, 3) = %v, want %v", got, want)
	}
}

func TestNumericDistractors_DecimalHalfOffset(t *testing.T) {
	got := NumericDistractors("0.5", 5)
	// +0.5 lands on 1, distinct from the integer offsets applied to 0.5.
	want := []string{"1.5", "-0.5", "2.5", "-1.5", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NumericDistractors(0.5, 5) = %v, want %v", got, want)
	}
}

func TestNumericDistractors_NeverEchoesCorrect(t *testing.T) {
	for _, correct := range []string{"0", "13", "-5", "4.7", "1000000"} {
		for _, d := range NumericDistractors(correct, 5) {
			if d == correct {
				t.Errorf("distractors for %q include the correct answer", correct)
			}
		}
	}
}

func TestNumericDistractors_NonNumeric(t *testing.T) {
	if got := NumericDistractors("addition", 3); got != nil {
		t.Errorf("NumericDistractors(addition, 3) = %v, want nil", got)
	}
	if got := NumericDistractors("13", 0); got != nil {
		t.Errorf("NumericDistractors(13, 0) = %v, want nil", got)
	}
}

func TestIsNumeric(t *testing.T) {
	for _, s := range []string{"13", "-2", "4.7", " 42 "} {
		if !isNumeric(s) {
			t.Errorf("isNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "addition", "1/2", "4.", "1e9"} {
		if isNumeric(s) {
			t.Errorf("isNumeric(%q) = true, want false", s)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	got := numberLiterals("8 dragons plus 5.5 knights minus -2")
	want := []string{"8", "5.5", "-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("numberLiterals = %v, want %v", got, want)
	}
}
