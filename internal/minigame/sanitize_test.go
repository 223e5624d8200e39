package minigame

import (
	"strings"
	"testing"
)

func TestSanitize_RepairsBrokenGame(t *testing.T) {
	b := BracketFor("8-10")
	g := Game{
		Type:          GameType("boss_battle"),
		Title:         strings.Repeat("T", 100),
		Prompt:        strings.Repeat("P", 400),
		Question:      strings.Repeat("Q", 400),
		CorrectAnswer: "  13  ",
		Choices:       []string{"13", "13", " 13", "", "12"},
		TimeLimit:     9999,
		RewardCoins:   -5,
		HeroAction:    strings.Repeat("H", 200),
		FailMessage:   strings.Repeat("F", 200),
	}

	sanitize(&g, b)

	if g.Type != TypeChoice {
		t.Errorf("type = %s, want fallback %s", g.Type, TypeChoice)
	}
	if g.CorrectAnswer != "13" {
		t.Errorf("correct answer = %q, want trimmed 13", g.CorrectAnswer)
	}
	if len(g.Choices) != b.ChoiceCount {
		t.Errorf("got %d choices, want %d", len(g.Choices), b.ChoiceCount)
	}
	if !containsString(g.Choices, "13") {
		t.Errorf("choices %v missing correct answer", g.Choices)
	}
	seen := map[string]bool{}
	for _, c := range g.Choices {
		if seen[c] {
			t.Errorf("duplicate choice %q", c)
		}
		seen[c] = true
	}
	if g.TimeLimit != b.TimeMax {
		t.Errorf("time limit = %d, want clamped %d", g.TimeLimit, b.TimeMax)
	}
	if g.RewardCoins != b.RewardMin {
		t.Errorf("reward = %d, want clamped %d", g.RewardCoins, b.RewardMin)
	}
	if len([]rune(g.Title)) > maxTitleLen {
		t.Errorf("title too long: %d runes", len([]rune(g.Title)))
	}
	if len([]rune(g.Prompt)) > maxPromptLen {
		t.Errorf("prompt too long: %d runes", len([]rune(g.Prompt)))
	}
	if len([]rune(g.Question)) > maxQuestion {
		t.Errorf("question too long: %d runes", len([]rune(g.Question)))
	}
	if len([]rune(g.HeroAction)) > maxHeroAction {
		t.Errorf("hero action too long: %d runes", len([]rune(g.HeroAction)))
	}
	if len([]rune(g.FailMessage)) > maxFailMsg {
		t.Errorf("fail message too long: %d runes", len([]rune(g.FailMessage)))
	}
}

func TestSanitize_EmptyCorrectAnswer(t *testing.T) {
	b := BracketFor("5-7")
	g := Game{Type: TypeQuicktime, CorrectAnswer: "   "}
	sanitize(&g, b)
	if g.CorrectAnswer != "0" {
		t.Errorf("correct answer = %q, want 0", g.CorrectAnswer)
	}
	if len(g.Choices) != b.ChoiceCount {
		t.Errorf("got %d choices, want %d", len(g.Choices), b.ChoiceCount)
	}
	if !containsString(g.Choices, "0") {
		t.Errorf("choices %v missing 0", g.Choices)
	}
}

func TestSanitize_NonNumericAnswerKeepsShortList(t *testing.T) {
	// No numeric padding exists for a word answer; a short unique list
	// is acceptable as long as the correct answer is present.
	b := BracketFor("8-10")
	g := Game{Type: TypeChoice, CorrectAnswer: "addition", Choices: []string{"addition", "subtraction"}}
	sanitize(&g, b)
	if !containsString(g.Choices, "addition") {
		t.Errorf("choices %v missing correct answer", g.Choices)
	}
	if len(g.Choices) > b.ChoiceCount {
		t.Errorf("got %d choices, want at most %d", len(g.Choices), b.ChoiceCount)
	}
}

func TestTruncate_RuneSafe(t *testing.T) {
	s := strings.Repeat("é", 10)
	got := truncate(s, 4)
	if got != "éééé" {
		t.Errorf("truncate = %q, want 4 whole runes", got)
	}
	if got2 := truncate("short", 40); got2 != "short" {
		t.Errorf("truncate should leave short strings alone, got %q", got2)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 8, 18); got != 8 {
		t.Errorf("clamp below = %d, want 8", got)
	}
	if got := clamp(30, 8, 18); got != 18 {
		t.Errorf("clamp above = %d, want 18", got)
	}
	if got := clamp(12, 8, 18); got != 12 {
		t.Errorf("clamp inside = %d, want 12", got)
	}
}
