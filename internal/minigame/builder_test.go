package minigame

import (
	"strings"
	"testing"
)

func assertWellFormed(t *testing.T, games []Game, b Bracket) {
	t.Helper()

	if len(games) != 3 {
		t.Fatalf("want 3 games, got %d", len(games))
	}
	wantOrder := []GameType{TypeQuicktime, TypeTimed, TypeChoice}
	for i, g := range games {
		if g.Type != wantOrder[i] {
			t.Errorf("game %d type = %s, want %s", i, g.Type, wantOrder[i])
		}
		if g.CorrectAnswer == "" {
			t.Errorf("game %d has empty correct answer", i)
		}
		if len(g.Choices) != b.ChoiceCount {
			t.Errorf("game %d has %d choices, want %d", i, len(g.Choices), b.ChoiceCount)
		}
		if !containsString(g.Choices, g.CorrectAnswer) {
			t.Errorf("game %d choices %v missing correct answer %q", i, g.Choices, g.CorrectAnswer)
		}
		seen := map[string]bool{}
		for _, c := range g.Choices {
			if seen[c] {
				t.Errorf("game %d has duplicate choice %q", i, c)
			}
			seen[c] = true
		}
		if g.TimeLimit < b.TimeMin || g.TimeLimit > b.TimeMax {
			t.Errorf("game %d time limit %d outside [%d,%d]", i, g.TimeLimit, b.TimeMin, b.TimeMax)
		}
		if g.RewardCoins < b.RewardMin || g.RewardCoins > b.RewardMax {
			t.Errorf("game %d reward %d outside [%d,%d]", i, g.RewardCoins, b.RewardMin, b.RewardMax)
		}
	}
}

func TestBuild_NumericAnswer(t *testing.T) {
	in := BuildInput{Problem: "8 + 5", Hero: "Blaze", AgeGroup: "8-10"}
	games := Build(in)

	assertWellFormed(t, games, BracketFor("8-10"))

	for i, g := range games {
		if g.CorrectAnswer != "13" {
			t.Errorf("game %d correct answer = %q, want 13", i, g.CorrectAnswer)
		}
		if !strings.Contains(g.Question, "8+5") && !strings.Contains(g.Question, "13") {
			t.Errorf("game %d question %q references neither 8+5 nor 13", i, g.Question)
		}
	}

	if !MatchesProblem("8 + 5", games) {
		t.Error("deterministic set should pass its own alignment guard")
	}
}

func TestBuild_StructuralFallback(t *testing.T) {
	in := BuildInput{Problem: "what is the capital of France", Hero: "Blaze", AgeGroup: "8-10"}
	games := Build(in)

	assertWellFormed(t, games, BracketFor("8-10"))

	// No numeric solve is possible, so questions ask about structure
	// rather than a value.
	if !strings.Contains(games[0].Question, "math move") {
		t.Errorf("game 0 question = %q, want operation question", games[0].Question)
	}
	if !strings.Contains(games[1].Question, "symbol") {
		t.Errorf("game 1 question = %q, want symbol question", games[1].Question)
	}
	if !strings.Contains(games[2].Question, "How many numbers") {
		t.Errorf("game 2 question = %q, want counting question", games[2].Question)
	}
}

func TestBuild_AnswerHintPreferred(t *testing.T) {
	in := BuildInput{Problem: "8 + 5", Hero: "Blaze", AgeGroup: "8-10", AnswerHint: "13"}
	games := Build(in)
	if games[0].CorrectAnswer != "13" {
		t.Errorf("correct answer = %q, want hint value", games[0].CorrectAnswer)
	}
}

func TestBuild_AnswerFromSteps(t *testing.T) {
	in := BuildInput{
		Problem:  "a tricky word problem about 4 apples and 3 oranges",
		Hero:     "Blaze",
		AgeGroup: "8-10",
		Steps:    []string{"Count the apples.", "Count the oranges.", "Answer: 7"},
	}
	games := Build(in)
	for i, g := range games {
		if g.CorrectAnswer != "7" {
			t.Errorf("game %d correct answer = %q, want 7 from steps", i, g.CorrectAnswer)
		}
	}
}

func TestBuild_AllBrackets(t *testing.T) {
	for _, ageGroup := range []string{"5-7", "8-10", "11-13"} {
		games := Build(BuildInput{Problem: "6 x 7", Hero: "Nova", AgeGroup: ageGroup})
		assertWellFormed(t, games, BracketFor(ageGroup))
	}
}

func TestBuild_UnknownBracketDefaults(t *testing.T) {
	games := Build(BuildInput{Problem: "8 + 5", Hero: "Nova", AgeGroup: "adult"})
	assertWellFormed(t, games, BracketFor(DefaultAgeGroup))
}

func TestBracketFor(t *testing.T) {
	if b := BracketFor("5-7"); b.ChoiceCount != 3 {
		t.Errorf("5-7 choice count = %d, want 3", b.ChoiceCount)
	}
	if b := BracketFor("8-10"); b.ChoiceCount != 4 {
		t.Errorf("8-10 choice count = %d, want 4", b.ChoiceCount)
	}
	if b := BracketFor("nonsense"); b.Key != DefaultAgeGroup {
		t.Errorf("unknown key resolved to %q, want %q", b.Key, DefaultAgeGroup)
	}
}

func TestFromCandidates_RejectsMisalignedSet(t *testing.T) {
	in := BuildInput{Problem: "7 + 5", Hero: "Blaze", AgeGroup: "8-10"}

	misaligned := []Game{
		{Type: TypeQuicktime, Question: "Quick! What is 9 × 3?", CorrectAnswer: "27"},
		{Type: TypeTimed, Question: "Solve 9 × 3 before time runs out!", CorrectAnswer: "27"},
		{Type: TypeChoice, Question: "Which answer makes 9 × 3 true?", CorrectAnswer: "27"},
	}

	games, accepted := FromCandidates(in, misaligned)
	if accepted {
		t.Fatal("misaligned candidates must be rejected")
	}

	// The substituted set is the deterministic one.
	want := Build(in)
	for i := range games {
		if games[i].Question != want[i].Question || games[i].CorrectAnswer != want[i].CorrectAnswer {
			t.Errorf("game %d = %q/%q, want deterministic %q/%q",
				i, games[i].Question, games[i].CorrectAnswer, want[i].Question, want[i].CorrectAnswer)
		}
	}
}

func TestFromCandidates_AcceptsAlignedSet(t *testing.T) {
	in := BuildInput{Problem: "7 + 5", Hero: "Blaze", AgeGroup: "8-10"}

	aligned := []Game{
		{Type: TypeQuicktime, Title: "Go!", Question: "Blaze shouts: what is 7+5?", CorrectAnswer: "12", Choices: []string{"12", "13", "11", "14"}},
		{Type: TypeTimed, Title: "Tick!", Question: "Solve 7+5 before the bomb timer ends!", CorrectAnswer: "12", Choices: []string{"12", "10", "11", "13"}},
		{Type: TypeChoice, Title: "Pick!", Question: "Which door shows the value of 7+5?", CorrectAnswer: "12", Choices: []string{"12", "15", "11", "13"}},
	}

	games, accepted := FromCandidates(in, aligned)
	if !accepted {
		t.Fatal("aligned candidates should be accepted")
	}
	assertWellFormed(t, games, BracketFor("8-10"))
	if games[0].Question != aligned[0].Question {
		t.Errorf("accepted set should keep candidate questions, got %q", games[0].Question)
	}
}

func TestFromCandidates_WrongCountFallsBack(t *testing.T) {
	in := BuildInput{Problem: "7 + 5", Hero: "Blaze", AgeGroup: "8-10"}
	games, accepted := FromCandidates(in, []Game{{Type: TypeChoice, Question: "What is 7+5?", CorrectAnswer: "12"}})
	if accepted {
		t.Fatal("a two-short candidate set must be rejected")
	}
	assertWellFormed(t, games, BracketFor("8-10"))
}
