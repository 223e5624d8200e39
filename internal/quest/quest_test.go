package quest

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/devika/mathquest/internal/llm"
	"github.com/devika/mathquest/internal/mathsteps"
	"github.com/devika/mathquest/internal/minigame"
	"github.com/devika/mathquest/internal/session"
	"github.com/devika/mathquest/internal/story"
)

// newTestService wires a quest service with the given canned LLM
// responses and no event recording.
func newTestService(responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	sessions := session.NewService(session.NewMemoryStore(0))
	svc := NewService(
		mathsteps.NewService(mock, mathsteps.DefaultConfig()),
		story.NewService(mock, story.DefaultConfig()),
		minigame.NewGenerator(mock, minigame.DefaultConfig()),
		sessions,
		nil,
		nil,
	)
	return svc, mock
}

func TestRun_ExpressionQuest(t *testing.T) {
	// Expression solves locally, so the LLM only sees the mini-game and
	// story calls; let both fail to exercise the deterministic paths.
	svc, _ := newTestService(
		llm.MockResponse{Err: errors.New("minigames down")},
		llm.MockResponse{Err: errors.New("stories down")},
	)

	res, err := svc.Run(t.Context(), Request{
		SessionID: "sess-1",
		Hero:      "Wizard",
		Problem:   "8 + 5",
		AgeGroup:  "8-10",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.Answer != "13" {
		t.Errorf("answer = %q, want 13", res.Answer)
	}
	if res.ProblemType != "addition" {
		t.Errorf("problem type = %q, want addition", res.ProblemType)
	}
	if res.MathSolution != "8+5 = 13" {
		t.Errorf("math solution = %q, want 8+5 = 13", res.MathSolution)
	}
	if len(res.MiniGames) != 3 {
		t.Fatalf("got %d mini-games, want 3", len(res.MiniGames))
	}
	if res.StorySource != "fallback" {
		t.Errorf("story source = %q, want fallback", res.StorySource)
	}
	if res.Story == "" {
		t.Error("quest must always carry a story")
	}
	if res.Coins != session.QuestReward {
		t.Errorf("coins = %d, want %d", res.Coins, session.QuestReward)
	}
}

func TestRun_MiniGamesMatchProblem(t *testing.T) {
	svc, _ := newTestService(
		llm.MockResponse{Err: errors.New("down")},
		llm.MockResponse{Err: errors.New("down")},
	)

	res, err := svc.Run(t.Context(), Request{
		SessionID: "sess-1",
		Hero:      "Ninja",
		Problem:   "7 x 6",
		AgeGroup:  "8-10",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !minigame.MatchesProblem("7 x 6", res.MiniGames) {
		t.Error("mini-games must be about the submitted problem")
	}
	for i, g := range res.MiniGames {
		if g.CorrectAnswer != "42" {
			t.Errorf("game %d answer = %q, want 42", i, g.CorrectAnswer)
		}
	}
}

func TestRun_DisplayExprMatchesSteps(t *testing.T) {
	svc, _ := newTestService(
		llm.MockResponse{Err: errors.New("down")},
		llm.MockResponse{Err: errors.New("down")},
	)

	res, err := svc.Run(t.Context(), Request{
		SessionID: "sess-1",
		Hero:      "Ninja",
		Problem:   "7 x 6",
		AgeGroup:  "8-10",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// The displayed expression is the solver's normalized form, so the
	// steps and the solution line agree on the same spelling.
	if res.DisplayExpr != "7*6" {
		t.Errorf("display_expr = %q, want 7*6", res.DisplayExpr)
	}
	if res.MathSolution != "7*6 = 42" {
		t.Errorf("math solution = %q, want 7*6 = 42", res.MathSolution)
	}
	found := false
	for _, step := range res.MathSteps {
		if strings.Contains(step, res.DisplayExpr) {
			found = true
		}
	}
	if !found {
		t.Errorf("steps %v never mention display expr %q", res.MathSteps, res.DisplayExpr)
	}
}

func TestRun_NonMathProblemStillPlayable(t *testing.T) {
	svc, _ := newTestService(
		llm.MockResponse{Err: errors.New("steps down")},
		llm.MockResponse{Err: errors.New("minigames down")},
		llm.MockResponse{Err: errors.New("stories down")},
	)

	res, err := svc.Run(t.Context(), Request{
		SessionID: "sess-1",
		Hero:      "Hulk",
		Problem:   "what is the capital of France",
		AgeGroup:  "8-10",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Answer != "" {
		t.Errorf("answer = %q, want empty for unsolvable input", res.Answer)
	}
	if len(res.MiniGames) != 3 {
		t.Fatalf("got %d mini-games, want 3", len(res.MiniGames))
	}
	if res.Story == "" {
		t.Error("story must still be told")
	}
}

func TestRun_WordProblemWithAISteps(t *testing.T) {
	stepsJSON := json.RawMessage(`{
		"steps": ["Count 4 apples.", "Add 3 more: 4 + 3 = 7."],
		"answer": "7"
	}`)
	svc, _ := newTestService(
		llm.MockResponse{Content: stepsJSON},
		llm.MockResponse{Err: errors.New("minigames down")},
		llm.MockResponse{Content: json.RawMessage(`{"story": "Hulk smashes 4 rocks, then 3 more. Seven rocks smashed!"}`)},
	)

	res, err := svc.Run(t.Context(), Request{
		SessionID: "sess-1",
		Hero:      "Hulk",
		Problem:   "Sara has 4 apples and buys 3 more. How many?",
		AgeGroup:  "5-7",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Answer != "7" {
		t.Errorf("answer = %q, want 7", res.Answer)
	}
	if !strings.HasPrefix(res.MathSolution, "Answer:") {
		t.Errorf("math solution = %q, want Answer: prefix for AI solves", res.MathSolution)
	}
	if res.StorySource != "ai" {
		t.Errorf("story source = %q, want ai", res.StorySource)
	}
	for i, g := range res.MiniGames {
		if g.CorrectAnswer != "7" {
			t.Errorf("game %d answer = %q, want 7 from AI steps", i, g.CorrectAnswer)
		}
	}
}

func TestRun_GeneratesSessionID(t *testing.T) {
	svc, _ := newTestService(
		llm.MockResponse{Err: errors.New("down")},
		llm.MockResponse{Err: errors.New("down")},
	)

	res, err := svc.Run(t.Context(), Request{Hero: "Wizard", Problem: "2 + 2", AgeGroup: "8-10"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.SessionID == "" {
		t.Error("empty request session id must yield a generated one")
	}
}
