package mathsteps

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/devika/mathquest/internal/llm"
)

func validStepsJSON() json.RawMessage {
	return json.RawMessage(`{
		"steps": [
			"Sara starts with 4 apples.",
			"She buys 3 more, so count on: 4 + 3 = 7."
		],
		"answer": "7"
	}`)
}

func TestSolve_LocalFastPath(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	res, err := svc.Solve(t.Context(), "What is 8 + 5?", "8-10")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !res.Local {
		t.Error("expected local solve for a plain expression")
	}
	if res.Answer != "13" {
		t.Errorf("answer = %q, want 13", res.Answer)
	}
	if res.DisplayExpr != "8+5" {
		t.Errorf("display expr = %q, want 8+5", res.DisplayExpr)
	}
	if mock.CallCount() != 0 {
		t.Errorf("LLM called %d times for a locally solvable problem", mock.CallCount())
	}
}

func TestSolve_WordProblemUsesLLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStepsJSON()})
	svc := NewService(mock, DefaultConfig())

	res, err := svc.Solve(t.Context(), "Sara has 4 apples and buys 3 more. How many does she have?", "5-7")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Local {
		t.Error("word problem should not report a local solve")
	}
	if res.Answer != "7" {
		t.Errorf("answer = %q, want 7", res.Answer)
	}
	if res.DisplayExpr != "" {
		t.Errorf("display expr = %q, want empty for an LLM solve", res.DisplayExpr)
	}
	last := res.Steps[len(res.Steps)-1]
	if !strings.HasPrefix(last, "Answer:") {
		t.Errorf("final step = %q, want an Answer: line", last)
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM called %d times, want 1", mock.CallCount())
	}
}

func TestSolve_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Solve(t.Context(), "a word problem with no numbers", "8-10"); err == nil {
		t.Fatal("expected error when the provider fails")
	}
}

func TestSolve_EmptyAnswerRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"steps": [], "answer": ""}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Solve(t.Context(), "a word problem with no numbers", "8-10"); err == nil {
		t.Fatal("expected error for empty steps")
	}
}

func TestSolve_NilProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	// Locally solvable still works.
	res, err := svc.Solve(t.Context(), "2 + 2", "8-10")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Answer != "4" {
		t.Errorf("answer = %q, want 4", res.Answer)
	}

	// Word problems error out cleanly.
	if _, err := svc.Solve(t.Context(), "a word problem with no numbers", "8-10"); err == nil {
		t.Fatal("expected error with nil provider")
	}
}
