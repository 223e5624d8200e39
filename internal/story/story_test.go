package story

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/devika/mathquest/internal/catalog"
	"github.com/devika/mathquest/internal/llm"
)

func wizard(t *testing.T) catalog.Hero {
	t.Helper()
	h, ok := catalog.HeroByName("Wizard")
	if !ok {
		t.Fatal("Wizard missing from catalog")
	}
	return h
}

func TestTell_AIStory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"story": "The Wizard waves his staff and 8 sparks join 5 sparks. Together they make 13!"}`),
	})
	svc := NewService(mock, DefaultConfig())

	got := svc.Tell(t.Context(), Input{
		Hero:     wizard(t),
		Problem:  "8 + 5",
		AgeGroup: "8-10",
		Answer:   "13",
	})
	if got.Source != "ai" {
		t.Errorf("source = %q, want ai", got.Source)
	}
	if !strings.Contains(got.Text, "13") {
		t.Errorf("story %q should mention the answer", got.Text)
	}
}

func TestTell_FallbackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock, DefaultConfig())

	got := svc.Tell(t.Context(), Input{
		Hero:    wizard(t),
		Problem: "8 + 5",
		Steps:   []string{"Compute it: 8+5 = 13.", "Answer: 13"},
		Answer:  "13",
	})
	if got.Source != "fallback" {
		t.Errorf("source = %q, want fallback", got.Source)
	}
	if !strings.Contains(got.Text, "Wizard") {
		t.Errorf("fallback story %q should name the hero", got.Text)
	}
	if !strings.Contains(got.Text, "13") {
		t.Errorf("fallback story %q should carry the answer", got.Text)
	}
}

func TestTell_NilProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	got := svc.Tell(t.Context(), Input{Hero: wizard(t), Problem: "8 + 5", Answer: "13"})
	if got.Source != "fallback" {
		t.Errorf("source = %q, want fallback", got.Source)
	}
	if got.Text == "" {
		t.Error("fallback story must not be empty")
	}
}

func TestTell_EmptyStoryFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"story": "   "}`),
	})
	svc := NewService(mock, DefaultConfig())

	got := svc.Tell(t.Context(), Input{Hero: wizard(t), Problem: "8 + 5"})
	if got.Source != "fallback" {
		t.Errorf("source = %q, want fallback for blank AI story", got.Source)
	}
}

func TestBuildStoryUserMessage_Gear(t *testing.T) {
	msg := buildStoryUserMessage(Input{
		Hero:    wizard(t),
		Problem: "8 + 5",
		Gear:    []string{"Fire Sword", "Ice Shield"},
	})
	if !strings.Contains(msg, "Fire Sword, Ice Shield") {
		t.Errorf("message should list gear, got %q", msg)
	}

	bare := buildStoryUserMessage(Input{Hero: wizard(t), Problem: "8 + 5"})
	if !strings.Contains(bare, "bare hands") {
		t.Errorf("message should default to bare hands, got %q", bare)
	}
}
