// Package story turns a math problem into a short superhero adventure
// told by the player's chosen hero.
package story

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/devika/mathquest/internal/catalog"
	"github.com/devika/mathquest/internal/llm"
)

// Input describes one story to tell.
type Input struct {
	Hero     catalog.Hero
	Problem  string
	AgeGroup string

	// Gear is the session's owned item names; it flavours the story.
	Gear []string

	// Steps is the worked solution, woven into the adventure when
	// available.
	Steps []string
	// Answer is the verified answer. The story must agree with it.
	Answer string
}

// Story is a generated adventure.
type Story struct {
	Text string

	// Source is "ai" or "fallback".
	Source string
}

// Config holds story generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for story generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.9,
	}
}

// Service generates hero stories.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a story service. The provider may be nil; every
// request then gets the deterministic fallback story.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Tell returns a story for the input. It never fails: when the provider
// is missing or errors, a canned template story is returned instead.
func (s *Service) Tell(ctx context.Context, in Input) Story {
	if s.provider == nil {
		return fallbackStory(in)
	}

	text, err := s.generate(ctx, in)
	if err != nil {
		return fallbackStory(in)
	}
	return Story{Text: text, Source: "ai"}
}

type storyOutput struct {
	Story string `json:"story"`
}

func (s *Service) generate(ctx context.Context, in Input) (string, error) {
	ctx = llm.WithPurpose(ctx, "story")

	req := llm.Request{
		System: storySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStoryUserMessage(in)},
		},
		Schema:      StorySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("story generation: %w", err)
	}

	var out storyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse story response: %w", err)
	}
	if strings.TrimSpace(out.Story) == "" {
		return "", fmt.Errorf("story generation: empty story")
	}
	return strings.TrimSpace(out.Story), nil
}

const storySystemPrompt = `You are a storyteller for a kids' math adventure game. You explain math problems through short superhero stories. Keep it fun and engaging for kids! Use action words and make the character do things related to their powers. Never get the math wrong.`

func buildStoryUserMessage(in Input) string {
	gear := "bare hands"
	if len(in.Gear) > 0 {
		gear = strings.Join(in.Gear, ", ")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Explain %s using a %s analogy. The hero %s. The hero is using %s.\n", in.Problem, in.Hero.Name, in.Hero.Story, gear))
	b.WriteString(fmt.Sprintf("Age group: %s\n", in.AgeGroup))
	if in.Answer != "" {
		b.WriteString(fmt.Sprintf("The correct answer is %s. The story must arrive at exactly this answer.\n", in.Answer))
	}
	if len(in.Steps) > 0 {
		b.WriteString("Work the solution into the adventure using these steps:\n")
		for _, st := range in.Steps {
			b.WriteString(fmt.Sprintf("- %s\n", st))
		}
	}
	b.WriteString("\nKeep the story to 4-8 short sentences.")
	return b.String()
}

// fallbackStory builds a deterministic template adventure so quests
// always produce something, even with no LLM at hand.
func fallbackStory(in Input) Story {
	hero := in.Hero.Name
	if hero == "" {
		hero = "Your hero"
	}
	action := in.Hero.Action
	if action == "" {
		action = "leaping into action"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s bursts onto the scene, %s! ", hero, action))
	b.WriteString(fmt.Sprintf("A tricky challenge blocks the path: %s. ", strings.TrimSpace(in.Problem)))
	for _, st := range in.Steps {
		b.WriteString(st)
		b.WriteString(" ")
	}
	if in.Answer != "" && !strings.Contains(b.String(), "Answer:") {
		b.WriteString(fmt.Sprintf("With one final move the answer appears: %s! ", in.Answer))
	}
	b.WriteString(fmt.Sprintf("The day is saved. %s", in.Hero.Emoji))

	return Story{Text: strings.TrimSpace(b.String()), Source: "fallback"}
}

// StorySchema defines the JSON schema for story generation.
var StorySchema = &llm.Schema{
	Name:        "hero-story",
	Description: "A short superhero story that teaches a math problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"story": map[string]any{
				"type":        "string",
				"description": "The adventure, 4-8 short sentences, kid-friendly",
			},
		},
		"required":             []any{"story"},
		"additionalProperties": false,
	},
}
