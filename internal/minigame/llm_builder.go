package minigame

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/devika/mathquest/internal/llm"
)

// Generator proposes themed mini-game sets via the LLM, guarded by the
// alignment check. A misaligned or failed generation silently falls back
// to the deterministic builder, so Generate never fails outward.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// Config controls LLM mini-game generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

const systemPrompt = `You are a game designer creating three short quiz challenges for a children's math adventure.

Rules:
- Every question must be about the EXACT math problem you are given. Restate the problem inside the question text.
- Produce exactly three games, in this order: one "quicktime", one "timed", one "choice".
- The correct_answer must appear in choices. Distractors should be plausible near-misses.
- Keep titles short and punchy. Questions are one sentence. Hero actions and fail messages are encouraging, never mocking.
- Write for the given age group. Use the hero's name in prompts and actions.`

// gameOutput mirrors the schema for a single game.
type gameOutput struct {
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Prompt        string   `json:"prompt"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Choices       []string `json:"choices"`
	TimeLimit     int      `json:"time_limit"`
	RewardCoins   int      `json:"reward_coins"`
	HeroAction    string   `json:"hero_action"`
	FailMessage   string   `json:"fail_message"`
}

type gameSetOutput struct {
	Games []gameOutput `json:"games"`
}

// GameSetSchema defines the JSON schema for LLM mini-game responses.
var GameSetSchema = &llm.Schema{
	Name:        "mini-game-set",
	Description: "Three quiz challenges derived from one math problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"games": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"quicktime", "timed", "choice"},
						},
						"title":          map[string]any{"type": "string"},
						"prompt":         map[string]any{"type": "string"},
						"question":       map[string]any{"type": "string"},
						"correct_answer": map[string]any{"type": "string"},
						"choices": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"time_limit":   map[string]any{"type": "integer"},
						"reward_coins": map[string]any{"type": "integer"},
						"hero_action":  map[string]any{"type": "string"},
						"fail_message": map[string]any{"type": "string"},
					},
					"required": []any{
						"type", "title", "prompt", "question", "correct_answer",
						"choices", "time_limit", "reward_coins", "hero_action", "fail_message",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"games"},
		"additionalProperties": false,
	},
}

// Generate asks the LLM for a themed set and validates it against the
// problem. The returned bool reports whether the AI set was accepted;
// false means the deterministic set was substituted.
func (g *Generator) Generate(ctx context.Context, in BuildInput) ([]Game, bool) {
	if g == nil || g.provider == nil {
		return Build(in), false
	}

	ctx = llm.WithPurpose(ctx, "minigame-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      GameSetSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		slog.Debug("minigame generation failed, using deterministic set", "error", err)
		return Build(in), false
	}

	var out gameSetOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		slog.Debug("minigame response unparsable, using deterministic set", "error", err)
		return Build(in), false
	}

	candidates := make([]Game, 0, len(out.Games))
	for _, raw := range out.Games {
		candidates = append(candidates, Game{
			Type:          GameType(raw.Type),
			Title:         raw.Title,
			Prompt:        raw.Prompt,
			Question:      raw.Question,
			CorrectAnswer: raw.CorrectAnswer,
			Choices:       raw.Choices,
			TimeLimit:     raw.TimeLimit,
			RewardCoins:   raw.RewardCoins,
			HeroAction:    raw.HeroAction,
			FailMessage:   raw.FailMessage,
		})
	}

	games, accepted := FromCandidates(in, candidates)
	if !accepted {
		slog.Info("rejected misaligned mini-game candidates", "problem", in.Problem)
	}
	return games, accepted
}

func buildUserMessage(in BuildInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", in.Problem)
	fmt.Fprintf(&b, "Display form: %s\n", DisplayProblem(in.Problem))
	fmt.Fprintf(&b, "Hero: %s\n", heroName(in.Hero))

	bracket := BracketFor(in.AgeGroup)
	fmt.Fprintf(&b, "Age group: %s (%s)\n", bracket.Key, bracket.Difficulty)
	fmt.Fprintf(&b, "Choices per game: %d\n", bracket.ChoiceCount)
	fmt.Fprintf(&b, "Time limit range: %d-%d seconds\n", bracket.TimeMin, bracket.TimeMax)
	fmt.Fprintf(&b, "Reward range: %d-%d coins\n", bracket.RewardMin, bracket.RewardMax)

	if answer := resolveAnswer(in); answer != "" {
		fmt.Fprintf(&b, "Verified answer: %s\n", answer)
	}
	return b.String()
}
