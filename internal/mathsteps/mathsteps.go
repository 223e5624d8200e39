// Package mathsteps produces kid-readable solution steps for a math
// problem. Expression problems are solved locally; word problems go to
// the LLM with a structured schema.
package mathsteps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/devika/mathquest/internal/llm"
	"github.com/devika/mathquest/internal/solver"
)

// Result is a worked solution: explanation steps ending in an answer.
type Result struct {
	Steps  []string
	Answer string

	// DisplayExpr is the solver's normalized expression ("8+5"), empty
	// when the LLM solved the problem.
	DisplayExpr string

	// Local is true when the deterministic solver produced the result
	// without an LLM call.
	Local bool
}

// Config holds step generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for step generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.4,
	}
}

// Service generates solution steps.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a step generation service. The provider may be nil;
// only local solving is available then.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Solve returns worked steps for the problem. The deterministic solver
// is always tried first; the LLM is only consulted for problems it
// cannot evaluate.
func (s *Service) Solve(ctx context.Context, problem, ageGroup string) (*Result, error) {
	if sol, ok := solver.TrySolve(problem); ok {
		return &Result{Steps: sol.Steps, Answer: sol.Answer, DisplayExpr: sol.DisplayExpr, Local: true}, nil
	}

	if s.provider == nil {
		return nil, fmt.Errorf("problem needs an LLM to solve and none is configured")
	}
	return s.generate(ctx, problem, ageGroup)
}

type stepsOutput struct {
	Steps  []string `json:"steps"`
	Answer string   `json:"answer"`
}

func (s *Service) generate(ctx context.Context, problem, ageGroup string) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "math-steps")

	req := llm.Request{
		System: stepsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStepsUserMessage(problem, ageGroup)},
		},
		Schema:      StepsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("step generation: %w", err)
	}

	var out stepsOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse steps response: %w", err)
	}
	if len(out.Steps) == 0 || strings.TrimSpace(out.Answer) == "" {
		return nil, fmt.Errorf("step generation: empty steps or answer")
	}

	answer := strings.TrimSpace(out.Answer)
	steps := make([]string, 0, len(out.Steps)+1)
	for _, st := range out.Steps {
		if st = strings.TrimSpace(st); st != "" {
			steps = append(steps, st)
		}
	}
	// Downstream consumers read the answer off the final step.
	if len(steps) == 0 || !strings.HasPrefix(steps[len(steps)-1], "Answer:") {
		steps = append(steps, fmt.Sprintf("Answer: %s", answer))
	}

	return &Result{Steps: steps, Answer: answer}, nil
}

const stepsSystemPrompt = `You are a patient math tutor for children. Solve the problem and explain it in short, numbered-free steps a child can follow. Use plain ASCII for all math. Never skip the arithmetic.`

func buildStepsUserMessage(problem, ageGroup string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Problem: %s\n", problem))
	b.WriteString(fmt.Sprintf("Age group: %s\n", ageGroup))
	b.WriteString(`
Instructions:
1. Solve the problem correctly.
2. Explain the solution in 2-5 short steps, one sentence each.
3. Keep the language simple enough for the age group.
4. The answer must be the bare result (a number when the problem is numeric), with no units or extra words unless the problem requires them.`)
	return b.String()
}

// StepsSchema defines the JSON schema for worked solution steps.
var StepsSchema = &llm.Schema{
	Name:        "math-steps",
	Description: "Worked solution steps and the final answer for a math problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    6,
				"description": "Short solution steps, one sentence each",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The final answer, as bare as possible",
			},
		},
		"required":             []any{"steps", "answer"},
		"additionalProperties": false,
	},
}
