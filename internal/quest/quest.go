// Package quest orchestrates one full quest: solve the problem, build
// the mini-games, tell the story, and record what happened. Every stage
// degrades gracefully so a quest always comes back usable.
package quest

import (
	"context"
	"log/slog"

	"github.com/devika/mathquest/internal/catalog"
	"github.com/devika/mathquest/internal/classify"
	"github.com/devika/mathquest/internal/mathsteps"
	"github.com/devika/mathquest/internal/minigame"
	"github.com/devika/mathquest/internal/session"
	"github.com/devika/mathquest/internal/store"
	"github.com/devika/mathquest/internal/story"
)

// Request describes one quest to run.
type Request struct {
	SessionID string
	Hero      string
	Problem   string
	AgeGroup  string
}

// Result is everything a client needs to play the quest.
type Result struct {
	SessionID    string          `json:"session_id"`
	Story        string          `json:"story"`
	StorySource  string          `json:"story_source"`
	ProblemType  string          `json:"problem_type"`
	Answer       string          `json:"answer,omitempty"`
	DisplayExpr  string          `json:"display_expr,omitempty"`
	MathSteps    []string        `json:"math_steps,omitempty"`
	MathSolution string          `json:"math_solution,omitempty"`
	MiniGames    []minigame.Game `json:"mini_games"`
	Coins        int             `json:"coins"`
}

// Service runs quests.
type Service struct {
	steps    *mathsteps.Service
	stories  *story.Service
	games    *minigame.Generator
	sessions *session.Service
	events   store.EventRepo
	log      *slog.Logger
}

// NewService wires a quest service. events may be nil to skip event
// recording (tests, ephemeral runs).
func NewService(steps *mathsteps.Service, stories *story.Service, games *minigame.Generator, sessions *session.Service, events store.EventRepo, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		steps:    steps,
		stories:  stories,
		games:    games,
		sessions: sessions,
		events:   events,
		log:      log,
	}
}

// Run executes the quest. It only fails when session state cannot be
// saved; math, story, and mini-game stages all have fallbacks.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	kind := classify.Classify(req.Problem)
	hero, _ := catalog.HeroByName(req.Hero)

	// Solve first so the answer grounds everything downstream.
	var (
		answer    string
		steps     []string
		display   string
		solvedLoc bool
	)
	solution, err := s.steps.Solve(ctx, req.Problem, req.AgeGroup)
	if err != nil {
		s.log.Warn("math steps unavailable", "problem", req.Problem, "err", err)
	} else {
		answer = solution.Answer
		steps = solution.Steps
		display = solution.DisplayExpr
		solvedLoc = solution.Local
	}
	// LLM-solved problems have no normalized expression; show the
	// kid-friendly form of the submitted problem instead.
	if display == "" {
		display = minigame.DisplayProblem(req.Problem)
	}

	sess, err := s.sessions.GetOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	games, aiGames := s.games.Generate(ctx, minigame.BuildInput{
		Problem:    req.Problem,
		Hero:       req.Hero,
		AgeGroup:   req.AgeGroup,
		Steps:      steps,
		AnswerHint: answer,
	})

	tale := s.stories.Tell(ctx, story.Input{
		Hero:     hero,
		Problem:  req.Problem,
		AgeGroup: req.AgeGroup,
		Gear:     sess.Inventory,
		Steps:    steps,
		Answer:   answer,
	})

	sess, err = s.sessions.CompleteQuest(ctx, sess.ID, req.Problem, req.Hero)
	if err != nil {
		return nil, err
	}

	s.recordStory(ctx, sess.ID, req, kind, tale, solvedLoc, answer)
	s.log.Info("quest complete",
		"session", sess.ID,
		"kind", kind,
		"solved_locally", solvedLoc,
		"story_source", tale.Source,
		"ai_games", aiGames,
	)

	res := &Result{
		SessionID:   sess.ID,
		Story:       tale.Text,
		StorySource: tale.Source,
		ProblemType: string(kind),
		MiniGames:   games,
		Coins:       sess.Coins,
	}
	if answer != "" {
		res.Answer = answer
		res.DisplayExpr = display
		res.MathSteps = steps
		res.MathSolution = formatSolution(display, answer, solvedLoc)
	}
	return res, nil
}

func (s *Service) recordStory(ctx context.Context, sessionID string, req Request, kind classify.Kind, tale story.Story, solvedLoc bool, answer string) {
	if s.events == nil {
		return
	}
	err := s.events.AppendStory(ctx, store.StoryEventData{
		SessionID:     sessionID,
		Hero:          req.Hero,
		Problem:       req.Problem,
		ProblemType:   string(kind),
		AgeGroup:      req.AgeGroup,
		SolvedLocally: solvedLoc,
		Answer:        answer,
		Source:        tale.Source,
	})
	if err != nil {
		s.log.Warn("record story event", "err", err)
	}
}

func formatSolution(display, answer string, solvedLoc bool) string {
	if solvedLoc {
		return display + " = " + answer
	}
	return "Answer: " + answer
}
