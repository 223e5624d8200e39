package minigame

import (
	"math/rand/v2"
	"strings"
)

// sanitize enforces every Game invariant in place: valid type, non-empty
// correct answer, exactly bracket.ChoiceCount unique choices containing
// the correct answer, time and reward clamped into the bracket ranges,
// and all text fields capped.
func sanitize(g *Game, b Bracket) {
	switch g.Type {
	case TypeQuicktime, TypeTimed, TypeChoice:
	default:
		g.Type = TypeChoice
	}

	g.CorrectAnswer = strings.TrimSpace(g.CorrectAnswer)
	if g.CorrectAnswer == "" {
		g.CorrectAnswer = "0"
	}

	g.Choices = buildChoices(g.CorrectAnswer, g.Choices, b.ChoiceCount)

	g.TimeLimit = clamp(g.TimeLimit, b.TimeMin, b.TimeMax)
	g.RewardCoins = clamp(g.RewardCoins, b.RewardMin, b.RewardMax)

	g.Title = truncate(g.Title, maxTitleLen)
	g.Prompt = truncate(g.Prompt, maxPromptLen)
	g.Question = truncate(g.Question, maxQuestion)
	g.HeroAction = truncate(g.HeroAction, maxHeroAction)
	g.FailMessage = truncate(g.FailMessage, maxFailMsg)
}

// buildChoices returns a unique choice list of at most count entries that
// always contains correct. Short lists are padded with numeric
// distractors; shuffling affects presentation order only.
func buildChoices(correct string, raw []string, count int) []string {
	seen := make(map[string]bool, count)
	choices := make([]string, 0, count)

	add := func(c string) {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			return
		}
		seen[c] = true
		choices = append(choices, c)
	}

	add(correct)
	for _, c := range raw {
		add(c)
	}
	if len(choices) < count {
		for _, d := range NumericDistractors(correct, count-1) {
			if len(choices) == count {
				break
			}
			add(d)
		}
	}

	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	if len(choices) > count {
		choices = choices[:count]
	}

	// Truncation may have dropped the correct answer; force it back in
	// at the front.
	if !containsString(choices, correct) {
		choices = append([]string{correct}, choices...)
		if len(choices) > count {
			choices = choices[:count]
		}
	}
	return choices
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// truncate caps s at n runes without splitting a multi-byte character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
