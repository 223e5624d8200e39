package minigame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devika/mathquest/internal/classify"
	"github.com/devika/mathquest/internal/solver"
)

// Build constructs the deterministic three-game set for a problem.
// The set is always well-formed: quicktime, timed and choice games in that
// order, every invariant enforced by the sanitizer. Build never fails.
func Build(in BuildInput) []Game {
	b := BracketFor(in.AgeGroup)
	answer := resolveAnswer(in)

	var games []Game
	if isNumeric(answer) {
		games = sameProblemGames(in, b, answer)
	} else {
		games = structuralGames(in, b)
	}

	for i := range games {
		sanitize(&games[i], b)
	}
	return games
}

// resolveAnswer determines the answer string, preferring the caller's
// hint, then the deterministic solver, then an "Answer:" line in the AI
// steps. Empty when nothing resolves.
func resolveAnswer(in BuildInput) string {
	if hint := strings.TrimSpace(in.AnswerHint); hint != "" {
		return hint
	}
	if sol, ok := solver.TrySolve(in.Problem); ok {
		return sol.Answer
	}
	for _, step := range in.Steps {
		if rest, found := strings.CutPrefix(strings.TrimSpace(step), "Answer:"); found {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// sameProblemGames builds three challenges that all ask for the value of
// the exact submitted problem.
func sameProblemGames(in BuildInput, b Bracket, answer string) []Game {
	display := DisplayProblem(in.Problem)
	hero := heroName(in.Hero)
	distractorCount := b.ChoiceCount - 1

	return []Game{
		{
			Type:          TypeQuicktime,
			Title:         "Quick Strike!",
			Prompt:        fmt.Sprintf("%s needs the answer before the villain escapes!", hero),
			Question:      fmt.Sprintf("Quick! What is %s?", display),
			CorrectAnswer: answer,
			Choices:       append([]string{answer}, NumericDistractors(answer, distractorCount)...),
			TimeLimit:     b.TimeMin,
			RewardCoins:   b.RewardMin,
			HeroAction:    fmt.Sprintf("%s strikes with lightning speed!", hero),
			FailMessage:   "Too slow! The villain slipped away. Try again!",
		},
		{
			Type:          TypeTimed,
			Title:         "Beat the Clock!",
			Prompt:        fmt.Sprintf("%s set a trap, but it only holds if you solve in time.", hero),
			Question:      fmt.Sprintf("Solve %s before the timer runs out!", display),
			CorrectAnswer: answer,
			Choices:       append([]string{answer}, NumericDistractors(answer, distractorCount)...),
			TimeLimit:     (b.TimeMin + b.TimeMax) / 2,
			RewardCoins:   (b.RewardMin + b.RewardMax) / 2,
			HeroAction:    fmt.Sprintf("%s holds the trap shut!", hero),
			FailMessage:   "The trap sprang open! One more try!",
		},
		{
			Type:          TypeChoice,
			Title:         "Choose Wisely!",
			Prompt:        fmt.Sprintf("Three doors, one answer. %s is counting on you.", hero),
			Question:      fmt.Sprintf("Which answer makes %s true?", display),
			CorrectAnswer: answer,
			Choices:       append([]string{answer}, NumericDistractors(answer, distractorCount)...),
			TimeLimit:     b.TimeMax,
			RewardCoins:   b.RewardMax,
			HeroAction:    fmt.Sprintf("%s opens the right door!", hero),
			FailMessage:   "Wrong door! Shake it off and pick again!",
		},
	}
}

// structuralGames builds challenges about the structure of a problem the
// solver could not compute: name the operation, spot its symbol, count
// the numbers.
func structuralGames(in BuildInput, b Bracket) []Game {
	kind := classify.Classify(in.Problem)
	label := kind.Label()
	symbol := kind.Symbol()
	display := DisplayProblem(in.Problem)
	hero := heroName(in.Hero)
	count := len(numberLiterals(in.Problem))

	return []Game{
		{
			Type:          TypeQuicktime,
			Title:         "Name the Move!",
			Prompt:        fmt.Sprintf("%s recognizes every math move instantly. Can you?", hero),
			Question:      fmt.Sprintf("What kind of math move is \"%s\"?", display),
			CorrectAnswer: label,
			Choices:       labelChoices(label, b.ChoiceCount),
			TimeLimit:     b.TimeMin,
			RewardCoins:   b.RewardMin,
			HeroAction:    fmt.Sprintf("%s calls out the move!", hero),
			FailMessage:   "Not that move! Look at the problem again!",
		},
		{
			Type:          TypeTimed,
			Title:         "Spot the Symbol!",
			Prompt:        fmt.Sprintf("%s scans the battlefield for the key symbol.", hero),
			Question:      fmt.Sprintf("Which symbol powers \"%s\"?", display),
			CorrectAnswer: symbol,
			Choices:       symbolChoices(symbol, b.ChoiceCount),
			TimeLimit:     (b.TimeMin + b.TimeMax) / 2,
			RewardCoins:   (b.RewardMin + b.RewardMax) / 2,
			HeroAction:    fmt.Sprintf("%s locks onto the symbol!", hero),
			FailMessage:   "That symbol isn't the one! Scan again!",
		},
		{
			Type:          TypeChoice,
			Title:         "Count the Numbers!",
			Prompt:        fmt.Sprintf("%s never loses count, even mid-battle.", hero),
			Question:      fmt.Sprintf("How many numbers appear in \"%s\"?", display),
			CorrectAnswer: strconv.Itoa(count),
			Choices:       countChoices(count, b.ChoiceCount),
			TimeLimit:     b.TimeMax,
			RewardCoins:   b.RewardMax,
			HeroAction:    fmt.Sprintf("%s counts them in a flash!", hero),
			FailMessage:   "Miscounted! Go through them one by one!",
		},
	}
}

// heroName falls back to a generic name so templates never render empty.
func heroName(hero string) string {
	hero = strings.TrimSpace(hero)
	if hero == "" {
		return "Your hero"
	}
	return hero
}

var allLabels = []string{
	"addition", "subtraction", "multiplication", "division",
	"fractions", "decimals", "equations", "exponents", "mixed operations",
}

func labelChoices(correct string, count int) []string {
	choices := []string{correct}
	for _, l := range allLabels {
		if len(choices) == count {
			break
		}
		if l != correct {
			choices = append(choices, l)
		}
	}
	return choices
}

var allSymbols = []string{"+", "-", "×", "÷", "=", "^", "."}

func symbolChoices(correct string, count int) []string {
	choices := []string{correct}
	for _, s := range allSymbols {
		if len(choices) == count {
			break
		}
		if s != correct {
			choices = append(choices, s)
		}
	}
	return choices
}

func countChoices(count, choiceCount int) []string {
	choices := []string{strconv.Itoa(count)}
	for _, delta := range []int{1, -1, 2, 3} {
		if len(choices) == choiceCount {
			break
		}
		alt := count + delta
		if alt < 0 || alt == count {
			continue
		}
		s := strconv.Itoa(alt)
		if !containsString(choices, s) {
			choices = append(choices, s)
		}
	}
	return choices
}

// FromCandidates accepts an externally generated candidate set when it is
// well-formed and aligned with the problem, otherwise substitutes the
// deterministic set. The second return reports whether the candidates
// were accepted.
func FromCandidates(in BuildInput, candidates []Game) ([]Game, bool) {
	if len(candidates) != 3 {
		return Build(in), false
	}

	b := BracketFor(in.AgeGroup)
	games := make([]Game, 3)
	copy(games, candidates)
	for i := range games {
		sanitize(&games[i], b)
	}

	if !MatchesProblem(in.Problem, games) {
		return Build(in), false
	}
	return games, true
}
