package minigame

import "testing"

func TestDisplayProblem(t *testing.T) {
	tests := []struct {
		problem string
		want    string
	}{
		{"8 + 5", "8+5"},
		{"What is 7 x 6?", "7 x 6"},
		{"10 / 2", "10 ÷ 2"},
		{"  what   is  the  capital  of France  ", "what is the capital of France"},
	}
	for _, tt := range tests {
		if got := DisplayProblem(tt.problem); got != tt.want {
			t.Errorf("DisplayProblem(%q) = %q, want %q", tt.problem, got, tt.want)
		}
	}
}

func TestMatchesProblem(t *testing.T) {
	tests := []struct {
		name    string
		problem string
		games   []Game
		want    bool
	}{
		{
			name:    "questions embed the problem",
			problem: "8 + 5",
			games: []Game{
				{Question: "Quick! What is 8+5?"},
				{Question: "Solve 8+5 before the timer ends!"},
				{Question: "Which answer makes 8+5 true?"},
			},
			want: true,
		},
		{
			name:    "questions about a different problem",
			problem: "7 + 5",
			games: []Game{
				{Question: "Quick! What is 9 × 3?"},
				{Question: "Solve 9 × 3 fast!"},
				{Question: "Which answer makes 9 × 3 true?"},
			},
			want: false,
		},
		{
			name:    "shared numeral with operation cue",
			problem: "What is 8 plus 5?",
			games: []Game{
				{Question: "The hero adds 8 and 5 coins. What is the sum?"},
				{Question: "Add 8 + 5 before the portal closes!"},
				{Question: "8 plus 5 opens which door?"},
			},
			want: true,
		},
		{
			name:    "numbers match but operation cue missing",
			problem: "8 + 5",
			games: []Game{
				{Question: "The hero sees 8 dragons and 5 knights. Who wins?"},
				{Question: "Pick between room 8 and room 5!"},
				{Question: "Is 8 bigger than 5?"},
			},
			want: false,
		},
		{
			name:    "one stray game fails the whole set",
			problem: "8 + 5",
			games: []Game{
				{Question: "Quick! What is 8+5?"},
				{Question: "What is the capital of France?"},
				{Question: "Which answer makes 8+5 true?"},
			},
			want: false,
		},
		{
			name:    "bare x counts as a multiplication cue",
			problem: "7 x 6",
			games: []Game{
				{Question: "What is 7 x 6?"},
				{Question: "Solve 7x6 before the lava rises!"},
				{Question: "7 x 6 unlocks which gate?"},
			},
			want: true,
		},
		{
			name:    "word problem with no numerals falls back to cue check",
			problem: "split the treasure into equal shares",
			games: []Game{
				{Question: "How do you split the treasure into equal shares?"},
				{Question: "Divide the loot: split the treasure into equal shares!"},
				{Question: "Pick the fair way to split the treasure into equal shares."},
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesProblem(tt.problem, tt.games); got != tt.want {
				t.Errorf("MatchesProblem(%q, ...) = %v, want %v", tt.problem, got, tt.want)
			}
		})
	}
}
