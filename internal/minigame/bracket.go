package minigame

// Bracket is the read-only difficulty/presentation profile for an age
// range. All produced games are clamped into the bracket's ranges.
type Bracket struct {
	Key         string
	ChoiceCount int
	TimeMin     int
	TimeMax     int
	RewardMin   int
	RewardMax   int
	Difficulty  string
}

// DefaultAgeGroup is used when the caller supplies an unknown key.
const DefaultAgeGroup = "8-10"

var brackets = map[string]Bracket{
	"5-7": {
		Key:         "5-7",
		ChoiceCount: 3,
		TimeMin:     12,
		TimeMax:     25,
		RewardMin:   10,
		RewardMax:   20,
		Difficulty:  "gentle",
	},
	"8-10": {
		Key:         "8-10",
		ChoiceCount: 4,
		TimeMin:     8,
		TimeMax:     18,
		RewardMin:   15,
		RewardMax:   30,
		Difficulty:  "standard",
	},
	"11-13": {
		Key:         "11-13",
		ChoiceCount: 4,
		TimeMin:     6,
		TimeMax:     14,
		RewardMin:   20,
		RewardMax:   40,
		Difficulty:  "challenge",
	},
}

// BracketFor returns the bracket for the age group, falling back to the
// default for unknown keys.
func BracketFor(ageGroup string) Bracket {
	if b, ok := brackets[ageGroup]; ok {
		return b
	}
	return brackets[DefaultAgeGroup]
}
