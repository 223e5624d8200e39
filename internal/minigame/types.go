// Package minigame builds the three quiz challenges that accompany a
// solved problem, and guards externally generated candidates so a
// mini-game is never about a different problem than the one submitted.
package minigame

// GameType identifies the presentation style of a challenge.
type GameType string

const (
	TypeQuicktime GameType = "quicktime"
	TypeTimed     GameType = "timed"
	TypeChoice    GameType = "choice"
)

// Text field caps. Anything longer is truncated by the sanitizer.
const (
	maxTitleLen   = 40
	maxPromptLen  = 160
	maxQuestion   = 180
	maxHeroAction = 80
	maxFailMsg    = 90
)

// Game is a single quiz challenge. Field names match the wire contract
// consumed by the front end.
type Game struct {
	Type          GameType `json:"type"`
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

// BuildInput carries everything needed to build a mini-game set.
// Steps and AnswerHint come from the external AI solver and are treated
// as untrusted hints.
type BuildInput struct {
	Problem    string
	Hero       string
	AgeGroup   string
	Steps      []string
	AnswerHint string
}
