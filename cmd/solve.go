package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devika/mathquest/internal/classify"
	"github.com/devika/mathquest/internal/minigame"
	"github.com/devika/mathquest/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve <problem>",
	Short: "Classify and solve a problem locally, without the AI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		problem := strings.Join(args, " ")
		kind := classify.Classify(problem)

		fmt.Printf("Problem:  %s\n", problem)
		fmt.Printf("Type:     %s\n", kind.Label())

		sol, ok := solver.TrySolve(problem)
		if ok {
			fmt.Printf("Solved:   %s = %s\n", sol.DisplayExpr, sol.Answer)
		} else {
			fmt.Println("Solved:   not locally solvable (needs the AI solver)")
		}

		showGames, _ := cmd.Flags().GetBool("games")
		if !showGames {
			return nil
		}

		hero, _ := cmd.Flags().GetString("hero")
		age, _ := cmd.Flags().GetString("age")
		games := minigame.Build(minigame.BuildInput{
			Problem:  problem,
			Hero:     hero,
			AgeGroup: age,
		})

		fmt.Println()
		for i, g := range games {
			fmt.Printf("Game %d [%s] %s\n", i+1, g.Type, g.Title)
			fmt.Printf("  %s\n", g.Question)
			if len(g.Choices) > 0 {
				fmt.Printf("  Choices: %s\n", strings.Join(g.Choices, ", "))
			}
			fmt.Printf("  Answer: %s  (%ds, %d coins)\n", g.CorrectAnswer, g.TimeLimit, g.RewardCoins)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().Bool("games", false, "Also print the locally built mini-games")
	solveCmd.Flags().String("hero", "Wizard", "Hero to theme the mini-games with")
	solveCmd.Flags().String("age", "8-10", "Age group (5-7, 8-10, or 11-13)")
}
