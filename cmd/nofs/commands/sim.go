package commands

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"nofs/internal/condition"
	"nofs/internal/game"
	"nofs/internal/sim"
)

func newSimCommand() *cobra.Command {
	var (
		strategy string
		mode     string
		conds    []string
		games    int
		seed     int64
		maxDays  int
	)

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run headless games with an AI strategy",
		Example: `  # 100 balanced week-mode games with ADHD and anxiety
  nofs sim --strategy balanced --mode week --condition adhd --condition anxiety --games 100

  # reproducible run
  nofs sim --strategy aggressive --mode day --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := game.ParseMode(mode)
			if err != nil {
				return err
			}
			set, err := condition.ParseSet(conds)
			if err != nil {
				return err
			}

			log.Info().
				Str("strategy", strategy).
				Str("mode", mode).
				Strs("conditions", conds).
				Int("games", games).
				Int64("seed", seed).
				Msg("starting simulation")

			res, err := sim.Run(cmd.Context(), sim.Config{
				Strategy:   strategy,
				Mode:       m,
				Conditions: set,
				Games:      games,
				Seed:       seed,
				MaxDays:    maxDays,
				Log:        log.Logger,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "balanced", "AI strategy (aggressive, conservative, balanced, optimal)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "week", "game mode (day, week, life)")
	cmd.Flags().StringSliceVarP(&conds, "condition", "c", nil, "active conditions (repeatable)")
	cmd.Flags().IntVarP(&games, "games", "n", 1, "number of games to play")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base random seed")
	cmd.Flags().IntVar(&maxDays, "max-days", 0, "day cap for life-mode games (default 365)")
	return cmd
}
