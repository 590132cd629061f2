package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/priyali/arithma/internal/store"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record one practice attempt",
	Example: `  arithma record --skills basic.addition --correct --time-ms 3200
  arithma record --skills fractions.compare,division.long --help-level 2 --time-ms 14000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, _ := cmd.Flags().GetStringSlice("skills")
		if len(skills) == 0 {
			return fmt.Errorf("at least one --skills entry is required")
		}
		correct, _ := cmd.Flags().GetBool("correct")
		helpLevel, _ := cmd.Flags().GetInt("help-level")
		if helpLevel < 0 || helpLevel > 3 {
			return fmt.Errorf("--help-level must be 0 (none), 1 (hint), 2 (decomposition), or 3 (full solution)")
		}
		timeMs, _ := cmd.Flags().GetInt("time-ms")
		if timeMs <= 0 {
			return fmt.Errorf("--time-ms must be positive")
		}
		session, _ := cmd.Flags().GetString("session")
		if session == "" {
			session = uuid.NewString()
		}

		repo, closeStore, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		err = repo.AppendAttempt(cmd.Context(), store.Attempt{
			Timestamp: time.Now().UTC(),
			SessionID: session,
			Skills:    skills,
			Correct:   correct,
			HelpLevel: helpLevel,
			TimeMs:    timeMs,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Recorded attempt for %d skill(s) in session %s\n", len(skills), session)
		return nil
	},
}

func init() {
	recordCmd.Flags().StringSlice("skills", nil, "Skill IDs the problem exercised (comma-separated for multi-skill problems)")
	recordCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	recordCmd.Flags().Int("help-level", 0, "Assistance given: 0 none, 1 hint, 2 decomposition, 3 full solution")
	recordCmd.Flags().Int("time-ms", 0, "Response time in milliseconds")
	recordCmd.Flags().String("session", "", "Session ID (defaults to a new UUID)")
}
