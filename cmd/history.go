package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past computation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		repo, closeStore, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		insights, err := repo.ListInsights(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(insights) == 0 {
			fmt.Println("No computation runs recorded yet. Use `arithma insights` first.")
			return nil
		}

		fmt.Printf("%-20s  %-30s  %8s  %5s  %-10s\n",
			"WHEN", "SKILL", "P(KNOWN)", "CONF", "CLASS")
		fmt.Println(strings.Repeat("─", 82))
		for _, in := range insights {
			pKnown := fmt.Sprintf("%8.2f", in.PKnown)
			if math.IsNaN(in.PKnown) {
				pKnown = "     n/a"
			}
			fmt.Printf("%-20s  %-30s  %s  %5.2f  %-10s\n",
				in.Timestamp.Local().Format("2006-01-02 15:04"),
				in.SkillID, pKnown, in.Confidence, in.Classification)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 50, "Maximum number of rows to show (0 = all)")
}
