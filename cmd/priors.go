package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/priyali/arithma/internal/bkt"
	"github.com/priyali/arithma/internal/priorconf"
	"github.com/priyali/arithma/internal/skillgraph"
)

var priorsCmd = &cobra.Command{
	Use:   "priors",
	Short: "Show the effective prior parameters per skill family",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := bkt.DefaultPriors()
		if path, _ := cmd.Flags().GetString("priors"); path != "" {
			loaded, err := priorconf.Load(path)
			if err != nil {
				return err
			}
			table = loaded
		}

		fmt.Printf("%-24s  %-20s  %6s  %7s  %6s  %7s\n",
			"PREFIX", "FAMILY", "P_INIT", "P_LEARN", "P_SLIP", "P_GUESS")
		fmt.Println(strings.Repeat("─", 80))
		for _, e := range table.Entries() {
			family := skillgraph.FamilyDisplayName(skillgraph.FamilyOf(e.Prefix))
			fmt.Printf("%-24s  %-20s  %6.2f  %7.2f  %6.2f  %7.2f\n",
				e.Prefix, family, e.Params.PInit, e.Params.PLearn, e.Params.PSlip, e.Params.PGuess)
		}
		fb := table.Fallback()
		fmt.Printf("%-24s  %-20s  %6.2f  %7.2f  %6.2f  %7.2f\n",
			"(fallback)", "", fb.PInit, fb.PLearn, fb.PSlip, fb.PGuess)
		return nil
	},
}

func init() {
	priorsCmd.Flags().String("priors", "", "Path to a priors override file (JSON)")
}
