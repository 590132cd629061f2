package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/priyali/arithma/internal/bkt"
	"github.com/priyali/arithma/internal/priorconf"
	"github.com/priyali/arithma/internal/store"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Estimate skill mastery from the recorded history",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := computeOptionsFromFlags(cmd)
		if err != nil {
			return err
		}

		repo, closeStore, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		attempts, err := repo.ListAttempts(cmd.Context())
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet. Use `arithma record` first.")
			return nil
		}

		result := bkt.ComputeFromHistory(toObservations(attempts), opts)
		printResult(result, opts.Now)

		runID := uuid.NewString()
		insights := make([]store.Insight, len(result.Skills))
		for i, s := range result.Skills {
			insights[i] = store.Insight{
				RunID:          runID,
				SkillID:        s.SkillID,
				PKnown:         s.PKnown,
				Confidence:     s.Confidence,
				Classification: string(s.Classification),
				Opportunities:  s.Opportunities,
				SuccessCount:   s.SuccessCount,
			}
		}
		return repo.AppendInsights(cmd.Context(), insights)
	},
}

func computeOptionsFromFlags(cmd *cobra.Command) (bkt.ComputeOptions, error) {
	var opts bkt.ComputeOptions

	method, _ := cmd.Flags().GetString("method")
	switch bkt.Method(method) {
	case bkt.MethodHeuristic, bkt.MethodBayesian:
		opts.Method = bkt.Method(method)
	default:
		return opts, fmt.Errorf("unknown --method %q (heuristic or bayesian)", method)
	}

	opts.ApplyDecay, _ = cmd.Flags().GetBool("decay")
	opts.DecayHalfLifeDays, _ = cmd.Flags().GetFloat64("half-life")
	opts.ConfidenceThreshold, _ = cmd.Flags().GetFloat64("threshold")
	opts.Now = time.Now().UTC()

	if path, _ := cmd.Flags().GetString("priors"); path != "" {
		priors, err := priorconf.Load(path)
		if err != nil {
			return opts, err
		}
		opts.Priors = priors
	}
	return opts, nil
}

func toObservations(attempts []store.Attempt) []bkt.Observation {
	observations := make([]bkt.Observation, len(attempts))
	for i, a := range attempts {
		observations[i] = bkt.Observation{
			Timestamp: a.Timestamp,
			Correct:   a.Correct,
			SkillIDs:  a.Skills,
			HelpLevel: bkt.HelpLevel(a.HelpLevel),
			TimeMs:    a.TimeMs,
		}
	}
	return observations
}

func printResult(result bkt.Result, now time.Time) {
	fmt.Printf("%-30s  %8s  %-14s  %5s  %-10s  %8s\n",
		"SKILL", "P(KNOWN)", "RANGE", "CONF", "CLASS", "ATTEMPTS")
	fmt.Println(strings.Repeat("─", 86))

	for _, s := range result.Skills {
		pKnown := fmt.Sprintf("%8.2f", s.PKnown)
		rng := fmt.Sprintf("[%.2f, %.2f]", s.Uncertainty.Low, s.Uncertainty.High)
		if s.Corrupt {
			// Corrupt input surfaced, not masked: flag for investigation.
			pKnown = "     n/a"
			rng = "corrupt data"
		}
		fmt.Printf("%-30s  %s  %-14s  %5.2f  %-10s  %5d/%d\n",
			s.SkillID, pKnown, rng, s.Confidence, s.Classification,
			s.SuccessCount, s.Opportunities)

		days := now.Sub(s.LastPracticedAt).Hours() / 24
		if warning := bkt.StalenessWarning(days); warning != bkt.StalenessNone {
			fmt.Printf("%-30s  note: %s\n", "", warning)
		}
	}

	if len(result.InterventionNeeded) > 0 {
		fmt.Printf("\nNeeds intervention: %s\n", strings.Join(result.InterventionNeeded, ", "))
	}
	if len(result.Strengths) > 0 {
		fmt.Printf("Strengths: %s\n", strings.Join(result.Strengths, ", "))
	}
}

func init() {
	insightsCmd.Flags().String("method", string(bkt.MethodHeuristic), "Blame attribution for multi-skill misses: heuristic or bayesian")
	insightsCmd.Flags().Bool("decay", false, "Decay unpracticed estimates toward their prior")
	insightsCmd.Flags().Float64("half-life", bkt.DefaultDecayHalfLifeDays, "Decay half-life in days")
	insightsCmd.Flags().Float64("threshold", bkt.DefaultConfidenceThreshold, "Confidence required to classify strong or weak")
	insightsCmd.Flags().String("priors", "", "Path to a priors override file (JSON)")
}
