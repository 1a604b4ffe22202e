package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smehra/sayright/internal/config"
	"github.com/smehra/sayright/internal/engine"
	"github.com/smehra/sayright/internal/evaluate"
	"github.com/smehra/sayright/internal/scorer"
	"github.com/smehra/sayright/internal/ui/theme"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a scored pronunciation attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")
		unit, _ := cmd.Flags().GetString("unit")
		text, _ := cmd.Flags().GetString("text")
		audio, _ := cmd.Flags().GetString("audio")
		locale, _ := cmd.Flags().GetString("locale")
		key, _ := cmd.Flags().GetString("key")

		// Only an explicitly set flag overrides the configured
		// threshold; 0 is a valid override (everything passes).
		var threshold *float64
		if cmd.Flags().Changed("threshold") {
			v, _ := cmd.Flags().GetFloat64("threshold")
			threshold = &v
		}

		factory := vendorScorer
		if cmd.Flags().Changed("score") {
			score, _ := cmd.Flags().GetFloat64("score")
			factory = func(*config.Config, *zap.Logger) (scorer.Scorer, error) {
				return fixedScorer(text, score), nil
			}
		}

		eng, s, err := openEngine(cmd, factory)
		if err != nil {
			return err
		}
		defer s.Close()

		if key == "" {
			key = uuid.NewString()
		}

		result, err := eng.RecordAttempt(context.Background(), engine.RecordRequest{
			LearnerID:      learner,
			UnitID:         unit,
			ReferenceText:  text,
			AudioURL:       audio,
			Locale:         locale,
			Threshold:      threshold,
			IdempotencyKey: key,
		})
		if err != nil {
			return err
		}

		verdict := theme.Fail.Render("✗ below threshold")
		if result.Passed {
			verdict = theme.Pass.Render("✓ passed")
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s\n", theme.Title.Render(fmt.Sprintf("Attempt %d — %s / %s", result.AttemptNumber, learner, unit)))
		fmt.Fprintf(&b, "Score:     %.1f (threshold %.0f)  %s\n", result.OverallScore, result.Threshold, verdict)
		if result.FluencyScore != nil {
			fmt.Fprintf(&b, "Fluency:   %.1f\n", *result.FluencyScore)
		}
		if len(result.WeakLetters) > 0 {
			fmt.Fprintf(&b, "Letters:   %s\n", theme.Highlight.Render(strings.Join(result.WeakLetters, " ")))
		}
		if len(result.WeakPhonemes) > 0 {
			fmt.Fprintf(&b, "Phonemes:  %s\n", theme.Highlight.Render(strings.Join(result.WeakPhonemes, " ")))
		}
		fmt.Fprintf(&b, "%s", theme.Hint.Render("key "+key))

		fmt.Println(theme.Card.Render(b.String()))
		return nil
	},
}

func init() {
	recordCmd.Flags().String("learner", "", "Learner ID")
	recordCmd.Flags().String("unit", "", "Practice unit ID")
	recordCmd.Flags().String("text", "", "Reference text the learner read")
	recordCmd.Flags().String("audio", "", "URL of the recorded audio")
	recordCmd.Flags().String("locale", "en-US", "Locale of the reference text")
	recordCmd.Flags().Float64("threshold", evaluate.DefaultThreshold, "Passing threshold for this attempt (unset = configured default)")
	recordCmd.Flags().String("key", "", "Idempotency key (generated when empty)")
	recordCmd.Flags().Float64("score", 0, "Skip the vendor and record this score directly")

	_ = recordCmd.MarkFlagRequired("learner")
	_ = recordCmd.MarkFlagRequired("unit")
	_ = recordCmd.MarkFlagRequired("text")
}

// fixedScorer fakes a vendor response scoring every word of the text the
// same. Useful for demos and for backfilling scores from other systems.
func fixedScorer(text string, score float64) scorer.Scorer {
	fields := strings.Fields(text)
	words := make([]scorer.WordScore, 0, len(fields))
	for _, f := range fields {
		words = append(words, scorer.WordScore{Text: f, Score: score})
	}
	return &scorer.Fixed{Response: &scorer.Response{
		UtteranceScore: score,
		Words:          words,
	}}
}
