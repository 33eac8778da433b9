package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/posekit/estimate"
	"github.com/randalmurphal/posekit/resolver"
)

func newEstimateCmd(flags *rootFlags) *cobra.Command {
	var (
		imagePath   string
		description string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Show what a run will cost before committing to it",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, override, err := newSession(flags)
			if err != nil {
				return err
			}

			if _, err := session.Resolve(cmd.Context(), override); err != nil {
				ue := resolver.Describe(err)
				return fmt.Errorf("%s: %s", ue.Code, ue.Message)
			}
			fmt.Printf("Model: %s\n\n", color.GreenString(string(session.ResolvedModel())))

			printEstimate("Vision step", session.EstimateVision(imagePath))
			printEstimate("Pose step", session.EstimateText("", description))
			return nil
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "photo to estimate against")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "rough pose description")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}

func printEstimate(label string, est estimate.Estimate) {
	fmt.Println(color.CyanString(label))
	fmt.Printf("  input tokens:  %d\n", est.InputTokens)
	fmt.Printf("  output tokens: %d (assumed)\n", est.OutputTokens)
	if est.TotalUSD.IsZero() && est.InputUSD.IsZero() {
		fmt.Printf("  cost: %s\n", color.YellowString("no rates available"))
		return
	}
	fmt.Printf("  input:  $%s\n", est.InputUSD.StringFixed(6))
	fmt.Printf("  output: $%s\n", est.OutputUSD.StringFixed(6))
	fmt.Printf("  total:  $%s\n", color.GreenString(est.TotalUSD.StringFixed(6)))
}
