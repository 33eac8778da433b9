package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/posekit/resolver"
)

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	var (
		imagePath   string
		description string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the two-call pipeline and print the bone rotations",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, override, err := newSession(flags)
			if err != nil {
				return err
			}

			if _, err := session.Resolve(cmd.Context(), override); err != nil {
				ue := resolver.Describe(err)
				return fmt.Errorf("%s: %s", ue.Code, ue.Message)
			}

			est := session.EstimateVision(imagePath)
			fmt.Printf("Model %s, estimated total $%s\n",
				color.GreenString(string(session.ResolvedModel())),
				est.TotalUSD.StringFixed(6))

			p, err := session.Generate(cmd.Context(), imagePath, description)
			if err != nil {
				ue := resolver.Describe(err)
				return fmt.Errorf("%s: %s", ue.Code, ue.Message)
			}

			data, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return err
			}
			if outPath != "" {
				if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
					return err
				}
				fmt.Printf("Wrote %d bones to %s\n", len(p), outPath)
				return nil
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "photo of the pose")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "rough pose description")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the pose JSON here instead of stdout")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}
