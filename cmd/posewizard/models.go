package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/posekit/resolver"
)

func newModelsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Resolve and show the working model for the chosen mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, mode, override, err := newSession(flags)
			if err != nil {
				return err
			}

			fmt.Printf("Mode: %s — %s\n", color.CyanString(mode.Name), mode.Description)
			fmt.Printf("Priority: %v\n", mode.Priority)

			id, err := session.Resolve(cmd.Context(), override)
			if err != nil {
				ue := resolver.Describe(err)
				return fmt.Errorf("%s: %s", ue.Code, ue.Message)
			}

			fmt.Printf("Resolved: %s\n", color.GreenString(string(id)))
			return nil
		},
	}
}
