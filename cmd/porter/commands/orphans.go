package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newOrphansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orphans",
		Short: "List packages installed as a dependency and required by nothing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			remove, _ := cmd.Flags().GetBool("remove")
			recursive, _ := cmd.Flags().GetBool("recursive")
			if remove {
				return c.app.RemoveOrphans(cmd.Context(), recursive)
			}
			return c.app.ListOrphans(cmd.Context())
		},
	}
	cmd.Flags().BoolP("remove", "r", false, "Remove the orphaned packages")
	cmd.Flags().BoolP("recursive", "s", false, "Also remove dependencies not required elsewhere")
	return cmd
}
