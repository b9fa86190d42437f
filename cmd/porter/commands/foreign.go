package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newForeignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foreign",
		Short: "List packages not supplied by the official repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			devel, _ := cmd.Flags().GetBool("devel")
			if devel {
				return c.app.ListDevel(cmd.Context())
			}
			return c.app.ListForeign(cmd.Context())
		},
	}
	cmd.Flags().BoolP("devel", "d", false, "Only list packages tracking a moving upstream")
	return cmd
}
