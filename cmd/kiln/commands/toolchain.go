package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newToolchainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toolchain",
		Short: "Detect and describe the active toolchain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tc, err := c.app.Toolchain(cmd.Context())
			if err != nil {
				return err
			}

			desc := tc.Descriptor()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "kind: %s\n", tc.Kind())
			_, _ = fmt.Fprintf(out, "cc:   %s\n", desc.CC)
			if desc.CXX != "" && desc.CXX != desc.CC {
				_, _ = fmt.Fprintf(out, "cxx:  %s\n", desc.CXX)
			}
			if banner, err := tc.Banner(cmd.Context()); err == nil && banner != "" {
				_, _ = fmt.Fprintf(out, "id:   %s\n", banner)
			}
			return nil
		},
	}
}
