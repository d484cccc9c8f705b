package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/splitter/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		renderer := styles.NewVersionRenderer(styles.NewTheme(nil))
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderShort(buildInfo))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print only the version")
}
