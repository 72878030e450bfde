// internal/cli/diff.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itDaru/toolcage"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare the saved catalog with the system",
	Long:  `Scan the system and print a unified diff against the saved catalog.`,
	Args:  cobra.NoArgs,
	RunE:  runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	out, err := sys.Diff()
	if errors.Is(err, toolcage.ErrNoCatalog) {
		fmt.Println("package_list.json not found. Please save a package list first.")
		return nil
	}
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println("Saved catalog matches the installed packages.")
		return nil
	}

	fmt.Print(out)
	return nil
}
