// internal/cli/detect.go
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/itDaru/toolcage/pkg/manager"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect available package managers",
	Long:  `Probe for every supported package manager and report which ones respond on this system.`,
	Args:  cobra.NoArgs,
	RunE:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	fmt.Printf("Platform: %s\n\n", sys.Platform())

	av := sys.Detect()

	fmt.Printf("Package managers:\n")
	for _, id := range manager.All() {
		status := color.RedString("not found")
		if av[id] {
			status = color.GreenString("found")
		}
		fmt.Printf("  %-8s %s\n", id, status)
	}

	fmt.Printf("\n%d of %d available\n", len(av.Available()), len(manager.All()))

	return nil
}
