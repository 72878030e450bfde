// internal/cli/save.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the package catalog",
	Long:  `Scan every available package manager and write the catalog to the working directory.`,
	Args:  cobra.NoArgs,
	RunE:  runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	cat, err := sys.Scan()
	if err != nil {
		return err
	}

	path, err := sys.Save(cat)
	if err != nil {
		return err
	}

	fmt.Printf("Package list saved to %s\n", path)
	return nil
}
