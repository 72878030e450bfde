// internal/cli/restore.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/itDaru/toolcage"
)

var restoreFile string

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Reinstall the saved package catalog",
	Long: `Load the saved catalog and install every package listed for an
available manager. Packages already present are reported, not
reinstalled.`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func init() {
	restoreCmd.Flags().StringVarP(&restoreFile, "file", "f", "", "restore from an exported catalog file")
}

func runRestore(cmd *cobra.Command, args []string) error {
	var (
		rep *toolcage.Report
		err error
	)
	if restoreFile != "" {
		rep, err = sys.RestoreFrom(restoreFile)
	} else {
		rep, err = sys.Restore()
	}
	if errors.Is(err, toolcage.ErrNoCatalog) {
		fmt.Println("package_list.json not found. Please save a package list first.")
		return nil
	}
	if err != nil {
		return err
	}

	printSummary(os.Stdout, rep)
	return nil
}

func printSummary(w io.Writer, rep *toolcage.Report) {
	fmt.Fprintln(w, "--- Installation Summary ---")

	if len(rep.AlreadyInstalled) > 0 {
		fmt.Fprintln(w, color.YellowString("Already Installed Packages:"))
		for _, ref := range rep.AlreadyInstalled {
			fmt.Fprintf(w, "  - %s\n", ref)
		}
	}
	if len(rep.NewlyInstalled) > 0 {
		fmt.Fprintln(w, color.GreenString("Successfully Installed Packages:"))
		for _, ref := range rep.NewlyInstalled {
			fmt.Fprintf(w, "  - %s\n", ref)
		}
	}
	if len(rep.Failed) > 0 {
		fmt.Fprintln(w, color.RedString("Failed to Install Packages:"))
		for _, ref := range rep.Failed {
			fmt.Fprintf(w, "  - %s\n", ref)
		}
	}
	if len(rep.NewlyInstalled) == 0 && len(rep.Failed) == 0 {
		fmt.Fprintln(w, "No new packages were installed.")
	}
}
