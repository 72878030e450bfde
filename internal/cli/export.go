// internal/cli/export.go
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/itDaru/toolcage"
)

var (
	exportOutput  string
	exportSignKey string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the saved catalog to a file",
	Long: `Write the saved catalog to a portable file. A .gz or .xz extension
selects the compression; any other extension writes plain JSON.
With --sign-key the export gains a detached armored signature next
to it.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "destination path (.json, .gz or .xz)")
	exportCmd.Flags().StringVar(&exportSignKey, "sign-key", "", "armored private key for a detached signature")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportOutput == "" {
		return fmt.Errorf("--output is required")
	}

	var passphrase string
	if exportSignKey != "" {
		pw, err := promptPassphrase()
		if err != nil {
			return err
		}
		passphrase = pw
	}

	sigPath, err := sys.Export(exportOutput, exportSignKey, passphrase)
	if errors.Is(err, toolcage.ErrNoCatalog) {
		fmt.Println("package_list.json not found. Please save a package list first.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Catalog exported to %s\n", exportOutput)
	if sigPath != "" {
		fmt.Printf("Signature written to %s\n", sigPath)
	}
	return nil
}

// promptPassphrase reads the signing key passphrase without echo. Off a
// terminal it returns empty, which unlocks only unprotected keys.
func promptPassphrase() (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}
	fmt.Fprint(os.Stderr, "Key passphrase (empty for none): ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(pw), nil
}
