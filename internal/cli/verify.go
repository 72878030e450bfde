// internal/cli/verify.go
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/itDaru/toolcage/pkg/store"
)

var (
	verifyInput string
	verifySig   string
	verifyKey   string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify an exported catalog signature",
	Long: `Check the detached signature of an exported catalog against a public
key. The signature is expected next to the export with an .asc
extension unless --sig points elsewhere.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyInput, "input", "i", "", "exported catalog file")
	verifyCmd.Flags().StringVar(&verifySig, "sig", "", "detached signature (default <input>.asc)")
	verifyCmd.Flags().StringVar(&verifyKey, "key", "", "armored public key")
}

func runVerify(cmd *cobra.Command, args []string) error {
	if verifyInput == "" || verifyKey == "" {
		return fmt.Errorf("--input and --key are required")
	}

	sigPath := verifySig
	if sigPath == "" {
		sigPath = verifyInput + store.SignatureExt
	}

	if err := store.Verify(verifyInput, sigPath, verifyKey); err != nil {
		return err
	}

	fmt.Println(color.GreenString("Good signature on %s", verifyInput))
	return nil
}
