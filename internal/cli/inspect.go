// internal/cli/inspect.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itDaru/toolcage/pkg/magic"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Identify a file by its magic number",
	Long: `Read the leading bytes of a file and report the detected type.
Debian and RPM packages additionally get their control metadata
printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	info, err := magic.Identify(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("File Path: %s\n", info.Path)
	fmt.Printf("Magic Bytes (Hex): %s\n", magic.HexString(info.Header))
	fmt.Printf("Detected File Type: %s\n", info.Type)

	var meta *magic.Meta
	switch info.Type {
	case magic.TypeDeb:
		meta, err = magic.InspectDeb(info.Path)
	case magic.TypeRPM:
		meta, err = magic.InspectRPM(info.Path)
	default:
		return nil
	}
	if err != nil {
		log.Debugf("package metadata unavailable: %v", err)
		return nil
	}

	fmt.Printf("\nPackage: %s\n", meta.Name)
	fmt.Printf("Version: %s\n", meta.Version)
	fmt.Printf("Architecture: %s\n", meta.Architecture)
	if meta.Description != "" {
		fmt.Printf("Description: %s\n", meta.Description)
	}
	return nil
}
