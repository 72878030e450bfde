// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/itDaru/toolcage"
	"github.com/itDaru/toolcage/pkg/core"
)

var (
	cfgFile string
	workDir string
	elevate string
	verbose bool

	config *core.Config
	sys    *toolcage.System
	log    = logrus.New()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "toolcage",
	Short: "System Package Catalog",
	Long: `toolcage - System Package Catalog

Detects the package managers present on a host, records the packages
they manage in a portable catalog, and reinstalls that catalog on
another machine. Without a subcommand it opens an interactive menu
when run on a terminal.`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive() {
			return cmd.Help()
		}
		return runMenu(cmd, args)
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/toolcage/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&workDir, "workdir", "", "directory holding the package catalog")
	rootCmd.PersistentFlags().StringVar(&elevate, "elevate", "", "elevation wrapper for system installs (default sudo)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if workDir != "" {
		config.WorkDir = workDir
	}
	if elevate != "" {
		config.Elevate = elevate
	}
	if verbose {
		config.Debug = true
	}

	log.SetOutput(os.Stderr)
	if config.Debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	sys = toolcage.New(config, log)
}
