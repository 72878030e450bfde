// internal/cli/menu.go
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	menuDetect  = "Detect package managers"
	menuList    = "List installed packages"
	menuSave    = "Save package list"
	menuRestore = "Restore package list"
	menuDiff    = "Show catalog diff"
	menuQuit    = "Quit"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive() {
			return fmt.Errorf("the menu requires a terminal")
		}
		return runMenu(cmd, args)
	},
}

// interactive reports whether stdin and stdout are both terminals.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runMenu loops a select prompt until the user quits or aborts. Action
// errors are printed and the menu comes back, matching shell usage where
// one failed step should not end the session.
func runMenu(cmd *cobra.Command, args []string) error {
	for {
		choice := menuDetect
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("toolcage").
					Options(
						huh.NewOption(menuDetect, menuDetect),
						huh.NewOption(menuList, menuList),
						huh.NewOption(menuSave, menuSave),
						huh.NewOption(menuRestore, menuRestore),
						huh.NewOption(menuDiff, menuDiff),
						huh.NewOption(menuQuit, menuQuit),
					).
					Value(&choice),
			),
		)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		var err error
		switch choice {
		case menuDetect:
			err = runDetect(cmd, nil)
		case menuList:
			err = runList(cmd, nil)
		case menuSave:
			err = runSave(cmd, nil)
		case menuRestore:
			err = runRestore(cmd, nil)
		case menuDiff:
			err = runDiff(cmd, nil)
		case menuQuit:
			return nil
		}
		if err != nil {
			fmt.Println(color.RedString("Error: %v", err))
		}
		fmt.Println()
	}
}
