package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/marcus/dropdown/internal/demo"
)

var (
	version string
	baseDir string
	mouse   = mouseAuto
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// mouseMode is the --mouse flag value. Mouse reporting takes over
// terminal text selection, so it can be forced off for a run.
type mouseMode string

const (
	mouseAuto mouseMode = "auto"
	mouseOn   mouseMode = "on"
	mouseOff  mouseMode = "off"
)

var _ pflag.Value = (*mouseMode)(nil)

func (m *mouseMode) String() string { return string(*m) }

func (m *mouseMode) Set(v string) error {
	switch mouseMode(v) {
	case mouseAuto, mouseOn, mouseOff:
		*m = mouseMode(v)
		return nil
	}
	return fmt.Errorf("must be one of auto, on, off")
}

func (m *mouseMode) Type() string { return "mode" }

func (m mouseMode) demoMode() demo.MouseMode {
	switch m {
	case mouseOn:
		return demo.MouseOn
	case mouseOff:
		return demo.MouseOff
	}
	return demo.MouseAuto
}

var rootCmd = &cobra.Command{
	Use:   "dropdown",
	Short: "Interactive dropdown widget showcase",
	Long: `dropdown - An interactive showcase of the dropdown widget library.

A deployment-settings form with single-select, filtered, multi-select,
and controlled dropdowns over a scrollable page. Theming lives in
.dropdown/config.json under the working directory and edits to that
file are picked up live.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("dropdown needs an interactive terminal")
		}
		return demo.Run(getBaseDir(), mouse.demoMode())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	rootCmd.Flags().Var(&mouse, "mouse", "mouse support (auto, on, off)")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for the config
func getBaseDir() string {
	return baseDir
}
