package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Version information, populated via -ldflags at build time.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	evalExpr    string
	includeDirs []string
	defines     []string
	optimize    bool
	dumpFile    string
	noColor     bool
	showLegal   bool
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "linc",
	Short: "linc compiler and interpreter",
	Long: `linc is a small statically-typed, expression-oriented scripting
language. This tool drives its five-stage pipeline — lexer, preprocessor,
parser, binder, interpreter — plus an optional constant-folding pass.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			printVersion()
			os.Exit(0)
		}
		if showLegal {
			printLegalNotice()
			os.Exit(0)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading a file")
	rootCmd.PersistentFlags().StringArrayVarP(&includeDirs, "include", "I", nil, "additional #include search root (repeatable)")
	rootCmd.PersistentFlags().StringArrayVarP(&defines, "define", "D", nil, "synthesise a #define NAME=VALUE (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&optimize, "optimize", "O", false, "enable constant folding")
	rootCmd.PersistentFlags().StringVarP(&dumpFile, "dump-diagnostics", "L", "", "write diagnostics in the stable text-line format to file")
	rootCmd.PersistentFlags().BoolVarP(&noColor, "no-color", "a", false, "disable coloured diagnostic rendering")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version information and exit")
	rootCmd.PersistentFlags().BoolVarP(&showLegal, "legal", "C", false, "print the legal notice and exit")
}

// colorEnabled decides whether diagnostics render with ANSI highlighting:
// never when -a was passed, never when stderr isn't a terminal
// (go-isatty) — the core diag package stays terminal-agnostic, only the
// CLI queries the terminal.
func colorEnabled() bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func printVersion() {
	fmt.Printf("linc version %s\n", Version)
	fmt.Printf("Git Commit: %s\n", GitCommit)
	fmt.Printf("Build Date: %s\n", BuildDate)
}

func printLegalNotice() {
	fmt.Println(`linc - a small statically-typed, expression-oriented language
Copyright (c) the linc contributors.

This program is provided for educational and experimental use. See the
project's licence file for the full terms under which it is distributed.`)
}
