package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"quartz/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "quartz",
	Short:         "Quartz language compiler and toolchain",
	Long:          `Quartz is a programming language compiler with diagnostic tools`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Int("jobs", 0, "scan worker limit (0 = number of CPUs)")
	rootCmd.PersistentFlags().Bool("sequential", false, "scan lines sequentially instead of in parallel")
	rootCmd.PersistentFlags().String("base-dir", ".", "directory relative paths resolve against")
	rootCmd.PersistentFlags().Bool("no-cache", false, "disable the on-disk token cache")

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("error:", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color tri-state against the stream. Forcing "on"
// also overrides the library's TTY sniffing.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
