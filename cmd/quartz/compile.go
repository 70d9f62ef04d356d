package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"quartz/internal/driver"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] [file.qz]",
	Short: "Compile a quartz source file",
	Long: `Compile runs a source file through the front end. Without an argument
the entry file comes from quartz.toml in the base directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringP("output", "o", "", "output identifier (overrides the manifest)")
}

func runCompile(cmd *cobra.Command, args []string) error {
	setup, err := resolveSetup(cmd, args)
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		setup.output = out
	}

	s, err := driver.NewSession(setup.baseDir, setup.input, setup.opts)
	if err != nil {
		return err
	}
	s.OutputID = setup.output

	res, compileErr := s.Compile(cmd.Context())
	if res != nil {
		reportDiagnostics(cmd, s)
		reportTimings(setup.opts.Timer)
		printSummary(cmd, res)
	}
	if compileErr != nil {
		if errors.Is(compileErr, driver.ErrLexFailed) {
			return fmt.Errorf("compilation of %s failed: %w", setup.input, compileErr)
		}
		return compileErr
	}
	return nil
}
