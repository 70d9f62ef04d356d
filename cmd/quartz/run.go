package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"quartz/internal/driver"
)

var runCmd = &cobra.Command{
	Use:     "run [flags] [file.qz]",
	Aliases: []string{"interpret"},
	Short:   "Interpret a quartz source file",
	Long: `Run checks a source file through the front end for immediate execution.
Without an argument the entry file comes from quartz.toml in the base directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInterpret,
}

func runInterpret(cmd *cobra.Command, args []string) error {
	setup, err := resolveSetup(cmd, args)
	if err != nil {
		return err
	}

	s, err := driver.NewSession(setup.baseDir, setup.input, setup.opts)
	if err != nil {
		return err
	}

	interpErr := s.Interpret(cmd.Context())
	reportDiagnostics(cmd, s)
	reportTimings(setup.opts.Timer)

	if interpErr != nil {
		if errors.Is(interpErr, driver.ErrLexFailed) {
			return fmt.Errorf("run of %s failed: %w", setup.input, interpErr)
		}
		return interpErr
	}
	return nil
}
