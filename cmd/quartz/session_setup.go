package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quartz/internal/diagfmt"
	"quartz/internal/driver"
	"quartz/internal/observ"
	"quartz/internal/project"
	"quartz/internal/scan"
)

// sessionSetup is everything a command needs to construct and report on a
// session: the resolved input, the driver options, and the output identifier.
type sessionSetup struct {
	baseDir string
	input   string
	output  string
	opts    driver.Options
}

// resolveSetup merges persistent flags with the optional quartz.toml in the
// base directory. Flags that were set explicitly win over manifest values;
// the input argument, when given, wins over the manifest entry file.
func resolveSetup(cmd *cobra.Command, args []string) (*sessionSetup, error) {
	flags := cmd.Root().PersistentFlags()

	baseDir, err := flags.GetString("base-dir")
	if err != nil {
		return nil, err
	}

	setup := &sessionSetup{baseDir: baseDir}

	manifest, found, err := project.Find(baseDir)
	if err != nil {
		return nil, err
	}
	if found {
		setup.input = manifest.Input
		setup.output = manifest.Output
		setup.opts.MaxDiagnostics = manifest.MaxDiagnostics
		setup.opts.Jobs = manifest.Jobs
		if manifest.Sequential {
			setup.opts.Mode = scan.Sequential
		} else {
			setup.opts.Mode = scan.Parallel
		}
	} else {
		setup.opts.Mode = scan.Parallel
	}

	if len(args) > 0 {
		setup.input = args[0]
	}
	if setup.input == "" {
		return nil, fmt.Errorf("no input file: pass one as an argument or set 'input' in %s", project.ManifestName)
	}

	if flags.Changed("max-diagnostics") {
		setup.opts.MaxDiagnostics, _ = flags.GetInt("max-diagnostics")
	}
	if flags.Changed("jobs") {
		setup.opts.Jobs, _ = flags.GetInt("jobs")
	}
	if seq, _ := flags.GetBool("sequential"); seq {
		setup.opts.Mode = scan.Sequential
	}

	if noCache, _ := flags.GetBool("no-cache"); !noCache {
		// Cache failures only disable caching, never the build.
		if cache, err := driver.OpenTokenCache("quartz"); err == nil {
			setup.opts.Cache = cache
		}
	}

	if timings, _ := flags.GetBool("timings"); timings {
		setup.opts.Timer = observ.NewTimer()
	}

	return setup, nil
}

// reportDiagnostics pretty-prints the session's bag to stderr.
func reportDiagnostics(cmd *cobra.Command, s *driver.Session) {
	bag := s.Bag()
	if bag.Len() == 0 {
		return
	}
	diagfmt.Pretty(os.Stderr, bag, s.FileSet(), diagfmt.PrettyOpts{
		Color:      useColor(cmd, os.Stderr),
		ShowSource: true,
		ShowNotes:  true,
	})
}

func reportTimings(timer *observ.Timer) {
	if timer == nil {
		return
	}
	fmt.Fprint(os.Stderr, timer.Summary())
}

// printSummary writes the end-of-run line unless --quiet is set.
func printSummary(cmd *cobra.Command, res *driver.CompileResult) {
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); quiet {
		return
	}
	if res.File != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tokens, %d diagnostics\n",
			res.File.Path, len(res.Tokens), res.Bag.Len())
	}
}
