package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/specbug/texbridge/internal/bridge"
)

// newRootCmd builds the command tree. Results are written to out as
// single-line JSON; out is a parameter so tests can capture the output.
func newRootCmd(out io.Writer) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "texbridge",
		Short: "Formula recognition bridge for desktop capture apps",
		Long: `texbridge converts an image of mathematical text into LaTeX and prints
the outcome as a single JSON object on stdout. It is designed to be spawned
once per recognition request by a desktop application, which parses the JSON
and branches on the presence of "error" versus "success".`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		// Unmatched first arguments fall through to this Run so the
		// outcome is still a JSON result rather than a usage error.
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				emit(out, bridge.Errorf("No command specified"))
				return
			}
			emit(out, bridge.Errorf("Unknown command: %s", args[0]))
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the settings file (default: config.yaml beside the binary)")

	clipboardCmd := &cobra.Command{
		Use:   "clipboard",
		Short: "Recognize the image on the system clipboard",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			emit(out, bridge.New(configPath).Clipboard())
		},
	}

	fileCmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Recognize the image stored at <path>",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// "file" with no path is an unresolvable command, reported
			// the same way the dispatcher reports unknown ones.
			if len(args) < 1 {
				emit(out, bridge.Errorf("Unknown command: file"))
				return
			}
			emit(out, bridge.New(configPath).File(args[0]))
		},
	}

	root.AddCommand(clipboardCmd, fileCmd)
	return root
}

// Execute runs the CLI. Every failure, including argument parsing, ends up
// as an error result on out; the process never exits non-zero.
func Execute(out io.Writer, args []string) {
	root := newRootCmd(out)
	if args == nil {
		// cobra treats nil args as "use os.Args"
		args = []string{}
	}
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		emit(out, bridge.Failure(err))
	}
}

func emit(out io.Writer, res *bridge.Result) {
	if err := res.Emit(out); err != nil {
		log.Printf("failed to write result: %v", err)
	}
}
