package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/attrkit/attrkit/engine"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "attrctl",
	Short: "Drive an in-process attribute caching engine from the command line",
	Long: `attrctl exercises the attribute caching engine against fake host
objects. Each subcommand builds its own subsystem and host, so no state
carries over from one invocation to the next. It is a demonstration
and debugging tool, not a library entry point.`,
	Version: "0.1.0",
}

// demoHost is the fake Host every subcommand builds for itself; each
// subcommand runs as its own process invocation with its own
// Subsystem, so there is no shared session state to guard here.
type demoHost struct {
	handle int
	kind   engine.HostKind
}

func (h *demoHost) BackHandle() int       { return h.handle }
func (h *demoHost) Kind() engine.HostKind { return h.kind }

func parseHostKind(s string) (engine.HostKind, error) {
	switch s {
	case "communicator", "comm":
		return engine.Communicator, nil
	case "datatype", "type":
		return engine.Datatype, nil
	case "window", "win":
		return engine.Window, nil
	case "instance":
		return engine.Instance, nil
	default:
		return 0, fmt.Errorf("unknown host kind %q (want communicator, datatype, window, or instance)", s)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
