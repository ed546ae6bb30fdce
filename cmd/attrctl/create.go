package main

import (
	"github.com/spf13/cobra"

	"github.com/attrkit/attrkit/engine"
)

var createHostKind string

func init() {
	cmd := newCreateCmd()
	cmd.Flags().StringVar(&createHostKind, "host", "communicator", "host kind: communicator, datatype, window, or instance")
	rootCmd.AddCommand(cmd)
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-keyval",
		Short: "Register a keyval for a host kind and print its key",
		Long: `The create-keyval command registers a single keyval for the given host
kind, using callbacks that print a line to stdout under --verbose when
invoked, and reports the key it was assigned.

Example:
  attrctl create-keyval --host window`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate()
		},
	}
}

func runCreate() error {
	kind, err := parseHostKind(createHostKind)
	if err != nil {
		return err
	}

	sub := engine.NewSubsystem(nil)
	key, err := sub.CreateKeyval(kind,
		func(oldHost, newHost engine.Host, key int, extraState any, in engine.Ptr) (engine.Ptr, bool, error) {
			printVerbose("copy callback: key=%d value=%#x\n", key, in)
			return in, true, nil
		},
		func(host engine.Host, key int, extraState any, value engine.Ptr) error {
			printVerbose("delete callback: key=%d value=%#x\n", key, value)
			return nil
		},
		nil, nil)
	if err != nil {
		printError("%v\n", err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"host_kind": kind.String(), "key": key})
	}
	printInfo("created keyval %d for %s\n", key, kind)
	return nil
}
