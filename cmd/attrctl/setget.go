package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/attrkit/attrkit/engine"
)

var (
	setGetHostKind string
	setGetValue    string
)

func init() {
	cmd := newSetGetCmd()
	cmd.Flags().StringVar(&setGetHostKind, "host", "communicator", "host kind: communicator, datatype, window, or instance")
	cmd.Flags().StringVar(&setGetValue, "value", "1", "native-pointer value to attach, as a decimal or 0x-prefixed integer")
	rootCmd.AddCommand(cmd)
}

func newSetGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-get",
		Short: "Register a keyval, attach a value, and read it back",
		Long: `The set-get command registers a keyval, attaches a native-pointer
value to a fresh host's attribute map, and immediately reads it back,
demonstrating a round trip through Set and Get.

Example:
  attrctl set-get --host datatype --value 0xdeadbeef`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetGet()
		},
	}
}

func runSetGet() error {
	kind, err := parseHostKind(setGetHostKind)
	if err != nil {
		return err
	}
	value, err := strconv.ParseUint(setGetValue, 0, 64)
	if err != nil {
		return err
	}

	sub := engine.NewSubsystem(nil)
	key, err := sub.CreateKeyval(kind, nil, nil, nil, nil)
	if err != nil {
		printError("%v\n", err)
		return err
	}

	host := &demoHost{handle: int(kind) + 1, kind: kind}
	attrs := engine.NewAttributeMap()
	if err := sub.Set(kind, host, attrs, key, engine.NewPtrCell(engine.Ptr(value)), false); err != nil {
		printError("%v\n", err)
		return err
	}

	cell, found, err := sub.Get(key, attrs)
	if err != nil {
		printError("%v\n", err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"key": key, "found": found, "value": cell.ReadPtr()})
	}
	printInfo("key %d: found=%v value=%#x\n", key, found, cell.ReadPtr())
	return nil
}
