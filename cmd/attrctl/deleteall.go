package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/attrkit/attrkit/engine"
)

var deleteAllCount int

func init() {
	cmd := newDeleteAllCmd()
	cmd.Flags().IntVar(&deleteAllCount, "count", 3, "number of keyvals to attach before tearing down")
	rootCmd.AddCommand(cmd)
}

func newDeleteAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-all",
		Short: "Attach N keyvals to a communicator and tear them all down",
		Long: `The delete-all command attaches --count keyvals to a fake
communicator in order, then tears the whole map down at once and prints
the order in which the delete callbacks fired — last attached, first
deleted.

Example:
  attrctl delete-all --count 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteAll()
		},
	}
}

func runDeleteAll() error {
	sub := engine.NewSubsystem(nil)
	host := &demoHost{handle: 1, kind: engine.Communicator}
	attrs := engine.NewAttributeMap()

	var order []int
	for i := 0; i < deleteAllCount; i++ {
		tag := i
		key, err := sub.CreateKeyval(engine.Communicator, nil,
			func(host engine.Host, key int, extraState any, value engine.Ptr) error {
				order = append(order, tag)
				return nil
			}, nil, nil)
		if err != nil {
			printError("%v\n", err)
			return err
		}
		if err := sub.Set(engine.Communicator, host, attrs, key, engine.NewPtrCell(engine.Ptr(tag)), false); err != nil {
			printError("%v\n", err)
			return err
		}
	}

	if err := sub.DeleteAll(engine.Communicator, host, attrs); err != nil {
		printError("%v\n", err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"teardown_order": order})
	}
	printInfo("teardown order (attach index): ")
	for i, tag := range order {
		if i > 0 {
			printInfo(", ")
		}
		printInfo(strconv.Itoa(tag))
	}
	printInfo("\n")
	return nil
}
