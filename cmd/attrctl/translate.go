package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/attrkit/attrkit/engine"
)

var (
	translateWriteMode string
	translateValue     string
)

func init() {
	cmd := newTranslateCmd()
	cmd.Flags().StringVar(&translateWriteMode, "write", "ptr", "write representation: ptr, int, fint, or aint")
	cmd.Flags().StringVar(&translateValue, "value", "1", "value to write, as a decimal or 0x-prefixed integer")
	rootCmd.AddCommand(cmd)
}

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate",
		Short: "Write a value in one representation and read it back as ptr, fint and aint",
		Long: `The translate command writes a value into a bare ValueCell using one
of the four write representations and prints how that same cell reads
back as a pointer, a narrow Fortran integer, and a wide Fortran address
integer — a direct look at the translation rules the engine applies
between a keyval's copy/delete callback convention and whatever
representation another caller reads it in.

Example:
  attrctl translate --write aint --value 0x100000029`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate()
		},
	}
}

func runTranslate() error {
	raw, err := strconv.ParseInt(translateValue, 0, 64)
	if err != nil {
		return err
	}

	var cell *engine.ValueCell
	switch translateWriteMode {
	case "ptr":
		cell = engine.NewPtrCell(engine.Ptr(raw))
	case "int":
		cell = engine.NewIntCell(engine.Int(raw))
	case "fint":
		cell = engine.NewFintCell(engine.Fint(raw))
	case "aint":
		cell = engine.NewAintCell(engine.Aint(raw))
	default:
		printError("unknown write mode %q (want ptr, int, fint, or aint)\n", translateWriteMode)
		return nil
	}

	if jsonOut {
		return printJSON(map[string]any{
			"write_mode": cell.WriteMode().String(),
			"ptr":        cell.ReadPtr(),
			"fint":       cell.ReadFint(),
			"aint":       cell.ReadAint(),
		})
	}
	printInfo("write_mode=%s\n", cell.WriteMode())
	printInfo("  as ptr:  %#x\n", cell.ReadPtr())
	printInfo("  as fint: %#x\n", cell.ReadFint())
	printInfo("  as aint: %#x\n", cell.ReadAint())
	return nil
}
