package dump

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgavlin/wasmtypes/load"
	"github.com/pgavlin/wasmtypes/wasm"
)

func loadModule(dir, arg string) (*wasm.Module, error) {
	if dir == "" {
		return load.File(arg)
	}
	m, err := load.NewFSResolver(os.DirFS(dir)).Resolve(arg)
	if err != nil {
		return nil, fmt.Errorf("resolving %v in %v: %w", arg, dir, err)
	}
	return m, nil
}

func dumpText(w io.Writer, types []wasm.Type) error {
	for i, t := range types {
		if _, err := fmt.Fprintf(w, "(type %d %v)\n", i, t); err != nil {
			return err
		}
	}
	return nil
}

func Command() *cobra.Command {
	var dir string
	var csvOut bool
	var tableOut bool

	command := &cobra.Command{
		Use:   "dump [path to module or type section]",
		Short: "Dump the types of a WebAssembly module",
		Long: "Dump the type section of a WebAssembly module or of a bare type-section payload.\n" +
			"With --dir, the argument is a name resolved against the directory using the\n" +
			".wasm and .types extensions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}
			if csvOut && tableOut {
				return errors.New("--csv and --table are mutually exclusive")
			}

			mod, err := loadModule(dir, args[0])
			if err != nil {
				return err
			}
			var types []wasm.Type
			if mod.Types != nil {
				types = mod.Types.Entries
			}

			w := cmd.OutOrStdout()
			switch {
			case csvOut:
				return dumpCSV(w, types)
			case tableOut:
				return dumpTable(w, types)
			default:
				return dumpText(w, types)
			}
		},
	}

	command.Flags().StringVarP(&dir, "dir", "d", "", "resolve the argument as a module name in this directory")
	command.Flags().BoolVar(&csvOut, "csv", false, "dump types in CSV format")
	command.Flags().BoolVar(&tableOut, "table", false, "dump types as a table")

	return command
}
