package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pgavlin/wasmtypes/cmd/wasmtypes/dump"
	"github.com/pgavlin/wasmtypes/cmd/wasmtypes/roundtrip"
	"github.com/pgavlin/wasmtypes/cmd/wasmtypes/tags"
	"github.com/pgavlin/wasmtypes/wasm"
)

var version = "<unknown>"

func configureCLI() *cobra.Command {
	var verbose bool
	var logger *zap.Logger

	rootCommand := &cobra.Command{
		Use:           "wasmtypes",
		Short:         "WebAssembly type section tools",
		Long:          "wasmtypes - inspect and round-trip WebAssembly type sections (" + wasm.Dialect + " dialect)",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = l
			wasm.SetLogger(l)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				// Syncing stderr fails on some platforms; the records are already written.
				_ = logger.Sync()
				wasm.SetLogger(nil)
			}
			return nil
		},
	}

	rootCommand.AddCommand(dump.Command())
	rootCommand.AddCommand(roundtrip.Command())
	rootCommand.AddCommand(tags.Command())

	rootCommand.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log section decoding to stderr")

	return rootCommand
}

func main() {
	rootCommand := configureCLI()

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
