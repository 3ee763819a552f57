package tags

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jszwec/csvutil"
	"github.com/spf13/cobra"

	"github.com/pgavlin/wasmtypes/wasm"
)

func writeText(w io.Writer, tags []wasm.Tag) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "# dialect: %v\n", wasm.Dialect)
	fmt.Fprintln(tw, "LEVEL\tNAME\tVALUE\tBYTE")
	for _, t := range tags {
		fmt.Fprintf(tw, "%v\t%v\t%d\t%#02x\n", t.Level, t.Name, t.Value, t.Byte)
	}
	return tw.Flush()
}

func Command() *cobra.Command {
	var csvOut bool

	command := &cobra.Command{
		Use:   "tags",
		Short: "List recognized tag bytes",
		Long:  "List every tag byte recognized by the active dialect, grouped by dispatch level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := wasm.Tags()
			w := cmd.OutOrStdout()
			if !csvOut {
				return writeText(w, tags)
			}
			b, err := csvutil.Marshal(tags)
			if err != nil {
				return err
			}
			_, err = w.Write(b)
			return err
		},
	}

	command.Flags().BoolVar(&csvOut, "csv", false, "list tags in CSV format")

	return command
}
