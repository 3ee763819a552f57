package roundtrip

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgavlin/wasmtypes/load"
	"github.com/pgavlin/wasmtypes/wasm"
)

// MismatchError reports the first offset at which re-encoded bytes differ
// from their source.
type MismatchError struct {
	Offset int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("re-encoded bytes differ from input at offset %#x", e.Offset)
}

func isModule(b []byte) bool {
	return len(b) >= 4 && binary.LittleEndian.Uint32(b) == wasm.Magic
}

// Reencode decodes b as a module or bare type section and encodes it again
// in the same form.
func Reencode(b []byte) ([]byte, error) {
	m, err := load.Module(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if isModule(b) {
		err = wasm.EncodeModule(&buf, m)
	} else {
		err = wasm.EncodeTypeSection(&buf, m.Types.Entries)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Compare returns a *MismatchError if got differs from want.
func Compare(want, got []byte) error {
	n := len(want)
	if len(got) < n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		if want[i] != got[i] {
			return &MismatchError{Offset: i}
		}
	}
	if len(want) != len(got) {
		return &MismatchError{Offset: n}
	}
	return nil
}

func Command() *cobra.Command {
	var outFile string

	command := &cobra.Command{
		Use:   "roundtrip [path to module or type section]",
		Short: "Decode and re-encode a module",
		Long:  "Decode a module or bare type section, encode it again, and report whether the bytes are identical",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			out, err := Reencode(b)
			if err != nil {
				return fmt.Errorf("decoding %v: %w", args[0], err)
			}
			if outFile != "" {
				if err := os.WriteFile(outFile, out, 0o644); err != nil {
					return err
				}
			}
			if err := Compare(b, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v: %d bytes identical\n", args[0], len(b))
			return nil
		},
	}

	command.Flags().StringVarP(&outFile, "out", "o", "", "write the re-encoded bytes to this path")

	return command
}
