package dump

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jszwec/csvutil"

	"github.com/pgavlin/wasmtypes/wasm"
)

type row struct {
	Index   int    `csv:"index"`
	Kind    string `csv:"kind"`
	Params  string `csv:"params"`
	Results string `csv:"results"`
	Fields  string `csv:"fields"`
}

func (r row) cells() []string {
	return []string{strconv.Itoa(r.Index), r.Kind, r.Params, r.Results, r.Fields}
}

var headers = []string{"index", "kind", "params", "results", "fields"}

func joinValues(vs []wasm.ValueType) string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.String()
	}
	return strings.Join(names, " ")
}

func describeFunction(r *row, f *wasm.FunctionType) {
	r.Kind = "func"
	r.Params = joinValues(f.Params())
	if ret, ok := f.ReturnType(); ok {
		r.Results = ret.String()
	}
}

func rows(types []wasm.Type) []row {
	rs := make([]row, len(types))
	for i, t := range types {
		rs[i] = describe(i, t)
	}
	return rs
}

func dumpCSV(w io.Writer, types []wasm.Type) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	encoder := csvutil.NewEncoder(csvWriter)
	if len(types) == 0 {
		return encoder.EncodeHeader(row{})
	}
	for _, r := range rows(types) {
		if err := encoder.Encode(&r); err != nil {
			return err
		}
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))
)

func dumpTable(w io.Writer, types []wasm.Type) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
	for _, r := range rows(types) {
		t.Row(r.cells()...)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
