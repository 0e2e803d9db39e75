package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lpereira/tabitens/internal/extract"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "List the document's tables and how each one classifies",
	Long: `Inspect prints every table found in the input with its header, row count
and whether it classifies as an "Itens" table. Useful when an extraction
comes back empty and you want to see what the reader actually found.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	document, err := readDocument(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d table(s)\n", document.Name, len(document.Tables))

	targets := 0
	for i, t := range document.Tables {
		mark := " "
		if extract.IsItensTable(t) {
			mark = "*"
			targets++
		}
		header := "(empty)"
		if h := t.Header(); h != nil {
			cells := make([]string, len(h))
			for j, c := range h {
				cells[j] = extract.Norm(c)
			}
			header = strings.Join(cells, " | ")
		}
		fmt.Fprintf(out, "%s T%d  rows=%-4d header: %s\n", mark, i+1, len(t.Rows), header)
	}

	fmt.Fprintf(out, "%d table(s) classified as 'Itens'\n", targets)
	return nil
}
