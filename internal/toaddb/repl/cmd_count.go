package repl

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/toaddb/toaddb/internal/toaddb/styled"
	"github.com/toaddb/toaddb/internal/util/numutil"
)

// cmdCount counts the rows of a table. The manager only fetches whole
// tables, so the count is taken from the materialized result.
func cmdCount(r *Repl, input string) {
	args := strings.Fields(input)
	if len(args) != 2 {
		fmt.Println("Usage: .count [table_name]")
		return
	}

	rows, err := r.mgr.FetchData(r.ctx, args[1], "")
	if err != nil {
		printError(err)
		return
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Table", "Rows"})
	tw.AppendRow(table.Row{args[1], numutil.IntWithCommas(int64(len(rows.Values)))})
	fmt.Println(tw.Render())
}
