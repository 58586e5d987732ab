package repl

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/toaddb/toaddb/internal/toaddb/styled"
)

// cmdTables lists the tables of the database through the manager's own
// fetch operation against sqlite_master.
func cmdTables(r *Repl) {
	rows, err := r.mgr.FetchData(r.ctx, "sqlite_master", "type = 'table'")
	if err != nil {
		printError(err)
		return
	}

	nameIdx := -1
	for i, col := range rows.Columns {
		if col == "name" {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		printError(fmt.Errorf("unexpected sqlite_master layout"))
		return
	}

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Table"})
	for _, value := range rows.Values {
		tw.AppendRow(table.Row{value[nameIdx]})
	}

	fmt.Println(tw.Render())
}
