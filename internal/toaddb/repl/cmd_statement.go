package repl

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/toaddb/toaddb/internal/manager"
	"github.com/toaddb/toaddb/internal/toaddb/styled"
)

// cmdStatement parses and executes a create, insert, or fetch statement
// and renders the outcome.
func cmdStatement(r *Repl, input string) {
	stmt, err := parseStatement(input)
	if err != nil {
		printError(err)
		return
	}

	switch stmt.kind {
	case stmtCreate:
		if err := r.mgr.CreateTable(r.ctx, stmt.table, stmt.columns); err != nil {
			printError(err)
			return
		}
		printOK(fmt.Sprintf("Table %s ready", stmt.table))

	case stmtInsert:
		if err := r.mgr.InsertData(r.ctx, stmt.table, stmt.values); err != nil {
			printError(err)
			return
		}
		printOK("1 row inserted")

	case stmtFetch:
		rows, err := r.mgr.FetchData(r.ctx, stmt.table, stmt.condition)
		if err != nil {
			printError(err)
			return
		}
		printRows(rows)
	}
}

func printError(err error) {
	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Error"})
	tw.AppendRow(table.Row{err.Error()})
	fmt.Println(tw.Render())
}

func printOK(msg string) {
	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"OK"})
	tw.AppendRow(table.Row{msg})
	fmt.Println(tw.Render())
}

func printRows(rows manager.Rows) {
	tw := styled.NewTableWriter()

	header := table.Row{}
	for _, col := range rows.Columns {
		header = append(header, col)
	}
	tw.AppendHeader(header)

	for _, value := range rows.Values {
		tw.AppendRow(table.Row(value))
	}

	fmt.Println(tw.Render())
	styled.DimmedColor().Printf("%d row(s)\n", len(rows.Values))
	fmt.Println()
}
