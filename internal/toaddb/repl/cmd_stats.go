package repl

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/toaddb/toaddb/internal/toaddb/styled"
	"github.com/toaddb/toaddb/internal/util/numutil"
)

func cmdStats(r *Repl) {
	stats := r.mgr.Stats()

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Tables Created", "Rows Inserted", "Fetch Queries"})
	tw.AppendRow(table.Row{
		numutil.IntWithCommas(stats.TablesCreated),
		numutil.IntWithCommas(stats.RowsInserted),
		numutil.IntWithCommas(stats.FetchQueries),
	})

	fmt.Println(tw.Render())
	styled.DimmedColor().Printf("Session started: %s\n", stats.StartedAt.Format(time.RFC3339))
	styled.DimmedColor().Printf("Last operation: %s\n", stats.LastOperation.Format(time.RFC3339))
	styled.DimmedColor().Printf("Uptime: %s\n", time.Since(stats.StartedAt).Round(time.Second))
	fmt.Println()
}
