package repl

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/toaddb/toaddb/internal/toaddb/styled"
)

// cmdImport bulk-loads a CSV file into a table, one insert per record.
// The import stops at the first failing row.
func cmdImport(r *Repl, input string) {
	args := strings.Fields(input)
	if len(args) != 3 {
		fmt.Println("Usage: .import [file.csv] [table_name]")
		return
	}
	path, tableName := args[1], args[2]

	file, err := os.Open(path)
	if err != nil {
		printError(err)
		return
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		printError(fmt.Errorf("failed to read %s: %w", path, err))
		return
	}
	if len(records) == 0 {
		fmt.Println("Nothing to import, the file is empty")
		return
	}

	bar := progressbar.Default(int64(len(records)), "importing")
	for i, record := range records {
		values := make([]any, len(record))
		for j, field := range record {
			values[j] = coerceField(field)
		}

		if err := r.mgr.InsertData(r.ctx, tableName, values); err != nil {
			_ = bar.Close()
			printError(fmt.Errorf("row %d: %w", i+1, err))
			return
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	styled.DimmedColor().Printf("%d row(s) imported into %s\n", len(records), tableName)
	fmt.Println()
}

// coerceField maps a raw CSV field to the value bound at insert time:
// integers and reals are converted, everything else stays text.
func coerceField(field string) any {
	if i, err := strconv.ParseInt(field, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(field, 64); err == nil {
		return f
	}
	return field
}
