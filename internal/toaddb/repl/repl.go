package repl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/toaddb/toaddb/internal/manager"
	"github.com/toaddb/toaddb/internal/toaddb/config"
	"github.com/toaddb/toaddb/internal/util/sysutil"
)

// Repl is the interactive toadDB shell. It reads statements from the
// terminal and forwards them to the database manager.
type Repl struct {
	conf        config.Config
	mgr         *manager.Manager
	ctx         context.Context
	stop        context.CancelFunc
	historyPath string
}

func NewRepl(
	ctx context.Context,
	stop context.CancelFunc,
	conf config.Config,
	mgr *manager.Manager,
) Repl {
	return Repl{
		conf:        conf,
		mgr:         mgr,
		ctx:         ctx,
		stop:        stop,
		historyPath: filepath.Join(os.TempDir(), ".toaddb_history"),
	}
}

func (r *Repl) Start() error {
	fmt.Println()
	fmt.Printf("Using database %s\n", r.conf.Database)
	fmt.Println(`Enter ".help" for usage hints and ".quit" or "CTRL+C" to quit`)
	fmt.Println()

	for {
		select {
		case <-r.ctx.Done():
			return nil
		default:
			input := r.prompt()

			if input == "" {
				continue
			}

			if input == "exit" || input == ".exit" || input == ".quit" {
				r.Shutdown()
				return nil
			}

			if input == "clear" || input == ".clear" {
				sysutil.ClearTerminal()
				continue
			}

			if input == "help" || input == ".help" {
				cmdHelp()
				continue
			}

			if input == ".tables" {
				cmdTables(r)
				continue
			}

			if input == ".stats" {
				cmdStats(r)
				continue
			}

			if strings.HasPrefix(input, ".count") {
				cmdCount(r, input)
				continue
			}

			if strings.HasPrefix(input, ".import") {
				cmdImport(r, input)
				continue
			}

			if strings.HasPrefix(input, ".") {
				fmt.Println("Unknown command, type .help for usage hints")
				continue
			}

			cmdStatement(r, input)
		}
	}
}

// Shutdown stops the REPL.
func (r *Repl) Shutdown() {
	r.stop()
}

// prompt shows the prompt and reads the input from the user.
func (r *Repl) prompt() string {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(cmdHelpCompleter)

	if file, err := os.Open(r.historyPath); err == nil {
		_, _ = line.ReadHistory(file)
		file.Close()
	}

	input, err := line.Prompt("toadDB> ")
	if err != nil {
		if err == liner.ErrPromptAborted {
			fmt.Println("CTRL+C pressed, exiting...")
			return ".quit"
		}
		return ""
	}

	line.AppendHistory(input)
	if file, err := os.Create(r.historyPath); err == nil {
		_, _ = line.WriteHistory(file)
		file.Close()
	}

	return strings.TrimSpace(input)
}
