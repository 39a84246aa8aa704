package commands

import (
	"os"
	"time"

	"combinedicts/lib/serviceutil"
	"combinedicts/lib/sqliteutil"
	lookupsvc "combinedicts/services/lookup"
	"combinedicts/services/lookup/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyLimit *int64

func init() {
	historyLimit = historyCmd.Flags().Int64P("limit", "n", 20, "The maximum number of history rows to print.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history [-n <limit>]",
	Short: "Prints the most recent lookups, newest first.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		database, err := sqliteutil.OpenDB(db.Schema, cfg.HistoryDb)
		if err != nil {
			serviceutil.Fatal("failed to open history database", err)
		}
		defer database.Close()

		service := lookupsvc.NewService(nil, database)
		rows, err := service.RecentLookups(cmd.Context(), *historyLimit)
		if err != nil {
			serviceutil.Fatal("failed to read lookup history", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Time", "Word", "Dictionaries"})
		for _, row := range rows {
			t.AppendRow(table.Row{
				time.Unix(row.Time, 0).Format(time.DateTime),
				row.Word,
				row.Sources,
			})
		}
		t.Render()
	},
}
