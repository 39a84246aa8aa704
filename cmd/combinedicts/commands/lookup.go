package commands

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"combinedicts/lib/dict"
	"combinedicts/lib/fetch"
	"combinedicts/lib/restyutil"
	"combinedicts/lib/serviceutil"
	"combinedicts/lib/sqliteutil"
	lookupsvc "combinedicts/services/lookup"
	"combinedicts/services/lookup/db"

	"github.com/spf13/cobra"
)

var lookupDicts *[]string
var lookupOutput *string
var lookupNoHistory *bool
var lookupDumpHttp *string

func init() {
	lookupDicts = lookupCmd.Flags().StringArrayP(
		"dictionary", "d", nil,
		"Only query dictionaries matching this name, may be repeated (e.g. -d merriam -d longman).",
	)
	lookupOutput = lookupCmd.Flags().StringP(
		"output", "o", "",
		"Write the combined JSON document to this file instead of stdout.",
	)
	lookupNoHistory = lookupCmd.Flags().Bool(
		"no-history", false,
		"Do not record this lookup in the history database.",
	)
	lookupDumpHttp = lookupCmd.Flags().String(
		"dump-http", "",
		"Write raw request/response transcripts to this directory, for debugging markup changes.",
	)
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <word> [-d <dictionary>]... [-o <path/to/output.json>]",
	Short: "Looks up a word in every dictionary (or only the ones given) and prints one combined JSON document.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		word := args[0]
		cfg := readConfig()

		sources := dict.MatchSources(*lookupDicts)
		if len(sources) == 0 {
			serviceutil.Fatal(
				"no dictionary matched",
				fmt.Errorf("unknown dictionary name(s): %s", strings.Join(*lookupDicts, ", ")),
			)
		}

		var instrumentOutput restyutil.InstrumentOutput
		if *lookupDumpHttp != "" {
			instrumentOutput = restyutil.NewFilesystemOutput(*lookupDumpHttp)
		}

		client, err := fetch.NewClient(fetch.ClientOptions{
			Timeout:          time.Duration(cfg.TimeoutSeconds) * time.Second,
			UserAgent:        cfg.UserAgent,
			InstrumentOutput: instrumentOutput,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize http client", err)
		}

		var database *sql.DB
		if !*lookupNoHistory {
			database, err = sqliteutil.OpenDB(db.Schema, cfg.HistoryDb)
			if err != nil {
				slog.Warn("could not open history database, continuing without it", "err", err)
				database = nil
			} else {
				defer database.Close()
			}
		}

		service := lookupsvc.NewService(client, database)
		result := service.Lookup(cmd.Context(), word, sources)

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			serviceutil.Fatal("failed to encode result", err)
		}

		if *lookupOutput != "" {
			err = os.WriteFile(*lookupOutput, out, 0644)
			if err != nil {
				serviceutil.Fatal("failed to write output file", err)
			}
			slog.Info("wrote combined result", "path", *lookupOutput)
			return
		}
		fmt.Println(string(out))
	},
}
