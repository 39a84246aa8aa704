package commands

import (
	"os"

	"combinedicts/lib/dict"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Prints the supported dictionary websites.",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Dictionary", "Entry URL"})
		for _, s := range dict.Sources() {
			t.AppendRow(table.Row{s.Name(), s.EntryUrl("<word>")})
		}
		t.Render()
	},
}
