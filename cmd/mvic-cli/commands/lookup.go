package commands

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/citizenlabsgr/elections-api/lib/scrapers/mvic"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	lookupQuery mvic.PersonQuery
	lookupJson  bool
)

func init() {
	flags := lookupCmd.Flags()
	flags.StringVar(&lookupQuery.FirstName, "first", "", "First name.")
	flags.StringVar(&lookupQuery.LastName, "last", "", "Last name.")
	flags.StringVar(&lookupQuery.BirthMonth, "birth-month", "", "Birth month, as the portal expects it (ex. 2).")
	flags.StringVar(&lookupQuery.BirthYear, "birth-year", "", "Birth year (ex. 1913).")
	flags.StringVar(&lookupQuery.Zip, "zip", "", "Zip code.")
	flags.BoolVar(&lookupJson, "json", false, "Print the result as JSON instead of a table.")
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup --first <name> --last <name> --birth-month <m> --birth-year <yyyy> --zip <zip>",
	Short: "Checks whether a person is registered to vote.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		result, err := client.Lookup(cmd.Context(), lookupQuery)
		if err != nil {
			return err
		}
		if lookupJson {
			return writeResultJson(cmd.OutOrStdout(), result)
		}
		writeResultTable(cmd.OutOrStdout(), result)
		return nil
	},
}

func writeResultJson(out io.Writer, result mvic.RegistrationResult) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeResultTable(out io.Writer, result mvic.RegistrationResult) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"registered", result.Registered})

	labels := make([]string, 0, len(result.Fields))
	for label := range result.Fields {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		t.AppendRow(table.Row{label, result.Fields[label]})
	}
	t.Render()
}
