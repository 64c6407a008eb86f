package commands

import (
	"github.com/citizenlabsgr/elections-api/lib/scrapers/mvic"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tokensCmd)
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Fetches the search form and prints the state tokens parsed out of it.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		session, err := client.NewSession()
		if err != nil {
			return err
		}
		form, err := session.FetchForm(cmd.Context())
		if err != nil {
			return err
		}
		tokens, err := mvic.ParseTokens(form)
		if err != nil {
			return err
		}

		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Token", "Value"})
		t.AppendRows([]table.Row{
			{"__EVENTVALIDATION", tokens.EventValidation},
			{"__VIEWSTATE", tokens.ViewState},
			{"__VIEWSTATEGENERATOR", tokens.ViewStateGenerator},
			{"__VIEWSTATEENCRYPTED", tokens.ViewStateEncrypted},
		})
		t.Render()
		return nil
	},
}
