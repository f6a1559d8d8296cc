package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kava-labs/collateral-monitor/query"
)

var (
	encodeRestEndpoint string
	encodeContract     string
)

var encodeQueryCmd = &cobra.Command{
	Use:     "encode-query <user_debts|user_collaterals> <account>",
	Short:   "prints the smart query message for an account and its encodings",
	Example: "encode-query user_debts osmo1p2lnskywgtmdszw4lyka8wu3mn925365djuc24 --rest-endpoint https://lcd.osmosis.zone --contract osmo1...",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := query.ParseQueryKind(args[0])
		if err != nil {
			return err
		}
		account := args[1]

		msg, err := query.EncodeSmartQuery(kind, account)
		if err != nil {
			return err
		}
		encoded, err := query.EncodeSmartQueryPath(kind, account)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, string(msg))
		fmt.Fprintln(out, encoded)
		if encodeRestEndpoint != "" && encodeContract != "" {
			fmt.Fprintln(out, query.SmartQueryURL(encodeRestEndpoint, encodeContract, encoded))
		}
		return nil
	},
}

func init() {
	encodeQueryCmd.Flags().StringVar(&encodeRestEndpoint, "rest-endpoint", "", "REST endpoint used to print the full query url")
	encodeQueryCmd.Flags().StringVar(&encodeContract, "contract", "", "contract address used to print the full query url")
}
