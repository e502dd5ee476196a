package main

import "github.com/spf13/cobra"

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the record store from the CLI",
	}
	cmd.AddCommand(queryNameCmd())
	cmd.AddCommand(queryTextCmd())
	cmd.AddCommand(queryRegexCmd())
	cmd.AddCommand(queryScopeCmd())
	cmd.AddCommand(queryCategoryCmd())
	cmd.AddCommand(queryFilterCmd())
	return cmd
}
