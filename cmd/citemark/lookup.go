package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Fuzzy-search stored people and citations",
}

var lookupAuthorCmd = &cobra.Command{
	Use:   "author [surname]",
	Short: "List stored people matching a surname",
	Long: `Glob the person tree for records whose filename contains the surname token.
The pick-list always includes a "new" entry for creating a fresh person.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openStore()
		if err != nil {
			fatal("Failed to open reference tree", err)
		}

		candidates, err := service.People.CandidatesForSurname(context.Background(), args[0])
		if err != nil {
			fatal("Lookup failed", err)
		}
		for _, c := range candidates {
			fmt.Println(c)
		}
	},
}

var lookupCiteCmd = &cobra.Command{
	Use:   "cite [partial-key]",
	Short: "List stored citekeys matching a partial key",
	Long: `Glob the citation tree for citekeys sharing a 5-character prefix window
with the partial key. The pick-list always ends with an "other" entry.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openStore()
		if err != nil {
			fatal("Failed to open reference tree", err)
		}

		candidates, err := service.Citations.Possible(context.Background(), args[0])
		if err != nil {
			fatal("Lookup failed", err)
		}
		for _, c := range candidates {
			fmt.Println(c)
		}
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.AddCommand(lookupAuthorCmd)
	lookupCmd.AddCommand(lookupCiteCmd)
}
