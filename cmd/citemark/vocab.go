package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/citemark/pkg/bib"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Show the bundled biblatex vocabularies",
}

var vocabTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List entry types and their required fields",
	Run: func(cmd *cobra.Command, args []string) {
		types := bib.EntryTypes()
		names := make([]string, 0, len(types))
		for name := range types {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%-15s %s\n", name, strings.Join(types[name].RequiredFields, ", "))
		}
	},
}

var vocabFieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List known fields and their semantics",
	Run: func(cmd *cobra.Command, args []string) {
		fields := bib.Fields()
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%-15s %-9s %s\n", name, fields[name].Kind, fields[name].Comment)
		}
	},
}

func init() {
	rootCmd.AddCommand(vocabCmd)
	vocabCmd.AddCommand(vocabTypesCmd)
	vocabCmd.AddCommand(vocabFieldsCmd)
}
