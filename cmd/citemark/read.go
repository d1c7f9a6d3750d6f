package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var readJSON bool

var readCmd = &cobra.Command{
	Use:   "read [citekey]",
	Short: "Read a stored citation",
	Long:  `Load a citation by citekey. Prints the free-form body by default, or the full parsed header with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		citekey := args[0]

		service, err := openStore()
		if err != nil {
			fatal("Failed to open reference tree", err)
		}

		header, body, err := service.Citations.Load(context.Background(), citekey)
		if err != nil {
			fatal("Failed to load citation", err)
		}
		if len(header) == 0 {
			fmt.Fprintf(os.Stderr, "No citation stored for %q\n", citekey)
			os.Exit(1)
		}

		if readJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(map[string]any{"header": header, "body": body}); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Print(body)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output the parsed header and body as JSON")
}
