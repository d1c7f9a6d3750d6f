package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	addFile  string
	addNotes string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Capture a raw bibliographic record",
	Long: `Normalize a raw imported record (a YAML field mapping with entrytype,
author/editor/translator lists and arbitrary extra fields) and store the
resulting citation plus stub records for any people it references.
Use "-f -" to read the record from stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		var data []byte
		var err error
		if addFile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(addFile)
		}
		if err != nil {
			fatal("Failed to read record", err)
		}

		var record map[string]any
		if err := yaml.Unmarshal(data, &record); err != nil {
			fatal("Failed to parse record", err)
		}

		service, err := openStore()
		if err != nil {
			fatal("Failed to open reference tree", err)
		}

		citekey, err := service.Capture(context.Background(), record, addNotes)
		if err != nil {
			fatal("Failed to capture record", err)
		}
		fmt.Println(citekey)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "Record file (YAML mapping), or - for stdin")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Free-form notes stored as the citation body")
	addCmd.MarkFlagRequired("file")
}
