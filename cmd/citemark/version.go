package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/citemark"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of citemark",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("citemark version %s\n", citemark.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
