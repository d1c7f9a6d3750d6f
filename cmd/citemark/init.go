package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/citemark"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a reference tree",
	Long:  `Create the reference tree root directory, with a git repository when --git is set.`,
	Run: func(cmd *cobra.Command, args []string) {
		_, err := citemark.New(treeDir,
			citemark.WithAutoInit(true),
			citemark.WithVersioning(versioned),
		)
		if err != nil {
			fatal("Failed to initialize reference tree", err)
		}
		fmt.Printf("Reference tree ready at %s\n", treeDir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
