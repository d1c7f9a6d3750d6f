package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/citemark"
	"github.com/aretw0/citemark/pkg/store"
)

var (
	verbose   bool
	treeDir   string
	versioned bool
	docType   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "citemark",
	Short: "A Markdown reference store for citations and authors",
	Long: `Citemark keeps a personal bibliography as a flat tree of Markdown files
with structured frontmatter: one file per citation, one per person, at
deterministic content-derived paths.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// openStore builds the service over the configured reference tree.
func openStore(extra ...citemark.Option) (*store.Service, error) {
	opts := append([]citemark.Option{
		citemark.WithLogger(slog.Default()),
		citemark.WithVersioning(versioned),
		citemark.WithDocType(docType),
		citemark.WithMustExist(true),
	}, extra...)
	return citemark.New(treeDir, opts...)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&treeDir, "dir", "C", ".", "Reference tree root")
	rootCmd.PersistentFlags().BoolVar(&versioned, "git", false, "Commit every write to git")
	rootCmd.PersistentFlags().StringVar(&docType, "doc-type", store.DefaultDocType, "Directory associated documents live under")
}
