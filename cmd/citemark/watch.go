package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/citemark/pkg/adapters/fs"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the reference tree for changes",
	Long:  `Report every create, modify or delete of a stored record until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		repo := fs.NewRepository(fs.Config{
			Path:      treeDir,
			Gitless:   true,
			MustExist: true,
			Logger:    slog.Default(),
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := repo.Initialize(ctx); err != nil {
			fatal("Failed to open reference tree", err)
		}

		events, err := repo.Watch(ctx)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		slog.Info("watching reference tree", "dir", treeDir)
		for event := range events {
			fmt.Printf("%s\t%s\n", event.Type, event.Path)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
