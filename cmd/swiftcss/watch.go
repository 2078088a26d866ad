package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yacobolo/swiftcss"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate when matching files or input CSS change",
	Long: `Generate a readable stylesheet, then regenerate whenever a file with a
configured extension or one of the input CSS files changes.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWatch(cmd, swiftcss.ModeWatch)
	},
}

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Regenerate on any change in the scanned directories",
	Long: `Like watch, but any file change below the scanned directories triggers a
regeneration. Output is left readable for debugging.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWatch(cmd, swiftcss.ModeDev)
	},
}

func runWatch(cmd *cobra.Command, mode swiftcss.Mode) error {
	c, err := newCompiler(true)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = c.Watch(ctx, mode, nil)
	if errors.Is(err, swiftcss.ErrConfigChanged) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s changed; run swiftcss %s again to apply it\n", loadedConfigFile, mode)
		return nil
	}
	return err
}
