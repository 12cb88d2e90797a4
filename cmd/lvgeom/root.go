// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// logLevel is the value of the persistent --log-level flag.
var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvgeom",
		Short: "Property-tracking 3D transform matrices",
		Long: `lvgeom evaluates YAML transform pipelines through the property-tracking
matrix engine, classifies raw 4x4 matrices and audits the engine against a
dense reference.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newEvalCmd(), newClassifyCmd(), newAuditCmd())

	return root
}

// newLogger builds the structured logger writing to the command's error
// stream at the level given by --log-level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
		return nil, fmt.Errorf("lvgeom: --log-level %q: %w", logLevel, err)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})), nil
}
