// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sigil-dev/promptshape/internal/config"
	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
)

// NewRootCmd creates the root promptshape command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "promptshape",
		Short:         "promptshape — convert prompts between text and chat form",
		Long:          "promptshape converts prompts between the flat text form used by completion APIs and the role-tagged message list used by chat APIs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initViper(cmd)
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "path to config file")

	root.AddCommand(
		newRenderCmd(),
		newVersionCmd(),
	)

	return root
}

// initViper sets up the global Viper with defaults, env bindings, and
// optional config file so the standard precedence
// (flag > env > file > defaults) is handled uniformly.
func initViper(cmd *cobra.Command) error {
	v := viper.GetViper()

	config.SetDefaults(v)
	config.SetupEnv(v)

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return promptserr.Errorf(promptserr.CodeConfigLoadReadFailure, "reading config file: %w", err)
		}
		return nil
	}

	// Auto-discover promptshape.yaml from standard locations. No config
	// file is fine — defaults and env vars still apply. Parse or
	// permission errors must surface.
	v.SetConfigName("promptshape")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/promptshape")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return promptserr.Errorf(promptserr.CodeConfigLoadReadFailure, "reading config: %w", err)
		}
	}

	return nil
}
