// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sigil-dev/promptshape/internal/config"
	"github.com/sigil-dev/promptshape/pkg/prompt"
	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Convert a prompt for a target API shape",
		Long:  "Read a prompt as JSON or YAML from a file or stdin and render it for a text-completion or chat-completion API.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}

	cmd.Flags().StringP("target", "t", "", "target API shape (text or chat)")
	cmd.Flags().StringP("format", "f", "", "output format (text, json, yaml)")
	cmd.Flags().Bool("raw", false, "treat input as a plain text prompt instead of JSON/YAML")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	if err := v.BindPFlag("render.target", cmd.Flags().Lookup("target")); err != nil {
		return promptserr.Errorf(promptserr.CodeCLISetupFailure, "binding target flag: %w", err)
	}
	if err := v.BindPFlag("output.format", cmd.Flags().Lookup("format")); err != nil {
		return promptserr.Errorf(promptserr.CodeCLISetupFailure, "binding format flag: %w", err)
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	raw, err := classifyInput(cmd, input)
	if err != nil {
		return err
	}

	rendered, err := renderFor(cfg.Render.Target, raw)
	if err != nil {
		return err
	}

	return writeRendered(cmd.OutOrStdout(), cfg.Output.Format, rendered)
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, promptserr.Errorf(promptserr.CodeCLIInputInvalid, "reading prompt file: %w", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, promptserr.Errorf(promptserr.CodeCLIInputInvalid, "reading stdin: %w", err)
	}
	return data, nil
}

// classifyInput turns the input bytes into a tagged raw prompt. With
// --raw the bytes are the prompt; otherwise they are decoded as YAML
// (a superset of JSON) and classified structurally.
func classifyInput(cmd *cobra.Command, input []byte) (prompt.Raw, error) {
	if rawText, _ := cmd.Flags().GetBool("raw"); rawText {
		return prompt.Text(string(input)), nil
	}

	var value any
	if err := yaml.Unmarshal(input, &value); err != nil {
		return prompt.Raw{}, promptserr.Errorf(promptserr.CodeCLIInputInvalid, "decoding prompt: %w", err)
	}

	raw, err := prompt.FromValue(value)
	if err != nil {
		return prompt.Raw{}, promptserr.Wrapf(err, promptserr.CodeCLIInputInvalid, "classifying prompt")
	}
	return raw, nil
}

func renderFor(target string, raw prompt.Raw) (prompt.Rendered, error) {
	switch target {
	case config.TargetText:
		return prompt.NewCompletionPrompt(raw).Render()
	case config.TargetChat:
		return prompt.NewChatCompletionPrompt(raw).Render()
	default:
		return prompt.Rendered{}, promptserr.Errorf(promptserr.CodeCLIInputInvalid,
			"unknown render target %q", target)
	}
}

func writeRendered(w io.Writer, format string, rendered prompt.Rendered) error {
	value := renderedValue(rendered)

	switch format {
	case config.FormatText:
		text, ok := value.(string)
		if !ok {
			return promptserr.New(promptserr.CodeCLIInputInvalid,
				"text output requires render.target=text; use json or yaml for chat prompts")
		}
		_, err := fmt.Fprintln(w, text)
		return promptserr.Wrap(err, promptserr.CodeCLIOutputFailure, "writing output")

	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return promptserr.Wrap(enc.Encode(value), promptserr.CodeCLIOutputFailure, "encoding output")

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return promptserr.Wrap(enc.Encode(value), promptserr.CodeCLIOutputFailure, "encoding output")

	default:
		return promptserr.Errorf(promptserr.CodeCLIInputInvalid, "unknown output format %q", format)
	}
}

// renderedValue unwraps a Rendered into the plain value to emit.
func renderedValue(r prompt.Rendered) any {
	switch r.Kind {
	case prompt.RawKindText:
		return r.Text
	case prompt.RawKindChat:
		return r.Chat
	default:
		return r.Opaque
	}
}
