// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package google builds Google GenAI request contents from a prompt.
// It only constructs parameters; sending them is the API client's job.
package google

import (
	"google.golang.org/genai"

	"github.com/sigil-dev/promptshape/pkg/prompt"
	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
)

// Request builds genai contents and the accompanying generation config
// from a prompt rendered for a chat-API model. System messages become
// the config's SystemInstruction; the GenAI SDK uses the "model" role
// for assistant turns.
func Request(raw prompt.Raw) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	rendered, err := prompt.NewChatCompletionPrompt(raw).Render()
	if err != nil {
		return nil, nil, promptserr.Wrapf(err,
			promptserr.CodeShapeRequestInvalid, "google: rendering chat prompt")
	}

	cfg := &genai.GenerateContentConfig{}
	var contents []*genai.Content

	for _, msg := range rendered.Chat {
		switch msg.Role {
		case prompt.RoleSystem:
			if cfg.SystemInstruction == nil {
				cfg.SystemInstruction = &genai.Content{}
			}
			cfg.SystemInstruction.Parts = append(cfg.SystemInstruction.Parts,
				&genai.Part{Text: msg.Content})
		case prompt.RoleUser, prompt.RoleExampleUser:
			contents = append(contents, &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		case prompt.RoleAssistant, prompt.RoleExampleAssistant:
			contents = append(contents, &genai.Content{
				Role:  "model",
				Parts: []*genai.Part{{Text: msg.Content}},
			})
		default:
			return nil, nil, promptserr.Errorf(promptserr.CodeShapeRoleUnsupported,
				"google: unsupported message role %q", msg.Role)
		}
	}

	return contents, cfg, nil
}
