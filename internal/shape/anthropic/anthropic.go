// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package anthropic builds Anthropic Messages API request bodies from a
// prompt. It only constructs parameters; sending them is the API
// client's job.
package anthropic

import (
	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/sigil-dev/promptshape/pkg/prompt"
	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
)

// DefaultMaxTokens is used when the caller does not set a limit. The
// Messages API requires max_tokens on every request.
const DefaultMaxTokens = 4096

// MessageParams builds Anthropic MessageNewParams from a prompt
// rendered for a chat-API model. System messages are hoisted into the
// top-level system blocks; the Messages API does not accept them
// inline.
func MessageParams(model string, maxTokens int64, raw prompt.Raw) (anthropicsdk.MessageNewParams, error) {
	rendered, err := prompt.NewChatCompletionPrompt(raw).Render()
	if err != nil {
		return anthropicsdk.MessageNewParams{}, promptserr.Wrapf(err,
			promptserr.CodeShapeRequestInvalid, "anthropic: rendering chat prompt")
	}

	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	params := anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(model),
		MaxTokens: maxTokens,
	}

	for _, msg := range rendered.Chat {
		switch msg.Role {
		case prompt.RoleSystem:
			params.System = append(params.System, anthropicsdk.TextBlockParam{Text: msg.Content})
		case prompt.RoleUser, prompt.RoleExampleUser:
			params.Messages = append(params.Messages, anthropicsdk.NewUserMessage(
				anthropicsdk.NewTextBlock(msg.Content),
			))
		case prompt.RoleAssistant, prompt.RoleExampleAssistant:
			params.Messages = append(params.Messages, anthropicsdk.NewAssistantMessage(
				anthropicsdk.NewTextBlock(msg.Content),
			))
		default:
			return anthropicsdk.MessageNewParams{}, promptserr.Errorf(
				promptserr.CodeShapeRoleUnsupported,
				"anthropic: unsupported message role %q", msg.Role)
		}
	}

	return params, nil
}
