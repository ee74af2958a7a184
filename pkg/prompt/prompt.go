// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package prompt converts between the two prompt representations used by
// language-model APIs: a flat text string for completion-style endpoints
// and an ordered list of role-tagged messages for chat-style endpoints.
package prompt

import (
	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
)

// Role identifies the originator of a message.
type Role string

const (
	RoleSystem           Role = "system"
	RoleUser             Role = "user"
	RoleAssistant        Role = "assistant"
	RoleTool             Role = "tool"
	RoleExampleUser      Role = "example_user"
	RoleExampleAssistant Role = "example_assistant"
)

// Message is a single turn in a conversation. Name and Recipient are
// optional annotations; Recipient addresses an assistant message in
// multi-agent routing scenarios.
type Message struct {
	Role      Role   `json:"role" yaml:"role"`
	Content   string `json:"content" yaml:"content"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Recipient string `json:"recipient,omitempty" yaml:"recipient,omitempty"`
}

// ChatPrompt is an ordered conversation. Order is meaningful; messages
// have no identity beyond their position.
type ChatPrompt []Message

// RawKind discriminates the underlying representation of a Raw prompt.
// The kind is decided once, at construction, so downstream code never
// has to re-inspect the value structurally.
type RawKind string

const (
	// RawKindText is a flat prompt string.
	RawKindText RawKind = "text"
	// RawKindChat is an ordered list of role-tagged messages.
	RawKindChat RawKind = "chat"
	// RawKindOpaque covers the lower-level completion forms (string
	// lists, token lists) that are passed through untouched.
	RawKindOpaque RawKind = "opaque"
)

// Raw holds a prompt in whichever representation the caller supplied,
// tagged with its kind. The zero Raw is unclassified and fails to render.
type Raw struct {
	kind   RawKind
	text   string
	chat   ChatPrompt
	opaque any
}

// Text wraps a flat prompt string.
func Text(s string) Raw {
	return Raw{kind: RawKindText, text: s}
}

// Chat wraps an ordered list of messages.
func Chat(msgs ...Message) Raw {
	return Raw{kind: RawKindChat, chat: ChatPrompt(msgs)}
}

// FromChat wraps an existing ChatPrompt.
func FromChat(p ChatPrompt) Raw {
	return Raw{kind: RawKindChat, chat: p}
}

// Opaque wraps a lower-level completion form (string list, token list)
// that is carried through without interpretation.
func Opaque(v any) Raw {
	return Raw{kind: RawKindOpaque, opaque: v}
}

// Kind reports the representation this Raw was constructed with.
func (r Raw) Kind() RawKind { return r.kind }

// Rendered is the outcome of rendering a Prompt for its target API
// shape. Kind selects which field carries the result.
type Rendered struct {
	Kind   RawKind
	Text   string
	Chat   ChatPrompt
	Opaque any
}

// Prompt renders its raw content into the shape a target API expects.
// Implementations are pure: no caching, no side effects.
type Prompt interface {
	Render() (Rendered, error)
}

// CompletionPrompt targets text-completion APIs. A chat raw is rendered
// to a single string; text and opaque raws pass through unchanged.
type CompletionPrompt struct {
	Raw Raw
}

// NewCompletionPrompt wraps raw for a text-completion target.
func NewCompletionPrompt(raw Raw) CompletionPrompt {
	return CompletionPrompt{Raw: raw}
}

func (p CompletionPrompt) Render() (Rendered, error) {
	switch p.Raw.kind {
	case RawKindChat:
		text, err := ChatToText(p.Raw.chat)
		if err != nil {
			return Rendered{}, err
		}
		return Rendered{Kind: RawKindText, Text: text}, nil
	case RawKindText:
		return Rendered{Kind: RawKindText, Text: p.Raw.text}, nil
	case RawKindOpaque:
		return Rendered{Kind: RawKindOpaque, Opaque: p.Raw.opaque}, nil
	default:
		return Rendered{}, promptserr.New(promptserr.CodePromptRenderInvalidInput,
			"prompt: cannot render an unclassified raw prompt")
	}
}

// Text renders and returns the flat string form. It fails for opaque
// raws, which have no string rendering.
func (p CompletionPrompt) Text() (string, error) {
	rendered, err := p.Render()
	if err != nil {
		return "", err
	}
	if rendered.Kind != RawKindText {
		return "", promptserr.New(promptserr.CodePromptRenderInvalidInput,
			"prompt: opaque completion prompt has no text rendering")
	}
	return rendered.Text, nil
}

// ChatCompletionPrompt targets chat-completion APIs. A chat raw is
// normalized; a text raw is wrapped as a single system message.
type ChatCompletionPrompt struct {
	Raw Raw
}

// NewChatCompletionPrompt wraps raw for a chat-completion target.
func NewChatCompletionPrompt(raw Raw) ChatCompletionPrompt {
	return ChatCompletionPrompt{Raw: raw}
}

func (p ChatCompletionPrompt) Render() (Rendered, error) {
	switch p.Raw.kind {
	case RawKindChat:
		return Rendered{Kind: RawKindChat, Chat: Normalize(p.Raw.chat)}, nil
	case RawKindText:
		return Rendered{Kind: RawKindChat, Chat: TextToChat(p.Raw.text)}, nil
	case RawKindOpaque:
		return Rendered{}, promptserr.New(promptserr.CodePromptRenderInvalidInput,
			"prompt: opaque completion forms cannot be rendered as a chat prompt")
	default:
		return Rendered{}, promptserr.New(promptserr.CodePromptRenderInvalidInput,
			"prompt: cannot render an unclassified raw prompt")
	}
}

// Messages renders and returns the chat form.
func (p ChatCompletionPrompt) Messages() (ChatPrompt, error) {
	rendered, err := p.Render()
	if err != nil {
		return nil, err
	}
	return rendered.Chat, nil
}
