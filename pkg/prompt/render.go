// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package prompt

import (
	"strings"
	"unicode"

	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
)

// roleLabels maps roles (and recipients) to the display labels used when
// rendering a conversation as flat text. System messages carry no label.
var roleLabels = map[Role]string{
	RoleSystem:           "",
	RoleUser:             "User",
	RoleAssistant:        "Assistant",
	RoleExampleUser:      "User",
	RoleExampleAssistant: "Assistant",
	RoleTool:             "Tool",
}

// roleLabel returns the display label for a role. Unrecognized roles
// fall back to the capitalized role name.
func roleLabel(r Role) string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return capitalize(string(r))
}

// recipientLabel maps a recipient through the role-label table, passing
// unrecognized recipients through unchanged.
func recipientLabel(recipient string) string {
	if label, ok := roleLabels[Role(recipient)]; ok {
		return label
	}
	return recipient
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ChatToText renders a chat prompt as a flat text prompt. Each message
// is prefixed with its role label (plus optional name and recipient
// annotations), messages are joined with newlines, and a trailing
// "Assistant: " marker cues generation. A single-message prompt returns
// its content verbatim, whatever the role. An empty prompt is invalid.
func ChatToText(p ChatPrompt) (string, error) {
	if len(p) == 0 {
		return "", promptserr.New(promptserr.CodePromptEmptyChatInvalid,
			"prompt: cannot render an empty chat prompt as text")
	}

	if len(p) == 1 {
		return p[0].Content, nil
	}

	lines := make([]string, 0, len(p))
	for _, msg := range p {
		prefix := roleLabel(msg.Role)

		if msg.Name != "" {
			prefix += " (" + msg.Name + ")"
		}

		if msg.Recipient != "" {
			prefix += " -> " + recipientLabel(msg.Recipient)
		}

		if prefix != "" {
			prefix += ": "
		}

		lines = append(lines, prefix+msg.Content)
	}

	text := strings.Join(lines, "\n") + "\n" + roleLabels[RoleAssistant] + ": "
	return strings.TrimLeftFunc(text, unicode.IsSpace), nil
}

// TextToChat wraps a flat prompt string as a single system message.
func TextToChat(s string) ChatPrompt {
	return ChatPrompt{
		{Role: RoleSystem, Content: s},
	}
}

// Normalize rewrites messages that chat APIs do not accept directly:
// tool messages become assistant messages with a "Tool (name): " content
// prefix, and assistant messages addressed to a recipient have the
// address inlined as "To {recipient}: ". Name and recipient metadata is
// dropped from rewritten messages. Everything else passes through
// unchanged, in order; the input is not mutated.
func Normalize(p ChatPrompt) ChatPrompt {
	out := make(ChatPrompt, 0, len(p))

	for _, msg := range p {
		switch {
		case msg.Role == RoleTool:
			content := msg.Content
			if msg.Name != "" {
				content = "Tool (" + msg.Name + "): " + content
			}
			out = append(out, Message{Role: RoleAssistant, Content: content})

		case msg.Role == RoleAssistant && msg.Recipient != "":
			out = append(out, Message{
				Role:    RoleAssistant,
				Content: "To " + msg.Recipient + ": " + msg.Content,
			})

		default:
			out = append(out, msg)
		}
	}

	return out
}
