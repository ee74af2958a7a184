// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package prompt

import (
	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
)

// IsChatPrompt reports whether v is structurally a chat prompt: a
// sequence whose every element is a mapping (or an already-typed
// ChatPrompt). The check is purely structural; mapping contents are
// not inspected. A plain string is never a chat prompt.
func IsChatPrompt(v any) bool {
	switch seq := v.(type) {
	case ChatPrompt, []Message, []map[string]any, []map[string]string:
		return true
	case []any:
		for _, elem := range seq {
			switch elem.(type) {
			case map[string]any, map[string]string, Message:
			default:
				return false
			}
		}
		return true
	default:
		return false
	}
}

// FromValue classifies a decoded JSON or YAML value into a tagged Raw:
// a string becomes a text raw, a list of mappings becomes a chat raw,
// and the lower-level completion forms (string lists, token lists)
// become opaque raws. Anything else is invalid input. Classification
// happens exactly once; the resulting Raw is never re-inspected.
func FromValue(v any) (Raw, error) {
	switch val := v.(type) {
	case string:
		return Text(val), nil
	case ChatPrompt:
		return FromChat(val), nil
	case []Message:
		return FromChat(ChatPrompt(val)), nil
	case []string, []int, []int64, [][]int, [][]int64:
		return Opaque(val), nil
	case []map[string]any:
		msgs := make(ChatPrompt, 0, len(val))
		for _, m := range val {
			msg, err := messageFromMap(m)
			if err != nil {
				return Raw{}, err
			}
			msgs = append(msgs, msg)
		}
		return FromChat(msgs), nil
	case []any:
		return fromSequence(val)
	default:
		return Raw{}, promptserr.Errorf(promptserr.CodePromptClassifyInvalidInput,
			"prompt: cannot classify %T as a text or chat prompt", v)
	}
}

// fromSequence classifies a heterogeneously-typed decoded list: all
// mappings make a chat raw, all strings or all numbers make an opaque
// completion form.
func fromSequence(seq []any) (Raw, error) {
	if IsChatPrompt(seq) {
		msgs := make(ChatPrompt, 0, len(seq))
		for _, elem := range seq {
			switch m := elem.(type) {
			case Message:
				msgs = append(msgs, m)
			case map[string]any:
				msg, err := messageFromMap(m)
				if err != nil {
					return Raw{}, err
				}
				msgs = append(msgs, msg)
			case map[string]string:
				msgs = append(msgs, Message{
					Role:      Role(m["role"]),
					Content:   m["content"],
					Name:      m["name"],
					Recipient: m["recipient"],
				})
			}
		}
		return FromChat(msgs), nil
	}

	for _, elem := range seq {
		switch elem.(type) {
		case string, int, int64, float64, []any:
		default:
			return Raw{}, promptserr.Errorf(promptserr.CodePromptClassifyInvalidInput,
				"prompt: sequence element %T is neither a message mapping nor a completion token form", elem)
		}
	}
	return Opaque(seq), nil
}

// messageFromMap builds a Message from a decoded mapping. Role and
// content must be strings when present; unknown keys are ignored.
func messageFromMap(m map[string]any) (Message, error) {
	var msg Message

	role, err := stringField(m, "role")
	if err != nil {
		return Message{}, err
	}
	msg.Role = Role(role)

	if msg.Content, err = stringField(m, "content"); err != nil {
		return Message{}, err
	}
	if msg.Name, err = stringField(m, "name"); err != nil {
		return Message{}, err
	}
	if msg.Recipient, err = stringField(m, "recipient"); err != nil {
		return Message{}, err
	}

	return msg, nil
}

func stringField(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", promptserr.Errorf(promptserr.CodePromptClassifyInvalidInput,
			"prompt: message field %q must be a string, got %T", key, v)
	}
	return s, nil
}
