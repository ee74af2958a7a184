// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

// Package openai builds the typed request bodies the OpenAI API expects
// from a prompt, for either the Chat Completions or the legacy
// Completions endpoint. It only constructs parameters; sending them is
// the API client's job.
package openai

import (
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"
	"github.com/sigil-dev/promptshape/pkg/prompt"
	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
)

// ChatParams builds Chat Completions params from a prompt rendered for
// a chat-API model.
func ChatParams(model string, raw prompt.Raw) (openaisdk.ChatCompletionNewParams, error) {
	rendered, err := prompt.NewChatCompletionPrompt(raw).Render()
	if err != nil {
		return openaisdk.ChatCompletionNewParams{}, promptserr.Wrapf(err,
			promptserr.CodeShapeRequestInvalid, "openai: rendering chat prompt")
	}

	msgs, err := convertMessages(rendered.Chat)
	if err != nil {
		return openaisdk.ChatCompletionNewParams{}, err
	}

	return openaisdk.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: msgs,
	}, nil
}

// CompletionParams builds legacy Completions params from a prompt
// rendered for a text-API model. Chat prompts are flattened to a single
// string; opaque string/token forms map onto the matching prompt union
// variant.
func CompletionParams(model string, raw prompt.Raw) (openaisdk.CompletionNewParams, error) {
	rendered, err := prompt.NewCompletionPrompt(raw).Render()
	if err != nil {
		return openaisdk.CompletionNewParams{}, promptserr.Wrapf(err,
			promptserr.CodeShapeRequestInvalid, "openai: rendering completion prompt")
	}

	params := openaisdk.CompletionNewParams{
		Model: openaisdk.CompletionNewParamsModel(model),
	}

	switch rendered.Kind {
	case prompt.RawKindText:
		params.Prompt = openaisdk.CompletionNewParamsPromptUnion{
			OfString: param.NewOpt(rendered.Text),
		}
	case prompt.RawKindOpaque:
		promptUnion, err := convertOpaque(rendered.Opaque)
		if err != nil {
			return openaisdk.CompletionNewParams{}, err
		}
		params.Prompt = promptUnion
	default:
		return openaisdk.CompletionNewParams{}, promptserr.Errorf(
			promptserr.CodeShapeRequestInvalid,
			"openai: unexpected rendered prompt kind %q", rendered.Kind)
	}

	return params, nil
}

// convertMessages transforms a normalized chat prompt into OpenAI SDK
// message param unions. Tool messages never reach this point: the
// normalizer has already rewritten them as assistant messages.
func convertMessages(msgs prompt.ChatPrompt) ([]openaisdk.ChatCompletionMessageParamUnion, error) {
	result := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(msgs))

	for _, msg := range msgs {
		switch msg.Role {
		case prompt.RoleSystem:
			result = append(result, openaisdk.SystemMessage(msg.Content))
		case prompt.RoleUser, prompt.RoleExampleUser:
			result = append(result, openaisdk.UserMessage(msg.Content))
		case prompt.RoleAssistant, prompt.RoleExampleAssistant:
			result = append(result, openaisdk.AssistantMessage(msg.Content))
		default:
			return nil, promptserr.Errorf(promptserr.CodeShapeRoleUnsupported,
				"openai: unsupported message role %q", msg.Role)
		}
	}

	return result, nil
}

// convertOpaque maps an opaque completion form onto the Completions
// prompt union: string lists and token lists pass through as-is.
func convertOpaque(v any) (openaisdk.CompletionNewParamsPromptUnion, error) {
	switch val := v.(type) {
	case []string:
		return openaisdk.CompletionNewParamsPromptUnion{OfArrayOfStrings: val}, nil
	case []int:
		tokens := make([]int64, len(val))
		for i, t := range val {
			tokens[i] = int64(t)
		}
		return openaisdk.CompletionNewParamsPromptUnion{OfArrayOfTokens: tokens}, nil
	case []int64:
		return openaisdk.CompletionNewParamsPromptUnion{OfArrayOfTokens: val}, nil
	case [][]int:
		arrays := make([][]int64, len(val))
		for i, arr := range val {
			tokens := make([]int64, len(arr))
			for j, t := range arr {
				tokens[j] = int64(t)
			}
			arrays[i] = tokens
		}
		return openaisdk.CompletionNewParamsPromptUnion{OfArrayOfTokenArrays: arrays}, nil
	case [][]int64:
		return openaisdk.CompletionNewParamsPromptUnion{OfArrayOfTokenArrays: val}, nil
	case []any:
		return convertOpaqueSequence(val)
	default:
		return openaisdk.CompletionNewParamsPromptUnion{}, promptserr.Errorf(
			promptserr.CodeShapeRequestInvalid,
			"openai: opaque completion form %T is not a string or token list", v)
	}
}

// convertOpaqueSequence handles opaque forms that arrived via JSON/YAML
// decoding, where every element is an any-typed string or number.
func convertOpaqueSequence(seq []any) (openaisdk.CompletionNewParamsPromptUnion, error) {
	if len(seq) == 0 {
		return openaisdk.CompletionNewParamsPromptUnion{OfArrayOfStrings: []string{}}, nil
	}

	if _, ok := seq[0].(string); ok {
		strs := make([]string, 0, len(seq))
		for _, elem := range seq {
			s, ok := elem.(string)
			if !ok {
				return openaisdk.CompletionNewParamsPromptUnion{}, promptserr.Errorf(
					promptserr.CodeShapeRequestInvalid,
					"openai: mixed string/token completion list")
			}
			strs = append(strs, s)
		}
		return openaisdk.CompletionNewParamsPromptUnion{OfArrayOfStrings: strs}, nil
	}

	tokens := make([]int64, 0, len(seq))
	for _, elem := range seq {
		switch n := elem.(type) {
		case int:
			tokens = append(tokens, int64(n))
		case int64:
			tokens = append(tokens, n)
		case float64:
			tokens = append(tokens, int64(n))
		default:
			return openaisdk.CompletionNewParamsPromptUnion{}, promptserr.Errorf(
				promptserr.CodeShapeRequestInvalid,
				"openai: completion list element %T is not a token", elem)
		}
	}
	return openaisdk.CompletionNewParamsPromptUnion{OfArrayOfTokens: tokens}, nil
}
