// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package anthropic_test

import (
	"testing"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/sigil-dev/promptshape/pkg/prompt"
	"github.com/sigil-dev/promptshape/internal/shape/anthropic"
	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageParams_SystemMessagesAreHoisted(t *testing.T) {
	params, err := anthropic.MessageParams("claude-sonnet-4-5", 0, prompt.Chat(
		prompt.Message{Role: prompt.RoleSystem, Content: "be terse"},
		prompt.Message{Role: prompt.RoleUser, Content: "Hi"},
		prompt.Message{Role: prompt.RoleAssistant, Content: "Hello"},
	))
	require.NoError(t, err)

	assert.Equal(t, anthropicsdk.Model("claude-sonnet-4-5"), params.Model)
	assert.Equal(t, int64(anthropic.DefaultMaxTokens), params.MaxTokens)

	require.Len(t, params.System, 1)
	assert.Equal(t, "be terse", params.System[0].Text)

	require.Len(t, params.Messages, 2)
	assert.Equal(t, anthropicsdk.MessageParamRoleUser, params.Messages[0].Role)
	assert.Equal(t, anthropicsdk.MessageParamRoleAssistant, params.Messages[1].Role)
}

func TestMessageParams_TextBecomesSystemBlock(t *testing.T) {
	params, err := anthropic.MessageParams("claude-sonnet-4-5", 1024, prompt.Text("act as a judge"))
	require.NoError(t, err)

	assert.Equal(t, int64(1024), params.MaxTokens)
	require.Len(t, params.System, 1)
	assert.Equal(t, "act as a judge", params.System[0].Text)
	assert.Empty(t, params.Messages)
}

func TestMessageParams_ToolAndRecipientAreNormalized(t *testing.T) {
	params, err := anthropic.MessageParams("claude-sonnet-4-5", 0, prompt.Chat(
		prompt.Message{Role: prompt.RoleTool, Name: "calc", Content: "4"},
		prompt.Message{Role: prompt.RoleAssistant, Recipient: "user", Content: "hi"},
	))
	require.NoError(t, err)
	require.Len(t, params.Messages, 2)

	for i, want := range []string{"Tool (calc): 4", "To user: hi"} {
		msg := params.Messages[i]
		assert.Equal(t, anthropicsdk.MessageParamRoleAssistant, msg.Role)
		require.Len(t, msg.Content, 1)
		require.NotNil(t, msg.Content[0].OfText)
		assert.Equal(t, want, msg.Content[0].OfText.Text)
	}
}

func TestMessageParams_UnknownRoleFails(t *testing.T) {
	_, err := anthropic.MessageParams("claude-sonnet-4-5", 0, prompt.Chat(
		prompt.Message{Role: "critic", Content: "nope"},
	))
	require.Error(t, err)
	assert.True(t, promptserr.HasCode(err, promptserr.CodeShapeRoleUnsupported))
}

func TestMessageParams_OpaqueFails(t *testing.T) {
	_, err := anthropic.MessageParams("claude-sonnet-4-5", 0, prompt.Opaque([]int{1, 2}))
	require.Error(t, err)
	assert.True(t, promptserr.IsInvalidInput(err))
}
