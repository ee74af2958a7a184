// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sigil Contributors

package google_test

import (
	"testing"

	"github.com/sigil-dev/promptshape/pkg/prompt"
	"github.com/sigil-dev/promptshape/internal/shape/google"
	promptserr "github.com/sigil-dev/promptshape/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_RolesAndSystemInstruction(t *testing.T) {
	contents, cfg, err := google.Request(prompt.Chat(
		prompt.Message{Role: prompt.RoleSystem, Content: "be terse"},
		prompt.Message{Role: prompt.RoleUser, Content: "Hi"},
		prompt.Message{Role: prompt.RoleAssistant, Content: "Hello"},
	))
	require.NoError(t, err)

	require.NotNil(t, cfg.SystemInstruction)
	require.Len(t, cfg.SystemInstruction.Parts, 1)
	assert.Equal(t, "be terse", cfg.SystemInstruction.Parts[0].Text)

	require.Len(t, contents, 2)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "Hi", contents[0].Parts[0].Text)
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, "Hello", contents[1].Parts[0].Text)
}

func TestRequest_TextBecomesSystemInstruction(t *testing.T) {
	contents, cfg, err := google.Request(prompt.Text("act as a judge"))
	require.NoError(t, err)

	require.NotNil(t, cfg.SystemInstruction)
	assert.Equal(t, "act as a judge", cfg.SystemInstruction.Parts[0].Text)
	assert.Empty(t, contents)
}

func TestRequest_NormalizesToolMessages(t *testing.T) {
	contents, _, err := google.Request(prompt.Chat(
		prompt.Message{Role: prompt.RoleTool, Name: "calc", Content: "4"},
	))
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, "model", contents[0].Role)
	assert.Equal(t, "Tool (calc): 4", contents[0].Parts[0].Text)
}

func TestRequest_UnknownRoleFails(t *testing.T) {
	_, _, err := google.Request(prompt.Chat(
		prompt.Message{Role: "critic", Content: "nope"},
	))
	require.Error(t, err)
	assert.True(t, promptserr.HasCode(err, promptserr.CodeShapeRoleUnsupported))
}
