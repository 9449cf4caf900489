package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOwnerURI(t *testing.T) {
	owner, err := parseOwnerURI("codeowner://owners/@org/backend")
	require.NoError(t, err)
	assert.Equal(t, "@org/backend", owner)
}

func TestParseOwnerURISynthetic(t *testing.T) {
	owner, err := parseOwnerURI("codeowner://owners/unowned")
	require.NoError(t, err)
	assert.Equal(t, "unowned", owner)
}

func TestParseOwnerURIWrongScheme(t *testing.T) {
	_, err := parseOwnerURI("file:///etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidURI)
}

func TestParseOwnerURIEmptyOwner(t *testing.T) {
	_, err := parseOwnerURI("codeowner://owners/")
	assert.ErrorIs(t, err, ErrEmptyOwner)
}
