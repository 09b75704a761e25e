package postgres

import (
	"testing"

	"github.com/dom/nba-hub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	token := encodeCursor(playerCursor{LastName: "Jordan", FirstName: "Michael", PlayerID: 893})
	require.NotEmpty(t, token)

	var decoded playerCursor
	require.NoError(t, decodeCursor(token, &decoded))
	assert.Equal(t, "Jordan", decoded.LastName)
	assert.Equal(t, "Michael", decoded.FirstName)
	assert.EqualValues(t, 893, decoded.PlayerID)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	var decoded playerCursor
	assert.ErrorIs(t, decodeCursor("@@@not-base64@@@", &decoded), domain.ErrInvalidCursor)
	assert.ErrorIs(t, decodeCursor("bm90LWpzb24", &decoded), domain.ErrInvalidCursor)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultPageSize, clampLimit(0, defaultPageSize))
	assert.Equal(t, defaultPageSize, clampLimit(-5, defaultPageSize))
	assert.Equal(t, 42, clampLimit(42, defaultPageSize))
	assert.Equal(t, maxPageSize, clampLimit(10_000, defaultPageSize))
}
