package jpname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonNameScore(t *testing.T) {
	s, err := Shared()
	require.NoError(t, err)

	assert.Greater(t, s.PersonNameScore("山田 太郎"), 0.5)
	assert.Less(t, s.PersonNameScore("基本設計"), 0.5)
	assert.Zero(t, s.PersonNameScore("  "))
}

func TestPersonNameScoreUnspaced(t *testing.T) {
	s, err := Shared()
	require.NoError(t, err)

	assert.Greater(t, s.PersonNameScore("山田太郎"), 0.5)
	assert.Greater(t, s.PersonNameScore("山田 太郎"), s.PersonNameScore("山田 設計"))
}
