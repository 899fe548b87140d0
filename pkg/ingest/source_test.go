package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	rows, err := ReadRows("testdata/characters.csv")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	// ragged rows keep their original cell count
	assert.Equal(t, "Characters", rows[0].Cell(0))
	assert.Equal(t, "8", rows[1].Cell(2))
	assert.Equal(t, "Mario", rows[2].Cell(2))
	// out of range cells read as empty
	assert.Equal(t, "", rows[2].Cell(40))
}

func TestReadRows_MissingFile(t *testing.T) {
	_, err := ReadRows("testdata/missing.csv")
	assert.Error(t, err)
}

func TestReadRows_EndToEndCharacters(t *testing.T) {
	rows, err := ReadRows("testdata/characters.csv")
	require.NoError(t, err)

	got, err := NewCharacterParser(DefaultTables()).Parse(rows)
	require.NoError(t, err)
	require.Len(t, got, 4)

	ids := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	assert.Equal(t, []string{"mario", "luigi", "peach", "donkey-kong"}, ids)
	for _, c := range got[1:] {
		assert.Equal(t, got[0].StatBlock, c.StatBlock)
	}
}
