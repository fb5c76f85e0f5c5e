package idioms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsEmptyDictionary(t *testing.T) {
	dict, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, dict)
	assert.Nil(t, dict.Occurring("break the ice"))
}

func TestLoadAndOccurring(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idioms.json")
	payload := `{
		"Break the Ice": {"expected": "كسر الجليد", "literal": "اكسر الثلج", "category": "idiom"},
		"piece of cake": {"expected": "أمر سهل", "category": "idiom"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	dict, err := Load(path)
	require.NoError(t, err)
	require.Len(t, dict, 2)

	entry, ok := dict["break the ice"]
	require.True(t, ok, "source keys are lowercased on load")
	assert.Equal(t, "كسر الجليد", entry.Expected)

	found := dict.Occurring("It helps to break the ice at the start.")
	assert.Equal(t, []string{"break the ice"}, found)

	assert.Empty(t, dict.Occurring("nothing idiomatic here"))
}
