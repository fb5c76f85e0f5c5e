package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditsEffortIdentical(t *testing.T) {
	edits, effort := EditsEffort("the cat sat on the mat", "the cat sat on the mat")
	assert.Equal(t, 0, edits)
	assert.Equal(t, 0.0, effort)
}

func TestEditsEffortSingleSubstitution(t *testing.T) {
	edits, effort := EditsEffort("the cat sat on the mat", "the dog sat on the mat")
	assert.Equal(t, 1, edits)
	assert.InDelta(t, 100.0/6.0, effort, 1e-9)
}

func TestEditsEffortSaturates(t *testing.T) {
	edits, effort := EditsEffort("short", "a completely different and much longer replacement text")
	assert.Greater(t, edits, 1)
	assert.Equal(t, 100.0, effort)
}

func TestEditsEffortEmptyDraft(t *testing.T) {
	edits, effort := EditsEffort("", "three new words")
	assert.Equal(t, 3, edits)
	assert.Equal(t, 100.0, effort)

	edits, effort = EditsEffort("", "")
	assert.Equal(t, 0, edits)
	assert.Equal(t, 0.0, effort)
}

func TestEffortMonotonicInEdits(t *testing.T) {
	mt := "one two three four five six seven eight nine ten"
	variants := []string{
		"one two three four five six seven eight nine ten",
		"one two three four five six seven eight nine zzz",
		"one two three four five six seven xxx yyy zzz",
		"aaa bbb ccc ddd five six seven xxx yyy zzz",
	}
	prevEdits := -1
	prevEffort := -1.0
	for _, v := range variants {
		edits, effort := EditsEffort(mt, v)
		assert.Greater(t, edits, prevEdits)
		assert.GreaterOrEqual(t, effort, prevEffort)
		assert.GreaterOrEqual(t, effort, 0.0)
		assert.LessOrEqual(t, effort, 100.0)
		prevEdits, prevEffort = edits, effort
	}
}
