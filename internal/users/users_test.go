package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sukalov/songform/internal/songform"
)

func TestCurrentSection(t *testing.T) {
	d := NewDraft(1, "someone")
	_, ok := d.CurrentSection()
	assert.False(t, ok)
	assert.Equal(t, StageAskingStructure, d.Stage)

	d.Structure = songform.Parse("1 a b a 2 c 3")
	assert.Equal(t, []string{"a", "b", "c"}, d.Sections())

	d.Section = 2
	section, ok := d.CurrentSection()
	assert.True(t, ok)
	assert.Equal(t, "c", section)

	d.Section = 3
	_, ok = d.CurrentSection()
	assert.False(t, ok)
}
