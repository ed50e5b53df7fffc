package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/cheerbot/pkg/domain"
)

func TestLoadPack_Embedded(t *testing.T) {
	p, err := LoadPack("", NewFilter(FilterConfig{}))
	require.NoError(t, err)

	assert.Positive(t, p.Len())
	assert.NotEmpty(t, p.Items(domain.CategoryMotivation))
	assert.NotEmpty(t, p.Items(domain.CategoryWellbeing))
	assert.NotEmpty(t, p.Items(domain.CategoryTeam))
	assert.Len(t, p.Items(""), p.Len(), "empty category returns everything")

	for _, item := range p.Items("") {
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, domain.ProviderLocal, item.Provider)
	}
}

func TestLoadPack_DropsUnsafeItems(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pack.yml")
	data := `
- id: good
  category: motivation
  text: "A perfectly fine message"
- id: bad-term
  category: motivation
  text: "This mentions politics and gets dropped"
- id: bad-emoji
  category: motivation
  text: "Way too shiny 🎈🎉✨"
`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	p, err := LoadPack(file, NewFilter(FilterConfig{}))
	require.NoError(t, err)

	assert.Equal(t, 1, p.Len())
	assert.Equal(t, "good", p.Items(domain.CategoryMotivation)[0].ID)
}

func TestLoadPack_Errors(t *testing.T) {
	f := NewFilter(FilterConfig{})

	_, err := LoadPack(filepath.Join(t.TempDir(), "missing.yml"), f)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("{not yaml list"), 0o600))
	_, err = LoadPack(bad, f)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, os.WriteFile(empty, []byte(`
- id: nope
  category: motivation
  text: "all about politics"
`), 0o600))
	_, err = LoadPack(empty, f)
	assert.Error(t, err, "pack with no usable items fails")
}

func TestPack_AssignsMissingIDs(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pack.yml")
	require.NoError(t, os.WriteFile(file, []byte(`
- category: motivation
  text: "first without id"
- category: motivation
  text: "second without id"
`), 0o600))

	p, err := LoadPack(file, NewFilter(FilterConfig{}))
	require.NoError(t, err)

	items := p.Items(domain.CategoryMotivation)
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}
