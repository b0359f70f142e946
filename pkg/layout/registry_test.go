package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryCatalog(t *testing.T) {
	r := DefaultRegistry()

	assert.True(t, r.Has(ContentChat))
	assert.True(t, r.Has(ContentTerminal))
	assert.False(t, r.Has(Content("minimap")))

	assert.True(t, r.IsBottom(ContentTerminal))
	assert.False(t, r.IsBottom(ContentChat))

	assert.True(t, r.SupportsFullExpand(ContentChat))
	assert.True(t, r.SupportsFullExpand(ContentPreview))
	assert.False(t, r.SupportsFullExpand(ContentInspector))

	assert.True(t, r.SupportsSplit(ContentDocumentation))
	assert.False(t, r.SupportsSplit(ContentTerminal))
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	d := Descriptor{Content: ContentChat, Title: "Chat"}

	require.NoError(t, r.Register(d))
	assert.ErrorIs(t, r.Register(d), ErrContentAlreadyRegistered)
}

func TestGetUnknownContent(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get(ContentChat)
	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestListOrdering(t *testing.T) {
	r := DefaultRegistry()

	all := r.List()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Priority, all[i].Priority)
	}

	for _, d := range r.ListCategory(CategoryBottom) {
		assert.Equal(t, CategoryBottom, d.Category)
	}
	for _, d := range r.ListCategory(CategorySidebar) {
		assert.Equal(t, CategorySidebar, d.Category)
	}
}

func TestPairing(t *testing.T) {
	r := DefaultRegistry()

	t.Run("first suggestion wins", func(t *testing.T) {
		pair, ok := r.Pairing(ContentChat, nil)
		require.True(t, ok)
		assert.Equal(t, ContentDocumentation, pair)
	})

	t.Run("filter skips suggestions", func(t *testing.T) {
		pair, ok := r.Pairing(ContentChat, func(c Content) bool {
			return c != ContentDocumentation
		})
		require.True(t, ok)
		assert.Equal(t, ContentPreview, pair)
	})

	t.Run("no viable suggestion", func(t *testing.T) {
		_, ok := r.Pairing(ContentChat, func(Content) bool { return false })
		assert.False(t, ok)
	})

	t.Run("unknown content", func(t *testing.T) {
		_, ok := r.Pairing(Content("minimap"), nil)
		assert.False(t, ok)
	})
}
