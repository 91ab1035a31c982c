package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tacklehire/internal/domain"
)

func TestDefault(t *testing.T) {
	cat := Default()

	t.Run("Has the full price list", func(t *testing.T) {
		assert.Len(t, cat.Codes(), 11)
	})

	t.Run("Lookup is case-insensitive", func(t *testing.T) {
		entry, ok := cat.Lookup("dch")
		require.True(t, ok)
		assert.Equal(t, "DCH", entry.Code)
		assert.Equal(t, "Day chairs", entry.Name)
		assert.Equal(t, 1500, entry.DailyPence)

		entry, ok = cat.Lookup(" Bbt ")
		require.True(t, ok)
		assert.Equal(t, "Bait Boat", entry.Name)
	})

	t.Run("Unknown code is absent, not an error", func(t *testing.T) {
		_, ok := cat.Lookup("XXX")
		assert.False(t, ok)
	})

	t.Run("Codes keep price-list order", func(t *testing.T) {
		codes := cat.Codes()
		assert.Equal(t, "DCH", codes[0])
		assert.Equal(t, "STV", codes[10])
	})
}

func TestNew(t *testing.T) {
	t.Run("Normalises codes to upper case", func(t *testing.T) {
		cat, err := New([]domain.CatalogEntry{{Code: "abc", Name: "Thing", DailyPence: 100}})
		require.NoError(t, err)
		_, ok := cat.Lookup("ABC")
		assert.True(t, ok)
	})

	t.Run("Rejects empty list", func(t *testing.T) {
		_, err := New(nil)
		assert.Error(t, err)
	})

	t.Run("Rejects duplicate codes", func(t *testing.T) {
		_, err := New([]domain.CatalogEntry{
			{Code: "DCH", Name: "Day chairs", DailyPence: 1500},
			{Code: "dch", Name: "Duplicate", DailyPence: 100},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate code")
	})

	t.Run("Rejects missing name", func(t *testing.T) {
		_, err := New([]domain.CatalogEntry{{Code: "ABC", Name: " ", DailyPence: 100}})
		assert.Error(t, err)
	})

	t.Run("Rejects negative price", func(t *testing.T) {
		_, err := New([]domain.CatalogEntry{{Code: "ABC", Name: "Thing", DailyPence: -1}})
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("Loads a valid price list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		content := `items:
  - { code: DCH, name: Day chairs, daily_pence: 1500 }
  - { code: BCH, name: Bed chairs, daily_pence: 2500 }
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cat, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"DCH", "BCH"}, cat.Codes())

		entry, ok := cat.Lookup("bch")
		require.True(t, ok)
		assert.Equal(t, 2500, entry.DailyPence)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("items: [not closed"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse catalog file")
	})

	t.Run("Empty items list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("items: []"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEntriesReturnsCopy(t *testing.T) {
	cat := Default()
	entries := cat.Entries()
	entries[0].Name = "mutated"

	entry, ok := cat.Lookup("DCH")
	require.True(t, ok)
	assert.Equal(t, "Day chairs", entry.Name)
}
