package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItemMUS(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		item := LineItem{
			Id:          IDFromContent("GPU Server Purchase|Supermicro|Hardware"),
			Name:        "GPU Server Purchase",
			Description: "Rack mounted GPU server for the research cluster",
			Category:    "Hardware",
			Vendor:      "Supermicro",
			AmountCents: 1249900,
			InsertedAt:  now,
			UpdatedAt:   now,
		}

		buf := make([]byte, LineItemMUS.Size(item))
		n := LineItemMUS.Marshal(item, buf)
		assert.Equal(t, len(buf), n)

		got, n, err := LineItemMUS.Unmarshal(buf)
		require.NoError(t, err)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, item, got)
	})

	t.Run("zero timestamps survive", func(t *testing.T) {
		item := LineItem{Id: 1, Name: "Misc Charge"}
		buf := make([]byte, LineItemMUS.Size(item))
		LineItemMUS.Marshal(item, buf)

		got, _, err := LineItemMUS.Unmarshal(buf)
		require.NoError(t, err)
		assert.True(t, got.InsertedAt.IsZero())
		assert.True(t, got.UpdatedAt.IsZero())
	})

	t.Run("skip covers the whole record", func(t *testing.T) {
		item := LineItem{Id: 7, Name: "Cloud Hosting", AmountCents: 48200}
		buf := make([]byte, LineItemMUS.Size(item))
		LineItemMUS.Marshal(item, buf)

		n, err := LineItemMUS.Skip(buf)
		require.NoError(t, err)
		assert.Equal(t, len(buf), n)
	})

	t.Run("truncated data fails", func(t *testing.T) {
		item := LineItem{Id: 7, Name: "Cloud Hosting"}
		buf := make([]byte, LineItemMUS.Size(item))
		LineItemMUS.Marshal(item, buf)

		_, _, err := LineItemMUS.Unmarshal(buf[:2])
		assert.Error(t, err)
	})
}
