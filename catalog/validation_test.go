package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateLineItem(t *testing.T) {
	valid := func() *LineItem {
		return &LineItem{
			Name:        "Cloud Hosting",
			Category:    "Cloud",
			AmountCents: 48200,
		}
	}

	t.Run("valid item", func(t *testing.T) {
		assert.NoError(t, ValidateLineItem(valid()))
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		item := valid()
		item.Description = ""
		item.Category = ""
		item.Vendor = ""
		assert.NoError(t, ValidateLineItem(item))
	})

	t.Run("zero amount is valid", func(t *testing.T) {
		item := valid()
		item.AmountCents = 0
		assert.NoError(t, ValidateLineItem(item))
	})

	t.Run("nil item", func(t *testing.T) {
		err := ValidateLineItem(nil)
		assert.ErrorIs(t, err, ErrInvalidLineItem)
	})

	t.Run("empty name", func(t *testing.T) {
		item := valid()
		item.Name = ""
		err := ValidateLineItem(item)
		assert.ErrorIs(t, err, ErrInvalidLineItem)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("negative amount", func(t *testing.T) {
		item := valid()
		item.AmountCents = -1
		err := ValidateLineItem(item)
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})

	t.Run("future timestamp", func(t *testing.T) {
		item := valid()
		item.InsertedAt = time.Now().Add(time.Hour)
		err := ValidateLineItem(item)
		assert.ErrorIs(t, err, ErrInvalidTimestamp)
	})

	t.Run("past timestamp is valid", func(t *testing.T) {
		item := valid()
		item.InsertedAt = time.Now().Add(-time.Hour)
		assert.NoError(t, ValidateLineItem(item))
	})
}

func TestIsValidTimestamp(t *testing.T) {
	assert.True(t, IsValidTimestamp(time.Time{}))
	assert.True(t, IsValidTimestamp(time.Now().Add(-time.Minute)))
	assert.False(t, IsValidTimestamp(time.Now().Add(time.Minute)))
}
