package catalog

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"

	"github.com/poiesic/rankit"
)

// ID is a unique identifier for catalog entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// LineItem is a single searchable financial record: a purchase, an
// invoice line, or a recurring charge.
type LineItem struct {
	Id          ID
	Name        string
	Description string // optional free text
	Category    string // optional, e.g. "Hardware", "Services"
	Vendor      string // optional
	AmountCents int64
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// ContentKey returns the string hashed into a content-based ID.
func (li *LineItem) ContentKey() string {
	return li.Name + "|" + li.Vendor + "|" + li.Category
}

// SearchFields returns the ordered named fields the ranking engine
// matches against. Optional fields are absent when empty, so they
// neither match nor appear in matched-field lists.
func (li *LineItem) SearchFields() []rankit.Field {
	return []rankit.Field{
		rankit.NewField("name", li.Name),
		rankit.OptionalField("description", li.Description),
		rankit.OptionalField("category", li.Category),
		rankit.OptionalField("vendor", li.Vendor),
	}
}

// Fields is the canonical rankit extractor for line items.
func Fields(li *LineItem) []rankit.Field {
	return li.SearchFields()
}
