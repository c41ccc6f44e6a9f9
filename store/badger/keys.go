package badger

import (
	"fmt"

	"github.com/poiesic/rankit/catalog"
)

// Key prefixes for different data types
const (
	lineItemPrefix     = "litem"
	lineItemNamePrefix = "litemna"
)

// makeLineItemKey generates a key for a line item by ID.
func makeLineItemKey(id catalog.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", lineItemPrefix, id))
}

// makeLineItemNameKey generates a key for the name index.
// Format: prefix:name
func makeLineItemNameKey(name string) []byte {
	prefix := lineItemNamePrefix + ":"
	totalSize := len(prefix) + len(name)
	buf := make([]byte, totalSize)
	offset := copy(buf, []byte(prefix))
	copy(buf[offset:], []byte(name))
	return buf
}
