// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package catalog

import (
	"fmt"
	"time"
)

// ValidateLineItem validates a LineItem according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - AmountCents must not be negative
//   - InsertedAt must not be in the future
//
// NOT validated:
//   - ID (0 is valid before storage assigns a content-based ID)
//   - Description, Category, Vendor (optional fields)
func ValidateLineItem(item *LineItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidLineItem)
	}

	if item.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidLineItem, ErrEmptyName)
	}

	if item.AmountCents < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidLineItem, ErrNegativeAmount)
	}

	if !IsValidTimestamp(item.InsertedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidLineItem, ErrInvalidTimestamp)
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (zero or not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return ts.IsZero() || !ts.After(time.Now())
}
