// Package codec converts record collections to and from the text
// representation kept in the key-value store (a JSON array per collection).
//
// Decode of an absent or empty key yields an empty collection. Decode of
// malformed text is a hard failure for that read: callers must treat it as
// "store unavailable", never as "collection empty".
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/vijay-pawar-99/CampusHire/internal/shared"
)

// Encode serializes a collection as a JSON array.
func Encode[T any](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array into a collection. Nil or empty input decodes to
// an empty collection; anything unparseable wraps shared.ErrMalformedStore.
func Decode[T any](data []byte) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedStore, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// EncodeOne serializes a single record (used for the session mirror key).
func EncodeOne[T any](record T) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return data, nil
}

// DecodeOne parses a single record. Unlike Decode, empty input is malformed
// here: callers are expected to check key presence first.
func DecodeOne[T any](data []byte) (T, error) {
	var record T
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("%w: %v", shared.ErrMalformedStore, err)
	}
	return record, nil
}
