package sqlite

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// hashContent returns the big-endian hex xxHash of content.
func hashContent(content string) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(content)))
}

// nullable converts an optional string to a column value, nil for NULL.
func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
