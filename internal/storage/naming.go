package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Ext returns the final dot-segment of a filename, lowercased and without
// the dot. A name with no dot yields the whole name lowercased.
func Ext(filename string) string {
	parts := strings.Split(filename, ".")
	return strings.ToLower(parts[len(parts)-1])
}

// SafeBaseName strips the extension and replaces every rune outside
// [A-Za-z0-9._-] with '_'. An empty result becomes "file".
func SafeBaseName(filename string) string {
	base := filename
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		base = filename[:idx]
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

// GenerateName builds a collision-resistant storage name for an upload:
// current unix millis, a random hex id, and the sanitized original base,
// keeping the original extension.
func GenerateName(filename string) string {
	return fmt.Sprintf("%d_%s_%s.%s",
		time.Now().UnixMilli(), randomHex(12), SafeBaseName(filename), Ext(filename))
}

// GenerateImageName builds a storage name for an admin image upload where
// the extension is derived from the content type rather than the filename.
func GenerateImageName(ext string) string {
	return fmt.Sprintf("%d_%s.%s", time.Now().UnixMilli(), randomHex(16), ext)
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
