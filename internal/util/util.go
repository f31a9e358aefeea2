// Package util provides small shared helpers for hashing and time.
package util

import (
	"encoding/hex"
	"time"

	"lukechampine.com/blake3"
)

// Blake3HashHex computes the BLAKE3 hash of content and returns it as hex.
func Blake3HashHex(content []byte) string {
	sum := blake3.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// NowMs returns the current time in milliseconds since epoch.
func NowMs() int64 {
	return time.Now().UnixMilli()
}
