// Package ident generates the composite document identifiers and
// ISO-8601 timestamps used across the store.
package ident

import (
	"time"

	"github.com/google/uuid"
)

const isoFormat = "2006-01-02T15:04:05.000000Z"

// MakeID returns "<prefix>::<uuid4>". The prefix is the document kind
// and is not validated here.
func MakeID(prefix string) string {
	return prefix + "::" + uuid.NewString()
}

// NowISO returns the current UTC time as ISO-8601 with microsecond
// precision and a trailing Z.
func NowISO() string {
	return time.Now().UTC().Format(isoFormat)
}
