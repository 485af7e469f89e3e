// Package conv provides checked integer conversions.
//
// They guard the integer fields of persisted headers: lengths read from disk
// are untrusted, and lengths written to disk must fit their field width.
// Conversions that are safe by construction use plain casts instead.
package conv
