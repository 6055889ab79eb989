// Package datekey maps between timestamps and the canonical local-date key
// ("YYYY-MM-DD") every session is filed under. Keys are always derived from
// local calendar fields, never from a UTC conversion: shifting to UTC can
// move a late-evening or early-morning workout onto the wrong calendar day.
package datekey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Local returns the date key for t using t's local calendar fields.
func Local(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// FromYMD builds a date key from explicit components. monthIndex is
// zero-based (0 = January), matching how a calendar grid is scanned.
func FromYMD(year, monthIndex, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, monthIndex+1, day)
}

// Parse interprets a date key as local midnight of that calendar day.
// Missing or unparseable month/day components default to 1, so a truncated
// key still resolves to some day rather than failing.
func Parse(key string) time.Time {
	parts := strings.SplitN(key, "-", 3)
	var y, m, d int
	if len(parts) > 0 {
		y, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		d, _ = strconv.Atoi(parts[2])
	}
	if m == 0 {
		m = 1
	}
	if d == 0 {
		d = 1
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
}
