// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hierarchy

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators carry internal buffers and are not safe for concurrent use;
// the shared instance is guarded by a mutex.
var (
	collMu sync.Mutex
	coll   = collate.New(language.Und, collate.IgnoreCase)
)

func compareText(a, b string) int {
	collMu.Lock()
	defer collMu.Unlock()
	return coll.CompareString(a, b)
}

// run is one maximal segment of a title: either all digits or no digits.
type run struct {
	text    string
	numeric bool
}

// NaturalCompare orders titles the way a reader expects: "doc2" before
// "doc10". Titles split into alternating digit and non-digit runs compared
// position-wise. Digit runs compare as integers; other runs compare
// case-insensitively with locale-aware collation. When the runs at a
// position differ in kind, the textual run sorts first. If one title's
// runs are exhausted, the shorter title sorts first.
func NaturalCompare(a, b string) int {
	ra, rb := splitRuns(a), splitRuns(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		x, y := ra[i], rb[i]
		switch {
		case x.numeric && y.numeric:
			if c := compareDigits(x.text, y.text); c != 0 {
				return c
			}
		case x.numeric != y.numeric:
			if x.numeric {
				return 1
			}
			return -1
		default:
			if c := compareText(x.text, y.text); c != 0 {
				return c
			}
		}
	}
	switch {
	case len(ra) < len(rb):
		return -1
	case len(ra) > len(rb):
		return 1
	}
	return 0
}

func splitRuns(s string) []run {
	var runs []run
	for start := 0; start < len(s); {
		numeric := isDigit(s[start])
		end := start
		for end < len(s) && isDigit(s[end]) == numeric {
			end++
		}
		runs = append(runs, run{text: s[start:end], numeric: numeric})
		start = end
	}
	return runs
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// compareDigits compares two digit runs as integers without parsing them:
// strip leading zeros, then a longer run is larger, and equal-length runs
// compare lexically. Runs of any length are safe.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
