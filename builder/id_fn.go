// Package builder: node label schemes (IDFn implementations).
package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a node index to its label. It must be deterministic.
type IDFn func(idx int) string

// DefaultIDFn renders idx in base 10 ("0","1",...). Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn maps 0..25 to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// AlphanumericIDFn renders idx in base 36. Panics on negative idx.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn renders spreadsheet columns ("A".."Z","AA",...).
// Panics on negative idx.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns labels prefix+idx ("n0","n1",...).
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithPrefixIDs labels nodes prefix+idx.
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithDefaultIDs restores decimal labels.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs labels nodes "A".."Z".
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs labels nodes like spreadsheet columns.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithAlphanumericIDs labels nodes in base 36.
func WithAlphanumericIDs() BuilderOption {
	return WithIDScheme(AlphanumericIDFn)
}
