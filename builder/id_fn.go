// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a world label from its zero-based index.
// It must be pure: the same idx always yields the same label.
type IDFn func(idx int) string

// DecimalID returns the decimal string of idx: 0→"0", 42→"42".
func DecimalID(idx int) string {
	return strconv.Itoa(idx)
}

// LetterID returns a spreadsheet-style lowercase name: 0→"a", 25→"z", 26→"aa".
// Panics if idx < 0.
func LetterID(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: LetterID: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('a'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixID returns an IDFn producing prefix + decimal index: "w0", "w1", ….
func PrefixID(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: PrefixID: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
