// Package text holds the rune-level primitives the cursor engine is built on:
// splicing the buffer and locating word boundaries.
package text

import "unicode"

// IsBreak reports whether r delimits words: whitespace, Unicode punctuation,
// or one of the ASCII symbols ($ + < = > ^ ` | ~).
func IsBreak(r rune) bool {
	if unicode.IsSpace(r) || unicode.IsPunct(r) {
		return true
	}
	return r < unicode.MaxASCII && unicode.IsSymbol(r)
}

// WordEnd scans forward from pos. Break runes are skipped until a word has
// been entered; the scan then stops before the first break rune after it.
// Without a further word it returns len(buf).
func WordEnd(buf []rune, pos int) int {
	pos = clamp(pos, len(buf))
	inWord := false
	for ; pos < len(buf); pos++ {
		brk := IsBreak(buf[pos])
		if brk && inWord {
			break
		}
		if !brk {
			inWord = true
		}
	}
	return pos
}

// WordStart is the backward mirror of WordEnd. It stops just after the last
// break rune preceding the word, or at 0.
func WordStart(buf []rune, pos int) int {
	pos = clamp(pos, len(buf))
	inWord := false
	for ; pos > 0; pos-- {
		brk := IsBreak(buf[pos-1])
		if brk && inWord {
			break
		}
		if !brk {
			inWord = true
		}
	}
	return pos
}

// Insert splices ins into buf at pos and returns the resulting slice.
// buf may be modified in place.
func Insert(buf []rune, pos int, ins []rune) []rune {
	if len(ins) == 0 {
		return buf
	}
	pos = clamp(pos, len(buf))
	buf = append(buf, ins...) // grow
	copy(buf[pos+len(ins):], buf[pos:len(buf)-len(ins)])
	copy(buf[pos:], ins)
	return buf
}

// Remove cuts [from, to) out of buf. It returns the shortened slice and a
// copy of the removed runes.
func Remove(buf []rune, from, to int) ([]rune, []rune) {
	from = clamp(from, len(buf))
	to = clamp(to, len(buf))
	if to <= from {
		return buf, nil
	}
	removed := make([]rune, to-from)
	copy(removed, buf[from:to])
	buf = append(buf[:from], buf[to:]...)
	return buf, removed
}

// Clamp bounds pos to [0, size].
func Clamp(pos, size int) int {
	return clamp(pos, size)
}

func clamp(pos, size int) int {
	if pos < 0 {
		return 0
	}
	if pos > size {
		return size
	}
	return pos
}
