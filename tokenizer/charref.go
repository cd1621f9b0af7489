package tokenizer

import (
	"unicode"

	"github.com/MeKo-Christian/htmltok/internal/constants"
)

// consumeCharacterReference implements the character reference consumption
// algorithm (WHATWG "character reference state" and its numeric/named
// sub-states), invoked at the point an '&' is seen in text, RCDATA, or an
// attribute value. It consumes additional input directly from the cursor
// and returns the runes to append in place of the ampersand.
//
// This is written as a subroutine called at the '&' rather than as states
// dispatched from step() because the reference grammar always resumes the
// caller's mode (data/RCDATA/attribute-value) once it finishes — there is
// no separate token boundary to cross. golang.org/x/net/html's tokenizer
// takes the same approach for the same reason; see DESIGN.md.
func (t *Tokenizer) consumeCharacterReference(inAttribute bool) []rune {
	c, ok := t.peek(0)
	if !ok {
		return []rune{'&'}
	}

	if c == '#' {
		return t.consumeNumericCharacterReference()
	}

	if constants.IsASCIIAlphaNum(c) {
		if runes, matched := t.consumeNamedCharacterReference(inAttribute); matched {
			return runes
		}
		return []rune{'&'}
	}

	return []rune{'&'}
}

// consumeNamedCharacterReference performs the longest-match lookup against
// constants.NamedEntities, consuming input as it scans. A semicolon is
// required unless the matched name is in LegacyEntities and (in an
// attribute) the character immediately following the match isn't '=' or
// alphanumeric — per the spec's "ambiguous ampersand in attribute" rule.
func (t *Tokenizer) consumeNamedCharacterReference(inAttribute bool) ([]rune, bool) {
	// Gather the longest run of alphanumerics (plus an optional trailing ';')
	// that could possibly match, then find the longest prefix present in the
	// table — this is the longest-match-with-backtrack the spec requires.
	var candidate []rune
	offset := 0
	for {
		c, ok := t.peek(offset)
		if !ok || !(constants.IsASCIIAlphaNum(c) || c == ';') {
			break
		}
		candidate = append(candidate, c)
		offset++
		if c == ';' {
			break
		}
	}
	if len(candidate) == 0 {
		return nil, false
	}

	bestLen := 0
	bestValue := ""
	bestHasSemicolon := false
	for n := len(candidate); n > 0; n-- {
		name := string(candidate[:n])
		plain := name
		hasSemi := false
		if name[len(name)-1] == ';' {
			plain = name[:len(name)-1]
			hasSemi = true
		}
		if value, ok := constants.NamedEntities[plain]; ok {
			bestLen = n
			bestValue = value
			bestHasSemicolon = hasSemi
			break
		}
	}
	if bestLen == 0 {
		t.emitError("unknown-named-character-reference")
		return nil, false
	}

	name := string(candidate[:bestLen])
	plainName := name
	if bestHasSemicolon {
		plainName = name[:len(name)-1]
	}

	if !bestHasSemicolon {
		if !constants.LegacyEntities[plainName] {
			t.emitError("missing-semicolon-after-character-reference")
		} else if inAttribute {
			next, ok := t.peek(bestLen)
			if ok && (next == '=' || constants.IsASCIIAlphaNum(next)) {
				// Ambiguous ampersand: treat the whole thing as literal.
				return nil, false
			}
		}
	}

	for i := 0; i < bestLen; i++ {
		_, _ = t.getChar()
	}
	return []rune(bestValue), true
}

// consumeNumericCharacterReference implements the numeric-character-reference
// family of states: hexadecimal-/decimal-character-reference-start,
// hexadecimal-/decimal-character-reference, and
// numeric-character-reference-end.
func (t *Tokenizer) consumeNumericCharacterReference() []rune {
	_, _ = t.getChar() // consume '#'

	isHex := false
	if c, ok := t.peek(0); ok && (c == 'x' || c == 'X') {
		isHex = true
		_, _ = t.getChar()
	}

	var digits []rune
	if isHex {
		for {
			c, ok := t.peek(0)
			if !ok || !isHexDigit(c) {
				break
			}
			digits = append(digits, c)
			_, _ = t.getChar()
		}
	} else {
		for {
			c, ok := t.peek(0)
			if !ok || c < '0' || c > '9' {
				break
			}
			digits = append(digits, c)
			_, _ = t.getChar()
		}
	}

	if len(digits) == 0 {
		t.emitError("absence-of-digits-in-numeric-character-reference")
		prefix := []rune{'&', '#'}
		if isHex {
			if c, ok := t.peek(-1); ok {
				prefix = append(prefix, c)
			}
		}
		return prefix
	}

	if c, ok := t.peek(0); ok && c == ';' {
		_, _ = t.getChar()
	} else {
		t.emitError("missing-semicolon-after-character-reference")
	}

	base := 10
	if isHex {
		base = 16
	}
	cp := 0
	for _, d := range digits {
		cp = cp*base + hexDigitValue(d)
		if cp > 0x10FFFF {
			cp = 0x10FFFF + 1 // clamp past range, still triggers out-of-range below
		}
	}

	return []rune{t.resolveNumericCodepoint(cp)}
}

func (t *Tokenizer) resolveNumericCodepoint(cp int) rune {
	if cp == 0 {
		t.emitError("null-character-reference")
		return unicode.ReplacementChar
	}
	if cp > 0x10FFFF {
		t.emitError("character-reference-outside-unicode-range")
		return unicode.ReplacementChar
	}
	if cp >= 0xD800 && cp <= 0xDFFF {
		t.emitError("surrogate-character-reference")
		return unicode.ReplacementChar
	}
	if replacement, ok := constants.NumericReplacements[cp]; ok {
		t.emitError("control-character-reference")
		return replacement
	}
	if isNoncharacter(cp) {
		t.emitError("noncharacter-character-reference")
		return rune(cp)
	}
	if isControlReference(cp) {
		t.emitError("control-character-reference")
	}
	return rune(cp)
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexDigitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

func isNoncharacter(cp int) bool {
	if cp >= 0xFDD0 && cp <= 0xFDEF {
		return true
	}
	low16 := cp & 0xFFFF
	return low16 == 0xFFFE || low16 == 0xFFFF
}

func isControlReference(cp int) bool {
	if cp >= 0x0001 && cp <= 0x001F {
		return cp != 0x0009 && cp != 0x000A && cp != 0x000C
	}
	return cp >= 0x007F && cp <= 0x009F
}
