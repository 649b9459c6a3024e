package turtle

import "sync"

// Byte class flags for the 256-entry classification table.
const (
	classWS uint8 = 1 << iota
	classDigit
	classAlpha
	classHex
	classPNLocal   // ASCII continuation chars of prefixed-name parts
	classIRIUnsafe // bytes forbidden inside an IRI reference
)

var (
	classTab  [256]uint8
	classOnce sync.Once
)

// buildClassTab fills the classification table. It runs once, lazily,
// before the first character is classified.
func buildClassTab() {
	for _, ch := range []byte{' ', '\t', '\r', '\n'} {
		classTab[ch] |= classWS
	}
	for ch := byte('0'); ch <= '9'; ch++ {
		classTab[ch] |= classDigit | classHex | classPNLocal
	}
	for ch := byte('a'); ch <= 'z'; ch++ {
		classTab[ch] |= classAlpha | classPNLocal
	}
	for ch := byte('A'); ch <= 'Z'; ch++ {
		classTab[ch] |= classAlpha | classPNLocal
	}
	for ch := byte('a'); ch <= 'f'; ch++ {
		classTab[ch] |= classHex
	}
	for ch := byte('A'); ch <= 'F'; ch++ {
		classTab[ch] |= classHex
	}
	classTab['_'] |= classPNLocal
	classTab['-'] |= classPNLocal

	// IRI references reject controls, whitespace, and <>"{}|^`\ inline.
	for ch := 0; ch <= 0x20; ch++ {
		classTab[ch] |= classIRIUnsafe
	}
	for _, ch := range []byte{'<', '>', '"', '{', '}', '|', '^', '`', '\\'} {
		classTab[ch] |= classIRIUnsafe
	}
}

func isClass(ch byte, mask uint8) bool {
	classOnce.Do(buildClassTab)
	return classTab[ch]&mask != 0
}

func isWhitespace(ch byte) bool { return isClass(ch, classWS) }
func isDigit(ch byte) bool      { return isClass(ch, classDigit) }
func isAlpha(ch byte) bool      { return isClass(ch, classAlpha) }
func isHexDigit(ch byte) bool   { return isClass(ch, classHex) }
func isPNLocal(ch byte) bool    { return isClass(ch, classPNLocal) }
func isIRIUnsafe(ch byte) bool  { return isClass(ch, classIRIUnsafe) }

// isPNCharsBase covers the PN_CHARS_BASE production for non-ASCII runes;
// ASCII goes through the table.
func isPNCharsBase(r rune) bool {
	if r < 0x80 {
		return isAlpha(byte(r))
	}
	switch {
	case r >= 0x00C0 && r <= 0x00D6,
		r >= 0x00D8 && r <= 0x00F6,
		r >= 0x00F8 && r <= 0x02FF,
		r >= 0x0370 && r <= 0x037D,
		r >= 0x037F && r <= 0x1FFF,
		r >= 0x200C && r <= 0x200D,
		r >= 0x2070 && r <= 0x218F,
		r >= 0x2C00 && r <= 0x2FEF,
		r >= 0x3001 && r <= 0xD7FF,
		r >= 0xF900 && r <= 0xFDCF,
		r >= 0xFDF0 && r <= 0xFFFD,
		r >= 0x10000 && r <= 0xEFFFF:
		return true
	}
	return false
}

// isPNChars covers the PN_CHARS production: PN_CHARS_BASE plus '_', '-',
// digits, and a few combining ranges.
func isPNChars(r rune) bool {
	if r < 0x80 {
		return isPNLocal(byte(r))
	}
	if isPNCharsBase(r) {
		return true
	}
	switch {
	case r == 0x00B7,
		r >= 0x0300 && r <= 0x036F,
		r >= 0x203F && r <= 0x2040:
		return true
	}
	return false
}
