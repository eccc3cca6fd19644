package ident

func within(r, lo, hi rune) bool {
	return r >= lo && r <= hi
}

// IsStart reports whether r may begin a script identifier.
// Underscore is excluded: it is reserved for generated placeholders.
func IsStart(r rune) bool {
	return within(r, 0x0041, 0x005A) || // ASCII upper
		within(r, 0x0061, 0x007A) || // ASCII lower
		within(r, 0x00C0, 0x00D6) ||
		within(r, 0x00D8, 0x00F6) ||
		within(r, 0x00F8, 0x02AF) || // up to spacing modifiers
		within(r, 0x0370, 0x197F) || // broad, known exceptions ignored
		within(r, 0x1E00, 0x1FFF) || // Latin extended additional, Greek extended
		within(r, 0x2160, 0x2188) || // Roman numerals
		within(r, 0x3040, 0x30FF) || // Kana
		within(r, 0xAC00, 0xD7AF) || // Hangul syllables
		within(r, 0x3400, 0x4DBF) || // CJK
		within(r, 0x4E00, 0x9FFF) ||
		within(r, 0xF900, 0xFAFF) ||
		within(r, 0x20000, 0x2CEAF) ||
		within(r, 0x2F800, 0x2FA1F)
}

// IsContinue reports whether r may appear after the first identifier character.
func IsContinue(r rune) bool {
	return IsStart(r) ||
		within(r, 0x0030, 0x0039) || // ASCII digits
		within(r, 0x0300, 0x036F) || // combining diacritical marks
		r == 0x005F || // low line
		r == 0x00B7 // middle dot
}

// Sanitize drops runes until the first valid start rune, then keeps only
// continue runes from the rest of the string.
func Sanitize(name string) []rune {
	var out []rune
	for _, r := range name {
		if len(out) == 0 {
			if IsStart(r) {
				out = append(out, r)
			}
			continue
		}
		if IsContinue(r) {
			out = append(out, r)
		}
	}
	return out
}
