// Package arabic provides text normalization helpers for classical Arabic
// source pages: Arabic-Indic numeral conversion, footnote and editorial
// noise removal, and optional diacritic stripping.
package arabic

import "strings"

// digitMap maps the ten Arabic-Indic digit code points (U+0660–U+0669) to
// their ASCII equivalents. All other runes pass through unchanged.
var digitMap = map[rune]rune{
	'٠': '0',
	'١': '1',
	'٢': '2',
	'٣': '3',
	'٤': '4',
	'٥': '5',
	'٦': '6',
	'٧': '7',
	'٨': '8',
	'٩': '9',
}

// NormalizeDigits replaces every Arabic-Indic digit in s with its ASCII
// equivalent. ASCII digits are fixed points; the function is pure and total.
func NormalizeDigits(s string) string {
	if !strings.ContainsFunc(s, isArabicDigit) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if d, ok := digitMap[r]; ok {
			return d
		}
		return r
	}, s)
}

func isArabicDigit(r rune) bool {
	return r >= '٠' && r <= '٩'
}
