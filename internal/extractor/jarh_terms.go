// internal/extractor/jarh_terms.go
package extractor

import "github.com/maktabah/rijal/internal/domain"

// defaultJarhTerms is the curated criticism (jarḥ) lexicon. Same ordering
// and overwrite rules as the approval lexicon.
//
// "وسط" appears in both lexicons on purpose: the grade sits on the
// boundary between approval and criticism in the classical scale, and the
// two inventories filed it on opposite sides. An entry containing it
// therefore contributes to both categories.
var defaultJarhTerms = []domain.LexiconEntry{
	{Term: "وسط", Label: "Average"},
	{Term: "ضعيف", Label: "Da'if"},
	{Term: "لين الحديث", Label: "Layyin al-Hadith"},
	{Term: "ليس بالقوي", Label: "Not strong"},
	{Term: "يهم", Label: "Makes mistakes"},
	{Term: "منكر الحديث", Label: "Munkar al-Hadith"},
	{Term: "سيئ الحفظ", Label: "Poor memory"},
	{Term: "متروك", Label: "Matruk"},
	{Term: "متروك الحديث", Label: "Matruk al-Hadith"},
	{Term: "كذاب", Label: "Kadhdhab"},
	{Term: "وضاع", Label: "Fabricator"},
	{Term: "ساقط", Label: "Saqit"},
	{Term: "ضعيف", Label: "Daif"},
	{Term: "ليس بالقوي", Label: "Not strong"},
	{Term: "فيه لين", Label: "Layyin"},
	// Second variant of the inventory.
	{Term: "واه", Label: "Wah"},
	{Term: "ليس بشيء", Label: "Laysa bi-shay'"},
	{Term: "لا يحتج به", Label: "La yuhtajj bihi"},
	{Term: "مجهول", Label: "Majhul"},
	{Term: "ضعفه", Label: "Da'afahu"},
	{Term: "تركه", Label: "Tarakahu"},
	{Term: "فيه ضعف", Label: "Fihi da'f"},
	{Term: "منكر", Label: "Munkar"},
	{Term: "لا يعرف", Label: "La yu'raf"},
	{Term: "مجروح", Label: "Majruh"},
	{Term: "ليس بثقة", Label: "Laysa bi-thiqa"},
	{Term: "ضعيف الحديث", Label: "Da'if al-Hadith"},
}

// DefaultJarhLexicon builds the built-in criticism lexicon.
func DefaultJarhLexicon() *domain.Lexicon {
	return domain.NewLexicon(defaultJarhTerms...)
}
