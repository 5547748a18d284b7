// internal/extractor/taadil_terms.go
package extractor

import "github.com/maktabah/rijal/internal/domain"

// defaultTaadilTerms is the curated approval (taʿdīl) lexicon: evaluative
// phrases the classical critics used to affirm a narrator's reliability,
// each mapped to its canonical English label. The list merges two
// historical variants of the term inventory; order is significant
// (judgements are emitted in declaration order) and a repeated term keeps
// its position while taking the later label.
//
// Compound grades are listed before their components so both surface in a
// match: "ثقة ثبت" textually contains "ثقة" and "ثبت", and all three are
// reported when the compound appears.
var defaultTaadilTerms = []domain.LexiconEntry{
	{Term: "ثقة ثقة", Label: "Thiqa Thiqa"},
	{Term: "ثقة ثبت", Label: "Thiqa Thabt"},
	{Term: "ثقة حافظ", Label: "Thiqa Hafiz"},
	{Term: "إمام حافظ", Label: "Imam Hafiz"},
	{Term: "حجة", Label: "Hujjah"},
	{Term: "ثقة", Label: "Thiqa"},
	{Term: "ثبت", Label: "Thabt"},
	{Term: "صدوق", Label: "Saduq"},
	{Term: "لا بأس به", Label: "La ba's bihi"},
	{Term: "محله الصدق", Label: "Truthful"},
	{Term: "صالح الحديث", Label: "Salih al-Hadith"},
	{Term: "يكتب حديثه", Label: "His hadith is written"},
	{Term: "صدوق يهم", Label: "Saduq (but makes mistakes)"},
	{Term: "صالح", Label: "Salih"},
	{Term: "شيخ", Label: "Shaykh"},
	{Term: "وسط", Label: "Average"},
	{Term: "صالح الحديث", Label: "Salih al-hadith"},
	// Second variant of the inventory.
	{Term: "حافظ", Label: "Hafiz"},
	{Term: "متقن", Label: "Mutqin"},
	{Term: "ضابط", Label: "Dabit"},
	{Term: "عدل", Label: "Adl"},
	{Term: "مأمون", Label: "Ma'mun"},
	{Term: "إمام", Label: "Imam"},
	{Term: "عابد", Label: "Abid"},
	{Term: "فاضل", Label: "Fadil"},
	{Term: "مقبول", Label: "Maqbul"},
	{Term: "رجل صالح", Label: "Rajul Salih"},
	{Term: "لا بأس", Label: "La ba's"},
	{Term: "ما بال به", Label: "Ma bal bihi"},
	{Term: "صدق", Label: "Sidq"},
}

// DefaultTaadilLexicon builds the built-in approval lexicon.
func DefaultTaadilLexicon() *domain.Lexicon {
	return domain.NewLexicon(defaultTaadilTerms...)
}
