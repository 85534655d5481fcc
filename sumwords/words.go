// Word tables for Russian amount-to-text conversion.
package sumwords

import "github.com/nook-ru/sum-in-words/plural"

const (
	// maxScale is the index of the largest named scale (дециллион, 10^33).
	maxScale = 11

	// maxDigits is the longest integer part that fits the scale table.
	maxDigits = 3 * (maxScale + 1)

	groupSize = 3

	wordZero  = "ноль"
	wordMinus = "минус"
)

// units is indexed by gender, then by digit (1–9); index 0 is unused.
var units = [3][10]string{
	Masculine: {"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"},
	Feminine:  {"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"},
	Neuter:    {"", "одно", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"},
}

// teens is indexed by n-10 for n in [10, 19].
var teens = [10]string{
	"десять",
	"одиннадцать",
	"двенадцать",
	"тринадцать",
	"четырнадцать",
	"пятнадцать",
	"шестнадцать",
	"семнадцать",
	"восемнадцать",
	"девятнадцать",
}

// tens is indexed by tens digit (2–9); indexes 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"двадцать",
	"тридцать",
	"сорок",
	"пятьдесят",
	"шестьдесят",
	"семьдесят",
	"восемьдесят",
	"девяносто",
}

// hundreds is indexed by hundreds digit (1–9); index 0 is unused.
var hundreds = [10]string{
	"",
	"сто",
	"двести",
	"триста",
	"четыреста",
	"пятьсот",
	"шестьсот",
	"семьсот",
	"восемьсот",
	"девятьсот",
}

// scales lists the power-of-1000 words by scale index.
// Index 0 is the currency's major unit and is filled in per call.
var scales = [maxScale + 1]Word{
	{},
	{Forms: plural.Forms{"тысяча", "тысячи", "тысяч"}, Gender: Feminine},                      // 10^3
	{Forms: plural.Forms{"миллион", "миллиона", "миллионов"}, Gender: Masculine},             // 10^6
	{Forms: plural.Forms{"миллиард", "миллиарда", "миллиардов"}, Gender: Masculine},          // 10^9
	{Forms: plural.Forms{"триллион", "триллиона", "триллионов"}, Gender: Masculine},          // 10^12
	{Forms: plural.Forms{"квадриллион", "квадриллиона", "квадриллионов"}, Gender: Masculine}, // 10^15
	{Forms: plural.Forms{"квинтиллион", "квинтиллиона", "квинтиллионов"}, Gender: Masculine}, // 10^18
	{Forms: plural.Forms{"секстиллион", "секстиллиона", "секстиллионов"}, Gender: Masculine}, // 10^21
	{Forms: plural.Forms{"септиллион", "септиллиона", "септиллионов"}, Gender: Masculine},    // 10^24
	{Forms: plural.Forms{"октиллион", "октиллиона", "октиллионов"}, Gender: Masculine},       // 10^27
	{Forms: plural.Forms{"нониллион", "нониллиона", "нониллионов"}, Gender: Masculine},       // 10^30
	{Forms: plural.Forms{"дециллион", "дециллиона", "дециллионов"}, Gender: Masculine},       // 10^33
}
