package phoneme

// Latin letters grouped by sound. "10" is a two-character code unit for
// R; vowels and H, W, Y map to the "." sentinel, which takes part in
// duplicate collapsing and is stripped from the final code.
var latinGroups = func() map[rune]string {
	groups := map[string]string{
		"BPV":      "1",
		"F":        "2",
		"C":        "3",
		"GJ":       "4",
		"KQ":       "5",
		"SXZ":      "6",
		"DT":       "7",
		"L":        "8",
		"MN":       "9",
		"R":        "10",
		"AEIOUHWY": ".",
	}
	m := make(map[rune]string)
	for chars, code := range groups {
		for _, r := range chars {
			m[r] = code
		}
	}
	return m
}()

// Indic script tables. Consonants are grouped by place of articulation
// (velar, palatal, retroflex, dental, labial, then semivowels and
// sibilants); vowels, matras and signs map to the dropped '0' sentinel.
// Characters absent from a table are ignored entirely.

var devanagariTable = buildTable(map[string]byte{
	"अआइईउऊऋएऐओऔऍऑ": '0',
	"ािीुूृेैोौंःँ़्ॅॉ":        '0',
	"कखगघङक़ख़ग़":     '1',
	"चछजझञज़":       '2',
	"टठडढणड़ढ़":       '3',
	"तथदधन":         '4',
	"पफबभमफ़":        '5',
	"यरलवळ":         '6',
	"शषसह":          '7',
})

var bengaliTable = buildTable(map[string]byte{
	"অআইঈউঊঋএঐওঔ": '0',
	"ািীুূৃেৈোৌংঃঁ্":      '0',
	"কখগঘঙ":       '1',
	"চছজঝঞ":       '2',
	"টঠডঢণড়ঢ়":      '3',
	"তথদধন":       '4',
	"পফবভম":       '5',
	"যরলৱয়":       '6',
	"শষসহ":        '7',
})

var tamilTable = buildTable(map[string]byte{
	"அஆஇஈஉஊஎஏஐஒஓஔ": '0',
	"ாிீுூெேைொோௌ்ஃ":         '0',
	"கங":            '1',
	"சஞஜ":           '2',
	"டணழ":           '3',
	"தநனற":          '4',
	"பம":            '5',
	"யரலவள":         '6',
	"ஶஷஸஹ":          '7',
})

// indicTables maps a supported language identifier to its character
// table. Marathi shares the Devanagari script with Hindi.
var indicTables = map[string]map[rune]byte{
	"hi": devanagariTable,
	"mr": devanagariTable,
	"bn": bengaliTable,
	"ta": tamilTable,
}

func buildTable(groups map[string]byte) map[rune]byte {
	m := make(map[rune]byte)
	for chars, code := range groups {
		for _, r := range chars {
			m[r] = code
		}
	}
	return m
}
