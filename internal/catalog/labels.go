package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultWords are the asset names shipped with the game, in probe order.
var DefaultWords = []string{
	"ball", "bed", "book", "car", "cat", "chair", "clock", "cup", "dog", "door",
	"fork", "hat", "house", "knife", "phone", "shoe", "spoon", "table", "tree", "window",
}

var translations = map[string]map[string]string{
	"de": {
		"fork":   "Gabel",
		"knife":  "Messer",
		"spoon":  "Löffel",
		"door":   "Tür",
		"window": "Fenster",
		"ball":   "Ball",
		"house":  "Haus",
		"tree":   "Baum",
		"car":    "Auto",
		"cat":    "Katze",
		"dog":    "Hund",
		"chair":  "Stuhl",
		"table":  "Tisch",
		"cup":    "Tasse",
		"book":   "Buch",
		"clock":  "Uhr",
		"bed":    "Bett",
		"phone":  "Telefon",
		"shoe":   "Schuh",
		"hat":    "Hut",
	},
}

// Label turns an asset name into the label shown to the learner.
// Names without a translation for lang are title-cased: "giraffe" -> "Giraffe".
func Label(name, lang string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if table, ok := translations[strings.ToLower(lang)]; ok {
		if label, ok := table[strings.ToLower(name)]; ok {
			return label
		}
	}
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	return cases.Title(tag).String(name)
}
