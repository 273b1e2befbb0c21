package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{name: "fork", lang: "de", want: "Gabel"},
		{name: "spoon", lang: "de", want: "Löffel"},
		{name: "door", lang: "DE", want: "Tür"},
		{name: "Window", lang: "de", want: "Fenster"},
		{name: "giraffe", lang: "de", want: "Giraffe"},
		{name: "fork", lang: "en", want: "Fork"},
		{name: "tREE", lang: "en", want: "Tree"},
		{name: "x", lang: "", want: "X"},
		{name: "  ", lang: "de", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.name, tt.lang))
		})
	}
}

func TestLabel_EveryDefaultWordIsTranslated(t *testing.T) {
	seen := map[string]bool{}
	for _, w := range DefaultWords {
		label := Label(w, "de")
		_, ok := translations["de"][w]
		assert.True(t, ok, "no German label for %q", w)
		assert.False(t, seen[label], "duplicate label %q", label)
		seen[label] = true
	}
	assert.Len(t, seen, 20)
}
