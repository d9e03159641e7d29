package domain

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mosberg/alchemy/internal/identifier"
)

// DisplayName derives a human readable fallback name from an id path,
// e.g. alchemy:beers/coppercap_lager -> "Coppercap Lager"
func DisplayName(id identifier.ID) string {
	base := path.Base(id.Path)
	if base == "." || base == "/" {
		return ""
	}
	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(base))
	return cases.Title(language.English).String(strings.Join(words, " "))
}
