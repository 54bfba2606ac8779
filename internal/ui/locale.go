package ui

import (
	"os"

	"github.com/leonelquinteros/gotext"
)

// localeDomain is the .po file name looked up under <dir>/<lang>/.
const localeDomain = "default"

// SetupLocale loads translations for lang from dir. Without a matching
// catalogue gotext returns the source strings, so a missing directory only
// reports false.
func SetupLocale(dir, lang string) bool {
	if _, err := os.Stat(dir); err != nil {
		return false
	}
	gotext.Configure(dir, lang, localeDomain)
	return true
}
