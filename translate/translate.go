// Package translate formats user visible messages in the user's language.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// fallback is the language messages are written in.
const fallback = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("retrodbg: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the message language from a preference list of BCP 47
// tags. An empty list selects the fallback language.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{fallback}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
