package fakegen

import (
	"fmt"
	"math/rand"
	"strings"
)

// DefaultLocale is used whenever a requested locale is not supported.
const DefaultLocale = "en"

// supportedLocales is the closed set of locales, in display order.
var supportedLocales = []string{"en", "nl", "be"}

// Country is a canonical country name and ISO 3166-1 alpha-2 code.
type Country struct {
	Name string
	Code string
}

var countryOverrides = map[string]Country{
	"en": {Name: "United States", Code: "US"},
	"nl": {Name: "Netherlands", Code: "NL"},
	"be": {Name: "Belgium", Code: "BE"},
}

// Locales returns the supported locale codes.
func Locales() []string {
	out := make([]string, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// ResolveLocale normalizes code and falls back to DefaultLocale when it is
// not supported. It never fails.
func ResolveLocale(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range supportedLocales {
		if l == code {
			return l
		}
	}
	return DefaultLocale
}

// CountryOverride returns the canonical country for a locale. ok is false
// when the locale has none.
func CountryOverride(code string) (c Country, ok bool) {
	c, ok = countryOverrides[strings.ToLower(strings.TrimSpace(code))]
	return c, ok
}

// corpus holds locale-specific pools for the fields neither backend
// localizes.
type corpus struct {
	firstNames []string
	lastNames  []string
	streets    []string
	cities     []string
	provinces  []string
	postalCode func(rng *rand.Rand) string
	phone      func(rng *rand.Rand) string
}

func corpusFor(locale string) *corpus {
	switch locale {
	case "nl":
		return &dutchCorpus
	case "be":
		return &flemishCorpus
	}
	return nil
}

// localized overlays a corpus on a backend. Everything not overridden here
// comes from the backend.
type localized struct {
	FieldGenerator
	c   *corpus
	rng *rand.Rand
}

func (l *localized) pick(s []string) string {
	return s[l.rng.Intn(len(s))]
}

func (l *localized) FirstName() string { return l.pick(l.c.firstNames) }
func (l *localized) LastName() string  { return l.pick(l.c.lastNames) }
func (l *localized) City() string      { return l.pick(l.c.cities) }
func (l *localized) State() string     { return l.pick(l.c.provinces) }
func (l *localized) ZipCode() string   { return l.c.postalCode(l.rng) }
func (l *localized) Phone() string     { return l.c.phone(l.rng) }

// StreetAddress renders "<street> <number>" the way Dutch and Belgian
// addresses are written.
func (l *localized) StreetAddress() string {
	return fmt.Sprintf("%s %d", l.pick(l.c.streets), 1+l.rng.Intn(250))
}

func dutchPostalCode(rng *rand.Rand) string {
	const letters = "ABCDEFGHJKLMNPRSTVWXZ"
	return fmt.Sprintf("%d %c%c", 1000+rng.Intn(9000),
		letters[rng.Intn(len(letters))], letters[rng.Intn(len(letters))])
}

func dutchPhone(rng *rand.Rand) string {
	return "+31 6 " + digits(rng, 8)
}

func belgianPostalCode(rng *rand.Rand) string {
	return fmt.Sprintf("%d", 1000+rng.Intn(9000))
}

func belgianPhone(rng *rand.Rand) string {
	return fmt.Sprintf("+32 4%d%d %s %s %s", 7+rng.Intn(3), rng.Intn(10),
		digits(rng, 2), digits(rng, 2), digits(rng, 2))
}
