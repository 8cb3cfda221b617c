package fakegen

import (
	crand "crypto/rand"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/go-faker/faker/v4"
)

// go-faker keeps its random source at package level. legacyMu serializes
// handles so one handle's seed never leaks into another's output.
var legacyMu sync.Mutex

const alnumChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// legacy generates fields with go-faker. Fields the library has no
// generator for are either composed from pools or left empty.
type legacy struct {
	rng  *rand.Rand
	addr *faker.RealAddress
}

func openLegacy(rng *rand.Rand) (FieldGenerator, func()) {
	legacyMu.Lock()
	faker.SetRandomSource(rng)
	faker.SetCryptoSource(rng)

	release := func() {
		faker.SetRandomSource(rand.NewSource(time.Now().UnixNano()))
		faker.SetCryptoSource(crand.Reader)
		legacyMu.Unlock()
	}
	return &legacy{rng: rng}, release
}

// address returns one real address per handle so street, city, state and
// zip stay consistent with each other.
func (l *legacy) address() faker.RealAddress {
	if l.addr == nil {
		a := faker.GetRealAddress()
		l.addr = &a
	}
	return *l.addr
}

func (l *legacy) FirstName() string  { return faker.FirstName() }
func (l *legacy) LastName() string   { return faker.LastName() }
func (l *legacy) Username() string   { return faker.Username() }
func (l *legacy) DomainName() string { return faker.DomainName() }
func (l *legacy) Email() string      { return faker.Email() }
func (l *legacy) URL() string        { return faker.URL() }
func (l *legacy) Phone() string      { return faker.Phonenumber() }

func (l *legacy) StreetAddress() string { return l.address().Address }
func (l *legacy) City() string          { return l.address().City }
func (l *legacy) State() string         { return l.address().State }
func (l *legacy) ZipCode() string       { return l.address().PostalCode }

// go-faker has no country generators.
func (l *legacy) Country() string     { return "" }
func (l *legacy) CountryCode() string { return "" }

func (l *legacy) Gender() string {
	return genders[l.rng.Intn(len(genders))]
}

func (l *legacy) JobTitle() string { return "" }

func (l *legacy) Company() string {
	return faker.LastName() + " " + companySuffixes[l.rng.Intn(len(companySuffixes))]
}

func (l *legacy) CatchPhrase() string { return strings.TrimSuffix(faker.Sentence(), ".") }
func (l *legacy) BuzzPhrase() string  { return strings.TrimSuffix(faker.Sentence(), ".") }
func (l *legacy) Department() string  { return "" }

func (l *legacy) CreditCardNumber() string { return faker.CCNumber() }
func (l *legacy) CreditCardCVV() string    { return digits(l.rng, 3) }
func (l *legacy) AccountNumber() string    { return digits(l.rng, 12) }
func (l *legacy) RoutingNumber() string    { return abaRouting(l.rng) }
func (l *legacy) BitcoinAddress() string   { return "" }

func (l *legacy) Noun() string       { return nouns[l.rng.Intn(len(nouns))] }
func (l *legacy) Adjective() string  { return adjectives[l.rng.Intn(len(adjectives))] }
func (l *legacy) HackerNoun() string { return faker.Word() }
func (l *legacy) HackerVerb() string { return faker.Word() }
func (l *legacy) Sentence() string   { return faker.Sentence() }
func (l *legacy) UUID() string       { return faker.UUIDHyphenated() }

func (l *legacy) Alphanumeric(n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alnumChars[l.rng.Intn(len(alnumChars))]
	}
	return string(buf)
}
