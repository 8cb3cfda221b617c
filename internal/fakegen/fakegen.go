// Package fakegen wraps third-party fake-data libraries behind a single
// FieldGenerator interface and hands out locale- and seed-scoped handles.
//
// Two backends exist: "modern" on gofakeit v6 and "legacy" on go-faker v4.
// Builders only see FieldGenerator, so the library choice is a startup
// setting rather than something every call site has to know about.
package fakegen

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"
)

// Backend names accepted by New.
const (
	BackendModern = "modern"
	BackendLegacy = "legacy"
)

// ErrUnknownBackend is returned by New when no fake-data library is
// registered under the requested name.
var ErrUnknownBackend = errors.New("unknown fake-data backend")

// FieldGenerator is the set of semantic field generators the identity
// builders compose. An empty string means the backend cannot produce the
// field; callers emit it as absent.
type FieldGenerator interface {
	FirstName() string
	LastName() string
	Username() string
	DomainName() string
	Email() string
	URL() string
	Phone() string

	StreetAddress() string
	City() string
	State() string
	ZipCode() string
	Country() string
	CountryCode() string

	Gender() string
	JobTitle() string
	Company() string
	CatchPhrase() string
	BuzzPhrase() string
	Department() string

	CreditCardNumber() string
	CreditCardCVV() string
	AccountNumber() string
	RoutingNumber() string
	BitcoinAddress() string

	Noun() string
	Adjective() string
	HackerNoun() string
	HackerVerb() string
	Sentence() string
	UUID() string
	Alphanumeric(n int) string
}

// opener builds a backend over rng and returns a release func that undoes
// any process-wide state the backend touched.
type opener func(rng *rand.Rand) (FieldGenerator, func())

// Source produces Handles for one backend.
type Source struct {
	backend string
	open    opener
}

// New returns a Source for the named backend. An empty name selects the
// modern backend.
func New(backend string) (*Source, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendModern:
		return &Source{backend: BackendModern, open: openModern}, nil
	case BackendLegacy:
		return &Source{backend: BackendLegacy, open: openLegacy}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Backend reports the backend name.
func (s *Source) Backend() string {
	return s.backend
}

// Acquire returns a fresh generator for locale, seeded with seed when it is
// non-nil. Unknown locales fall back to the default locale. The handle must
// be closed once the record is built.
func (s *Source) Acquire(locale string, seed *int64) *Handle {
	loc := ResolveLocale(locale)

	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	} else {
		rng = rand.New(rand.NewSource(randomSeed()))
	}

	gen, release := s.open(rng)
	if c := corpusFor(loc); c != nil {
		gen = &localized{FieldGenerator: gen, c: c, rng: rng}
	}

	return &Handle{
		FieldGenerator: gen,
		locale:         loc,
		rng:            rng,
		release:        release,
	}
}

// Handle is a single-use generator scoped to one locale and seed. Every
// random decision made through it, including the helpers below, draws from
// the same seeded stream.
type Handle struct {
	FieldGenerator

	locale  string
	rng     *rand.Rand
	once    sync.Once
	release func()
}

// Locale reports the resolved locale code.
func (h *Handle) Locale() string {
	return h.locale
}

// Close releases backend state. It is safe to call more than once.
func (h *Handle) Close() {
	h.once.Do(func() {
		if h.release != nil {
			h.release()
		}
	})
}

// IntRange returns a uniform integer in [lo, hi].
func (h *Handle) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + h.rng.Intn(hi-lo+1)
}

// Chance reports true with probability p.
func (h *Handle) Chance(p float64) bool {
	return h.rng.Float64() < p
}

// Pick returns a uniformly chosen element of items, or "" if items is empty.
func (h *Handle) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[h.rng.Intn(len(items))]
}

// Shuffle returns a shuffled copy of items.
func (h *Handle) Shuffle(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	h.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Digits returns n random decimal digits.
func (h *Handle) Digits(n int) string {
	return digits(h.rng, n)
}

// DateBetween returns a time uniformly distributed in [from, to).
func (h *Handle) DateBetween(from, to time.Time) time.Time {
	span := to.Sub(from)
	if span <= 0 {
		return from
	}
	return from.Add(time.Duration(h.rng.Int63n(int64(span))))
}

// UsernameFor suggests a username built from a name, in one of the shapes
// "first12", "first.last", "first_last" or "first.last34". Spaces and
// apostrophes are dropped from the name parts.
func (h *Handle) UsernameFor(first, last string) string {
	first, last = nameToken(first), nameToken(last)
	sep := h.Pick([]string{".", "_"})
	switch h.rng.Intn(3) {
	case 0:
		return first + strconv.Itoa(h.rng.Intn(100))
	case 1:
		return first + sep + last
	default:
		return first + sep + last + strconv.Itoa(h.rng.Intn(100))
	}
}

func nameToken(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\'' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// IBAN returns an IBAN for country with valid check digits.
func (h *Handle) IBAN(country string) string {
	return iban(h.rng, country)
}

// ParseSeed interprets s as a base-10 integer seed. ok is false when s is
// empty or not an integer, in which case output is not reproducible.
func ParseSeed(s string) (seed int64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func digits(rng *rand.Rand, n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + rng.Intn(10))
	}
	return string(buf)
}

// randomSeed draws an unpredictable seed for unseeded handles.
func randomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
