package identity

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/zarlcorp/zpersona/internal/fakegen"
	"github.com/zarlcorp/zpersona/internal/geoip"
)

var testNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

type fakeLocator struct {
	loc   geoip.Location
	calls int
}

func (f *fakeLocator) Resolve(context.Context) geoip.Location {
	f.calls++
	return f.loc
}

func newTestService(t *testing.T, backend string, opts ...Option) *Service {
	t.Helper()
	src, err := fakegen.New(backend)
	if err != nil {
		t.Fatalf("fakegen.New(%q): %v", backend, err)
	}
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
	}
	return NewService(src, append(base, opts...)...)
}

func generate[T any](t *testing.T, s *Service, kind string, count int, opts Options, seed string) []T {
	t.Helper()
	recs, err := s.Generate(context.Background(), kind, count, opts, seed)
	if err != nil {
		t.Fatalf("Generate(%s): %v", kind, err)
	}
	out := make([]T, len(recs))
	for i, r := range recs {
		v, ok := r.(T)
		if !ok {
			t.Fatalf("record %d is %T", i, r)
		}
		out[i] = v
	}
	return out
}

func TestGenerateUnknownType(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	_, err := s.Generate(context.Background(), "spaceship", 1, Options{}, "")
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
	if !strings.Contains(err.Error(), "spaceship") {
		t.Errorf("error should name the type: %v", err)
	}
}

func TestGenerateTypeIsCaseInsensitive(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	if _, err := s.Generate(context.Background(), " Person ", 1, Options{}, ""); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestGenerateClampsCount(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	tests := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{7, 7},
		{100, 100},
		{101, 100},
		{5000, 100},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.in), func(t *testing.T) {
			recs, err := s.Generate(context.Background(), TypeEmail, tt.in, Options{}, "")
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if len(recs) != tt.want {
				t.Errorf("len = %d, want %d", len(recs), tt.want)
			}
		})
	}
}

func TestGenerateCancelled(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Generate(ctx, TypePerson, 3, Options{}, ""); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	opts := Options{Locale: "nl", IncludeSensitive: true, Style: StyleGaming}

	for _, ti := range Types() {
		t.Run(ti.Name, func(t *testing.T) {
			a, err := s.Generate(context.Background(), ti.Name, 3, opts, "1234")
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			b, err := s.Generate(context.Background(), ti.Name, 3, opts, "1234")
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !reflect.DeepEqual(a, b) {
				t.Errorf("same seed produced different records:\n%+v\n%+v", a, b)
			}
		})
	}
}

func TestGenerateBatchSeedsEachRecord(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)

	batch := generate[Person](t, s, TypePerson, 3, Options{}, "42")
	for i := range batch {
		single := generate[Person](t, s, TypePerson, 1, Options{}, strconv.Itoa(42+i))
		if !reflect.DeepEqual(batch[i], single[0]) {
			t.Errorf("record %d differs from a single record seeded %d", i, 42+i)
		}
	}
	if reflect.DeepEqual(batch[0], batch[1]) {
		t.Error("records in a seeded batch should differ")
	}
}

func TestGenerateNonIntegerSeedIsIgnored(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	recs, err := s.Generate(context.Background(), TypePerson, 2, Options{}, "not-a-number")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("len = %d, want 2", len(recs))
	}
}

func TestPerson(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	emailRe := regexp.MustCompile(`^[a-z0-9]+(\.[a-z0-9]+)*@`)

	for _, p := range generate[Person](t, s, TypePerson, 50, Options{}, "") {
		if p.FullName != p.FirstName+" "+p.LastName {
			t.Errorf("fullName %q from %q %q", p.FullName, p.FirstName, p.LastName)
		}
		if !emailRe.MatchString(p.Email) {
			t.Errorf("email %q has a bad local part", p.Email)
		}
		if strings.Contains(p.Username, ".") {
			t.Errorf("username %q contains a dot", p.Username)
		}
		if p.Age < 18 || p.Age > 80 {
			t.Errorf("age %d out of range", p.Age)
		}
		born, err := time.Parse(time.DateOnly, p.BirthDate)
		if err != nil {
			t.Fatalf("birthDate %q: %v", p.BirthDate, err)
		}
		if y := testNow.Year() - born.Year(); y < p.Age || y > p.Age+1 {
			t.Errorf("birthDate %s does not match age %d", p.BirthDate, p.Age)
		}
		if p.Gender == "" {
			t.Error("gender should default, got empty")
		}
		if p.Address.Country != "United States" || p.Address.CountryCode != "US" {
			t.Errorf("address country = %q/%q", p.Address.Country, p.Address.CountryCode)
		}
		if p.Financial != nil {
			t.Error("financial block present without includeSensitive")
		}
	}
}

func TestPersonCountryOverride(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	tests := []struct {
		locale  string
		country string
		code    string
	}{
		{"en", "United States", "US"},
		{"", "United States", "US"},
		{"nl", "Netherlands", "NL"},
		{"NL", "Netherlands", "NL"},
		{"be", "Belgium", "BE"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			for _, p := range generate[Person](t, s, TypePerson, 10, Options{Locale: tt.locale}, "") {
				if p.Address.Country != tt.country || p.Address.CountryCode != tt.code {
					t.Errorf("address country = %q/%q, want %q/%q",
						p.Address.Country, p.Address.CountryCode, tt.country, tt.code)
				}
			}
		})
	}
}

func TestPersonUsernameLocales(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	usernameRe := regexp.MustCompile(`^[^\s'.]+$`)

	for _, locale := range []string{"nl", "be"} {
		t.Run(locale, func(t *testing.T) {
			for _, p := range generate[Person](t, s, TypePerson, 100, Options{Locale: locale}, "11") {
				if !usernameRe.MatchString(p.Username) {
					t.Errorf("username %q from %q %q", p.Username, p.FirstName, p.LastName)
				}
			}
		})
	}
}

func TestPersonAgeBounds(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)

	seen := map[int]bool{}
	for batch := range 20 {
		seed := strconv.Itoa(batch * MaxCount)
		for _, p := range generate[Person](t, s, TypePerson, MaxCount, Options{}, seed) {
			seen[p.Age] = true
		}
	}
	for _, age := range []int{minAge, maxAge} {
		if !seen[age] {
			t.Errorf("age %d never generated", age)
		}
	}
}

func TestPersonFinancial(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)

	t.Run("domestic gets routing number", func(t *testing.T) {
		for _, p := range generate[Person](t, s, TypePerson, 20, Options{Locale: "en", IncludeSensitive: true}, "") {
			f := p.Financial
			if f == nil {
				t.Fatal("financial block missing")
			}
			if f.RoutingNumber == "" || f.IBAN != "" {
				t.Errorf("routing %q iban %q, want routing only", f.RoutingNumber, f.IBAN)
			}
			checkCard(t, f.CreditCard)
		}
	})

	t.Run("foreign gets iban", func(t *testing.T) {
		for _, p := range generate[Person](t, s, TypePerson, 20, Options{Locale: "nl", IncludeSensitive: true}, "") {
			f := p.Financial
			if f == nil {
				t.Fatal("financial block missing")
			}
			if f.IBAN == "" || f.RoutingNumber != "" {
				t.Errorf("routing %q iban %q, want iban only", f.RoutingNumber, f.IBAN)
			}
			if !strings.HasPrefix(f.IBAN, "NL") || !fakegen.ValidIBAN(f.IBAN) {
				t.Errorf("iban %q is not a valid NL iban", f.IBAN)
			}
		}
	})
}

func checkCard(t *testing.T, c Card) {
	t.Helper()
	if c.Type != CardType(c.Number) {
		t.Errorf("card type %q, classifier says %q for %s", c.Type, CardType(c.Number), c.Number)
	}
	exp, err := time.Parse("2006-01", c.Expiry)
	if err != nil {
		t.Fatalf("expiry %q: %v", c.Expiry, err)
	}
	thisMonth := time.Date(testNow.Year(), testNow.Month(), 1, 0, 0, 0, 0, time.UTC)
	if !exp.After(thisMonth) {
		t.Errorf("expiry %s is not in the future", c.Expiry)
	}
	if exp.After(testNow.AddDate(cardYears, 0, 0)) {
		t.Errorf("expiry %s is more than %d years out", c.Expiry, cardYears)
	}
}

func TestPersonLegacyBackend(t *testing.T) {
	s := newTestService(t, fakegen.BackendLegacy)
	for _, p := range generate[Person](t, s, TypePerson, 5, Options{IncludeSensitive: true}, "") {
		if p.FirstName == "" || p.LastName == "" || p.Email == "" {
			t.Errorf("legacy person missing names or email: %+v", p)
		}
		if p.Address.CountryCode != "US" {
			t.Errorf("country code = %q, want override US", p.Address.CountryCode)
		}
		if p.Financial == nil || !fakegen.ValidRouting(p.Financial.RoutingNumber) {
			t.Errorf("legacy financial routing invalid: %+v", p.Financial)
		}
	}
}

func TestEmailFor(t *testing.T) {
	tests := []struct {
		first, last, domain string
		want                string
	}{
		{"Jane", "Doe", "example.com", "jane.doe@example.com"},
		{"Mary-Ann", "O'Neil", "example.com", "mary.ann.o.neil@example.com"},
		{"Jan", "de Vries", "x.nl", "jan.de.vries@x.nl"},
		{"Zoë", "Ünal", "x.io", "zo.nal@x.io"},
		{".Bob", "Smith.", "x.io", "bob.smith@x.io"},
		{"", "", "x.io", "user@x.io"},
	}
	for _, tt := range tests {
		if got := emailFor(tt.first, tt.last, tt.domain); got != tt.want {
			t.Errorf("emailFor(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestContactMatchesPerson(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	c := generate[Contact](t, s, TypeContact, 1, Options{Locale: "be"}, "77")[0]
	p := generate[Person](t, s, TypePerson, 1, Options{Locale: "be"}, "77")[0]

	want := Contact{Name: p.FullName, Email: p.Email, Phone: p.Phone, Company: p.Company}
	if c != want {
		t.Errorf("contact = %+v, want %+v", c, want)
	}
}

func TestEmailRecord(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)

	t.Run("default domain", func(t *testing.T) {
		for _, e := range generate[EmailRecord](t, s, TypeEmail, 20, Options{}, "") {
			if e.Username+"@"+e.Domain != e.Email {
				t.Errorf("parts %q %q do not rebuild %q", e.Username, e.Domain, e.Email)
			}
		}
	})

	t.Run("custom domain", func(t *testing.T) {
		for _, e := range generate[EmailRecord](t, s, TypeEmail, 20, Options{Domain: "example.org"}, "") {
			if !strings.HasSuffix(e.Email, "@example.org") || e.Domain != "example.org" {
				t.Errorf("email %q domain %q, want example.org", e.Email, e.Domain)
			}
			if e.Username == "" {
				t.Error("empty username")
			}
		}
	})
}

func TestUsernameStyles(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	alnum := regexp.MustCompile(`^[A-Za-z0-9]*$`)

	tests := []struct {
		style string
		check func(string) bool
	}{
		{StyleProfessional, alnum.MatchString},
		{StyleSocial, func(u string) bool { return u == strings.ToLower(u) }},
		{StyleGaming, func(u string) bool { return u != "" }},
		{StyleMixed, func(u string) bool { return u != "" }},
		{"unknown", func(u string) bool { return u != "" }},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			for _, u := range generate[UsernameRecord](t, s, TypeUsername, 30, Options{Style: tt.style}, "") {
				if !tt.check(u.Username) {
					t.Errorf("username %q does not fit style %s", u.Username, tt.style)
				}
				if u.DisplayName == "" {
					t.Error("empty display name")
				}
			}
		})
	}
}

func TestAddress(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	postal := regexp.MustCompile(`^\d{4} [A-Z]{2}$`)
	for _, a := range generate[Address](t, s, TypeAddress, 20, Options{Locale: "nl"}, "") {
		if a.Street == "" || a.City == "" {
			t.Errorf("incomplete address: %+v", a)
		}
		if !postal.MatchString(a.ZipCode) {
			t.Errorf("zip %q is not a Dutch postcode", a.ZipCode)
		}
		if a.CountryCode != "NL" {
			t.Errorf("country code = %q", a.CountryCode)
		}
	}
}

func TestCompany(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	revenueRe := regexp.MustCompile(`^\$\d+$`)

	for _, c := range generate[Company](t, s, TypeCompany, 50, Options{}, "") {
		if c.Name == "" {
			t.Error("empty company name")
		}
		if c.Employees < 1 || c.Employees > 10000 {
			t.Errorf("employees %d out of range", c.Employees)
		}
		if c.Founded < testNow.Year()-50 || c.Founded > testNow.Year() {
			t.Errorf("founded %d out of range", c.Founded)
		}
		if !revenueRe.MatchString(c.Revenue) {
			t.Fatalf("revenue %q", c.Revenue)
		}
		v, _ := strconv.Atoi(strings.TrimPrefix(c.Revenue, "$"))
		if v < 100000 || v > 1000000000 {
			t.Errorf("revenue %d out of range", v)
		}
		if c.Email != "" && !strings.Contains(c.Email, "@") {
			t.Errorf("company email %q", c.Email)
		}
	}
}

func TestCreditCardNetworks(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	tests := []struct {
		network string
		label   string
		length  int
		cvv     int
	}{
		{"visa", NetworkVisa, 16, 3},
		{"mastercard", NetworkMastercard, 16, 3},
		{"amex", NetworkAmex, 15, 4},
		{"American-Express", NetworkAmex, 15, 4},
		{"discover", NetworkDiscover, 16, 3},
		{"jcb", NetworkJCB, 16, 3},
		{"diners", NetworkDiners, 14, 3},
		{"unionpay", NetworkUnionPay, 16, 3},
		{"maestro", NetworkMaestro, 16, 3},
	}
	for _, tt := range tests {
		t.Run(tt.network, func(t *testing.T) {
			for _, c := range generate[CreditCard](t, s, TypeCreditCard, 20, Options{Type: tt.network}, "") {
				if c.Type != tt.label {
					t.Errorf("type %q for %s, want %q", c.Type, c.Number, tt.label)
				}
				if len(c.Number) != tt.length {
					t.Errorf("length %d for %s, want %d", len(c.Number), c.Number, tt.length)
				}
				if !LuhnValid(c.Number) {
					t.Errorf("%s fails luhn", c.Number)
				}
				if len(c.CVV) != tt.cvv {
					t.Errorf("cvv %q, want %d digits", c.CVV, tt.cvv)
				}
				if c.HolderName == "" {
					t.Error("empty holder name")
				}
				checkCard(t, c.Card)
			}
		})
	}
}

func TestCreditCardAny(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	for _, c := range generate[CreditCard](t, s, TypeCreditCard, 20, Options{Type: "any"}, "") {
		if c.Number == "" {
			t.Fatal("empty number")
		}
		checkCard(t, c.Card)
	}
}

func TestAPIKey(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	alnum := regexp.MustCompile(`^[A-Za-z0-9]+$`)

	tests := []struct {
		kind     string
		wantType string
		check    func(string) bool
	}{
		{KeyUUID, KeyUUID, func(k string) bool { _, err := uuid.Parse(k); return err == nil }},
		{KeyAPI, KeyAPI, func(k string) bool { return len(k) == apiKeyLength && alnum.MatchString(k) }},
		{KeyJWT, KeyJWT, func(k string) bool {
			tok, _, err := jwt.NewParser().ParseUnverified(k, jwt.MapClaims{})
			return err == nil && tok.Method.Alg() == "HS256"
		}},
		{KeyMixed, KeyMixed, func(k string) bool { return k != "" }},
		{"", KeyMixed, func(k string) bool { return k != "" }},
		{"bogus", "bogus", func(k string) bool { return k != "" }},
		{"UUID", "UUID", func(k string) bool { _, err := uuid.Parse(k); return err == nil }},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			for _, k := range generate[APIKey](t, s, TypeAPIKey, 10, Options{Type: tt.kind}, "") {
				if k.Type != tt.wantType {
					t.Errorf("type = %q, want %q", k.Type, tt.wantType)
				}
				if !tt.check(k.Key) {
					t.Errorf("key %q does not fit kind %q", k.Key, tt.kind)
				}
				if k.Generated != testNow.Format(time.RFC3339) {
					t.Errorf("generated = %q", k.Generated)
				}
				exp, err := time.Parse(time.RFC3339, k.Expires)
				if err != nil {
					t.Fatalf("expires %q: %v", k.Expires, err)
				}
				if exp.Before(testNow) || exp.After(testNow.AddDate(1, 0, 0)) {
					t.Errorf("expires %s not within a year", k.Expires)
				}
			}
		})
	}
}

func TestTypes(t *testing.T) {
	got := Types()
	if len(got) != 9 {
		t.Fatalf("len(Types()) = %d, want 9", len(got))
	}
	got[0].Name = "mutated"
	if Types()[0].Name != TypePerson {
		t.Error("Types() should return a copy")
	}

	s := newTestService(t, fakegen.BackendModern)
	for _, ti := range Types() {
		if _, ok := s.builder(ti.Name); !ok {
			t.Errorf("listed type %q has no builder", ti.Name)
		}
	}
}

func TestAvailableLocales(t *testing.T) {
	s := newTestService(t, fakegen.BackendModern)
	want := []string{"en", "nl", "be"}
	if got := s.AvailableLocales(); !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableLocales() = %v, want %v", got, want)
	}
}
