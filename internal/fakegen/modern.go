package fakegen

import (
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// modern generates fields with gofakeit. Each instance owns its random
// stream, so no locking or restoring is needed.
type modern struct {
	f   *gofakeit.Faker
	rng *rand.Rand
}

func openModern(rng *rand.Rand) (FieldGenerator, func()) {
	return &modern{f: &gofakeit.Faker{Rand: rng}, rng: rng}, func() {}
}

func (m *modern) FirstName() string  { return m.f.FirstName() }
func (m *modern) LastName() string   { return m.f.LastName() }
func (m *modern) Username() string   { return m.f.Username() }
func (m *modern) DomainName() string { return m.f.DomainName() }
func (m *modern) Email() string      { return m.f.Email() }
func (m *modern) URL() string        { return m.f.URL() }
func (m *modern) Phone() string      { return m.f.PhoneFormatted() }

func (m *modern) StreetAddress() string { return m.f.Street() }
func (m *modern) City() string          { return m.f.City() }
func (m *modern) State() string         { return m.f.State() }
func (m *modern) ZipCode() string       { return m.f.Zip() }
func (m *modern) Country() string       { return m.f.Country() }
func (m *modern) CountryCode() string   { return m.f.CountryAbr() }

func (m *modern) Gender() string   { return m.f.Gender() }
func (m *modern) JobTitle() string { return m.f.JobTitle() }
func (m *modern) Company() string  { return m.f.Company() }

func (m *modern) CatchPhrase() string {
	return m.f.JobDescriptor() + " " + m.f.Adjective() + " " + m.f.BuzzWord()
}

func (m *modern) BuzzPhrase() string { return m.f.BS() }

// gofakeit has no commerce departments.
func (m *modern) Department() string {
	return departments[m.rng.Intn(len(departments))]
}

func (m *modern) CreditCardNumber() string { return m.f.CreditCardNumber(nil) }
func (m *modern) CreditCardCVV() string    { return m.f.CreditCardCvv() }
func (m *modern) AccountNumber() string    { return m.f.AchAccount() }
func (m *modern) RoutingNumber() string    { return m.f.AchRouting() }
func (m *modern) BitcoinAddress() string   { return m.f.BitcoinAddress() }

func (m *modern) Noun() string       { return m.f.Noun() }
func (m *modern) Adjective() string  { return m.f.Adjective() }
func (m *modern) HackerNoun() string { return m.f.HackerNoun() }
func (m *modern) HackerVerb() string { return m.f.HackerVerb() }
func (m *modern) Sentence() string   { return m.f.Sentence(8) }

// UUID draws a version 4 UUID from the seeded stream so it is reproducible
// along with everything else.
func (m *modern) UUID() string {
	id, err := uuid.NewRandomFromReader(m.rng)
	if err != nil {
		return m.f.UUID()
	}
	return id.String()
}

func (m *modern) Alphanumeric(n int) string {
	if n <= 0 {
		return ""
	}
	return m.f.Password(true, true, true, false, false, n)
}
