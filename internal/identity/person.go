package identity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/zarlcorp/zpersona/internal/fakegen"
)

const (
	minAge = 18
	maxAge = 80

	// domesticCountry gets a routing number; everyone else gets an IBAN.
	domesticCountry = "US"

	defaultGender = "other"
	cardYears     = 5
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// person builds a full identity. locale is the requested code; its
// canonical country, if any, overrides the address country.
func (s *Service) person(h *fakegen.Handle, locale string, includeSensitive bool) Person {
	now := s.now()

	first := h.FirstName()
	last := h.LastName()
	domain := h.DomainName()
	age := h.IntRange(minAge, maxAge)

	p := Person{
		FirstName: first,
		LastName:  last,
		FullName:  first + " " + last,
		Email:     emailFor(first, last, domain),
		Phone:     h.Phone(),
		Mobile:    h.Phone(),
		Address:   address(h, locale),
		Age:       age,
		BirthDate: birthDate(now, age),
		Gender:    orDefault(h.Gender(), defaultGender),
		Username:  strings.ReplaceAll(h.UsernameFor(first, last), ".", "_"),
		Avatar:    fmt.Sprintf("https://avatars.githubusercontent.com/u/%d", h.IntRange(1, 100000000)),

		JobTitle:   h.JobTitle(),
		Company:    h.Company(),
		Department: h.Department(),
	}
	if domain != "" {
		p.Website = "https://" + domain
	}

	if includeSensitive {
		p.Financial = financial(h, p.Address.CountryCode, now)
	}
	return p
}

func (s *Service) contact(h *fakegen.Handle, locale string) Contact {
	p := s.person(h, locale, false)
	return Contact{
		Name:    p.FullName,
		Email:   p.Email,
		Phone:   p.Phone,
		Company: p.Company,
	}
}

func address(h *fakegen.Handle, locale string) Address {
	a := Address{
		Street:      h.StreetAddress(),
		City:        h.City(),
		State:       h.State(),
		ZipCode:     h.ZipCode(),
		Country:     h.Country(),
		CountryCode: h.CountryCode(),
	}
	if locale == "" {
		locale = fakegen.DefaultLocale
	}
	if c, ok := fakegen.CountryOverride(locale); ok {
		a.Country = c.Name
		a.CountryCode = c.Code
	}
	return a
}

func financial(h *fakegen.Handle, countryCode string, now time.Time) *Financial {
	number := h.CreditCardNumber()
	f := &Financial{
		CreditCard: Card{
			Number: number,
			Type:   CardType(number),
			CVV:    h.CreditCardCVV(),
			Expiry: cardExpiry(h, now),
		},
		BankAccount: h.AccountNumber(),
		Bitcoin:     h.BitcoinAddress(),
	}
	if countryCode == domesticCountry {
		f.RoutingNumber = h.RoutingNumber()
	} else {
		f.IBAN = h.IBAN(countryCode)
	}
	return f
}

// emailFor derives the address "first.last@domain". Characters outside
// [a-z0-9] collapse to a single dot and the local part never starts or
// ends with one.
func emailFor(first, last, domain string) string {
	local := strings.ToLower(first + "." + last)
	local = nonAlnumRun.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")
	if local == "" {
		local = "user"
	}
	return local + "@" + domain
}

// birthDate subtracts age Julian years from now.
func birthDate(now time.Time, age int) string {
	d := time.Duration(float64(age) * 365.25 * 24 * float64(time.Hour))
	return now.Add(-d).UTC().Format(time.DateOnly)
}

// cardExpiry picks a month after the current one, within cardYears years.
func cardExpiry(h *fakegen.Handle, now time.Time) string {
	from := now.AddDate(0, 1, 0)
	return h.DateBetween(from, now.AddDate(cardYears, 0, 0)).UTC().Format("2006-01")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
