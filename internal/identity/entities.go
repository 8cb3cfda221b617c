package identity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zarlcorp/zpersona/internal/fakegen"
)

// API key kinds.
const (
	KeyUUID  = "uuid"
	KeyJWT   = "jwt"
	KeyAPI   = "api"
	KeyMixed = "mixed"
)

const (
	apiKeyLength   = 32
	jwtFallbackLen = 64
)

var nonAlnumMixed = regexp.MustCompile(`[^A-Za-z0-9]+`)

func emailRecord(h *fakegen.Handle, domain string) EmailRecord {
	email := h.Email()
	local, host, _ := strings.Cut(email, "@")
	if domain = strings.TrimSpace(domain); domain != "" {
		host = domain
		email = local + "@" + host
	}
	return EmailRecord{
		Email:    email,
		Username: local,
		Domain:   host,
	}
}

// usernameRecord builds a handle in the given style. Unknown styles are
// treated as mixed.
func usernameRecord(h *fakegen.Handle, style string) UsernameRecord {
	var username string
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleProfessional:
		username = nonAlnumMixed.ReplaceAllString(h.Username(), "")
	case StyleGaming:
		switch h.IntRange(0, 2) {
		case 0:
			username = h.Username() + strconv.Itoa(h.IntRange(0, 999))
		case 1:
			username = h.HackerNoun() + h.HackerVerb()
		default:
			username = h.Noun() + strconv.Itoa(h.IntRange(0, 99))
		}
	case StyleSocial:
		username = strings.ToLower(h.Username())
	default:
		username = h.Username()
	}

	return UsernameRecord{
		Username:    username,
		DisplayName: h.FirstName() + " " + h.LastName(),
		Bio:         h.Sentence(),
	}
}

func (s *Service) company(h *fakegen.Handle, locale string) Company {
	now := s.now()

	c := Company{
		Name:        h.Company(),
		CatchPhrase: h.CatchPhrase(),
		BS:          h.BuzzPhrase(),
		Industry:    h.Department(),
		Website:     h.URL(),
		Phone:       h.Phone(),
		Address:     address(h, locale),
		Employees:   h.IntRange(1, 10000),
		Founded:     h.DateBetween(now.AddDate(-50, 0, 0), now).Year(),
		Revenue:     fmt.Sprintf("$%d", h.IntRange(100000, 1000000000)),
	}

	local, _, _ := strings.Cut(h.Email(), "@")
	if domain := h.DomainName(); local != "" && domain != "" {
		c.Email = local + "@" + domain
	}
	return c
}

func (s *Service) creditCard(h *fakegen.Handle, networkName string) CreditCard {
	number, cvv := cardNumber(h, networkName)
	return CreditCard{
		Card: Card{
			Number: number,
			Type:   CardType(number),
			CVV:    cvv,
			Expiry: cardExpiry(h, s.now()),
		},
		HolderName: h.FirstName() + " " + h.LastName(),
	}
}

// apiKey builds a credential of the given kind. Unknown kinds are treated
// as mixed, which picks one of the others at random. The record carries the
// requested kind, or mixed when none was given.
func (s *Service) apiKey(h *fakegen.Handle, kind string) APIKey {
	now := s.now().UTC()
	expires := h.DateBetween(now, now.AddDate(1, 0, 0)).UTC()

	kind = strings.TrimSpace(kind)
	if kind == "" {
		kind = KeyMixed
	}

	shape := strings.ToLower(kind)
	if shape != KeyUUID && shape != KeyJWT && shape != KeyAPI {
		shape = h.Pick([]string{KeyUUID, KeyJWT, KeyAPI})
	}

	var key string
	switch shape {
	case KeyUUID:
		key = h.UUID()
	case KeyJWT:
		key = s.signedToken(h, now, expires)
	default:
		key = h.Alphanumeric(apiKeyLength)
	}

	return APIKey{
		Key:       key,
		Type:      kind,
		Generated: now.Format(time.RFC3339),
		Expires:   expires.Format(time.RFC3339),
	}
}

// signedToken mints an HS256 JWT with fake claims and a throwaway secret
// drawn from the handle, so seeded tokens are reproducible.
func (s *Service) signedToken(h *fakegen.Handle, now, expires time.Time) string {
	claims := jwt.MapClaims{
		"iss": orDefault(h.DomainName(), "example.com"),
		"sub": h.UUID(),
		"iat": now.Unix(),
		"exp": expires.Unix(),
		"jti": h.Alphanumeric(16),
	}
	secret := []byte(h.Alphanumeric(32))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		s.log.Debug("sign token failed, using opaque key", "err", err)
		return h.Alphanumeric(jwtFallbackLen)
	}
	return token
}
