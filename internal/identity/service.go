package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zarlcorp/zpersona/internal/fakegen"
	"github.com/zarlcorp/zpersona/internal/geoip"
)

// ErrUnknownType is returned by Generate for an unsupported record type.
var ErrUnknownType = errors.New("unknown data type")

// Record types accepted by Generate.
const (
	TypePerson     = "person"
	TypeContact    = "contact"
	TypeEmail      = "email"
	TypeUsername   = "username"
	TypeAddress    = "address"
	TypeCompany    = "company"
	TypeCreditCard = "creditcard"
	TypeOPSEC      = "basic_opsec"
	TypeAPIKey     = "apikey"
)

// Batch bounds for Generate.
const (
	MinCount = 1
	MaxCount = 100
)

// Username styles.
const (
	StyleProfessional = "professional"
	StyleGaming       = "gaming"
	StyleSocial       = "social"
	StyleMixed        = "mixed"
)

// TypeInfo describes a record type.
type TypeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var types = []TypeInfo{
	{TypePerson, "complete identity with contact, address, demographics and optional financial data"},
	{TypeContact, "name, email, phone and company"},
	{TypeEmail, "email address with its username and domain"},
	{TypeUsername, "username in a chosen style with display name and bio"},
	{TypeAddress, "postal address"},
	{TypeCompany, "company profile"},
	{TypeCreditCard, "payment card with network, cvv and expiry"},
	{TypeOPSEC, "low-profile social media persona"},
	{TypeAPIKey, "api key, uuid or jwt token"},
}

// Types lists the supported record types in display order.
func Types() []TypeInfo {
	out := make([]TypeInfo, len(types))
	copy(out, types)
	return out
}

// Options tune a Generate call. Each record type reads only the keys that
// apply to it.
type Options struct {
	Locale           string
	IncludeSensitive bool
	Domain           string
	Style            string
	UseIPForLocation bool
	UserIP           string
	// Type is the card network for creditcard and the key kind for apikey.
	Type string
}

// Locator resolves the host's geolocation. Implementations must not fail;
// they return a fallback location instead.
type Locator interface {
	Resolve(ctx context.Context) geoip.Location
}

// Service builds records on top of a fakegen.Source.
type Service struct {
	src *fakegen.Source
	geo Locator
	now func() time.Time
	log *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLocator sets the geolocation used by IP-based OPSEC profiles.
func WithLocator(l Locator) Option {
	return func(s *Service) { s.geo = l }
}

// WithClock sets the time source for birth dates, expiries and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a Service drawing fields from src.
func NewService(src *fakegen.Source, opts ...Option) *Service {
	s := &Service{
		src: src,
		now: time.Now,
		log: slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// AvailableLocales returns the supported locale codes.
func (s *Service) AvailableLocales() []string {
	return fakegen.Locales()
}

// builder produces one record from a fresh handle.
type builder func(ctx context.Context, h *fakegen.Handle, opts Options) any

func (s *Service) builder(kind string) (builder, bool) {
	switch kind {
	case TypePerson:
		return func(_ context.Context, h *fakegen.Handle, o Options) any {
			return s.person(h, o.Locale, o.IncludeSensitive)
		}, true
	case TypeContact:
		return func(_ context.Context, h *fakegen.Handle, o Options) any {
			return s.contact(h, o.Locale)
		}, true
	case TypeEmail:
		return func(_ context.Context, h *fakegen.Handle, o Options) any {
			return emailRecord(h, o.Domain)
		}, true
	case TypeUsername:
		return func(_ context.Context, h *fakegen.Handle, o Options) any {
			return usernameRecord(h, o.Style)
		}, true
	case TypeAddress:
		return func(_ context.Context, h *fakegen.Handle, o Options) any {
			return address(h, o.Locale)
		}, true
	case TypeCompany:
		return func(_ context.Context, h *fakegen.Handle, o Options) any {
			return s.company(h, o.Locale)
		}, true
	case TypeCreditCard:
		return func(_ context.Context, h *fakegen.Handle, o Options) any {
			return s.creditCard(h, o.Type)
		}, true
	case TypeOPSEC:
		return func(ctx context.Context, h *fakegen.Handle, o Options) any {
			return s.socialProfile(ctx, h, o)
		}, true
	case TypeAPIKey:
		return func(_ context.Context, h *fakegen.Handle, o Options) any {
			return s.apiKey(h, o.Type)
		}, true
	}
	return nil, false
}

// Generate builds count records of the given type. count is clamped to
// [MinCount, MaxCount]. When seed parses as an integer, record i is built
// from seed+i, so identical calls return identical records. Only an
// unknown type or a cancelled context produce an error.
func (s *Service) Generate(ctx context.Context, kind string, count int, opts Options, seed string) ([]any, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	build, ok := s.builder(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, kind)
	}

	count = max(MinCount, min(MaxCount, count))

	base, seeded := fakegen.ParseSeed(seed)
	if seed != "" && !seeded {
		s.log.Debug("seed is not an integer, output will not be reproducible", "seed", seed)
	}

	out := make([]any, 0, count)
	for i := range count {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generate %s: %w", kind, err)
		}

		var sp *int64
		if seeded {
			v := base + int64(i)
			sp = &v
		}
		out = append(out, s.buildOne(ctx, build, opts, sp))
	}

	s.log.Debug("generated records", "type", kind, "count", len(out), "seeded", seeded)
	return out, nil
}

func (s *Service) buildOne(ctx context.Context, build builder, opts Options, seed *int64) any {
	h := s.src.Acquire(opts.Locale, seed)
	defer h.Close()
	return build(ctx, h, opts)
}
