package identity

import (
	"context"
	"strconv"
	"strings"

	"github.com/zarlcorp/zpersona/internal/fakegen"
	"github.com/zarlcorp/zpersona/internal/geoip"
)

const (
	opsecMinAge = 18
	opsecMaxAge = 24

	firstJoinYear = 2015
	lastJoinYear  = 2023

	minTags = 3
	maxTags = 4

	ipNote = "Real IP-based location and language detection enabled"
)

// commonNames are bland display names that blend into any follower list.
var commonNames = []string{
	"Alex Johnson", "Sarah Williams", "Mike Davis", "Emma Brown", "Chris Wilson",
	"Jessica Miller", "David Garcia", "Lisa Martinez", "Ryan Anderson", "Amy Taylor",
	"Kevin Thomas", "Rachel Jackson", "James White", "Michelle Harris", "Daniel Martin",
	"Jennifer Thompson", "Robert Garcia", "Amanda Martinez", "Christopher Robinson",
	"Stephanie Clark", "Matthew Rodriguez", "Ashley Lewis", "Andrew Lee", "Nicole Walker",
	"Joshua Hall", "Samantha Allen", "Brandon Young", "Megan King", "Tyler Wright",
}

// personalityTags steer how the persona should behave online.
var personalityTags = []string{
	"curious", "quiet", "monotone", "reserved", "analytical", "cautious",
	"observant", "methodical", "introverted", "thoughtful", "mysterious",
	"independent", "private", "discreet", "subtle", "unassuming", "low-key",
	"minimalist", "focused", "deliberate", "measured", "understated",
}

type languageConfig struct {
	primary   string
	secondary []string
}

var languages = map[string]languageConfig{
	"en": {"English", []string{"Spanish"}},
	"nl": {"Dutch", []string{"English"}},
	"be": {"Dutch", []string{"English", "French"}},
	"de": {"German", []string{"English"}},
	"fr": {"French", []string{"English"}},
	"es": {"Spanish", []string{"English"}},
	"it": {"Italian", []string{"English"}},
	"pt": {"Portuguese", []string{"English"}},
	"ru": {"Russian", []string{"English"}},
	"ja": {"Japanese", []string{"English"}},
	"ko": {"Korean", []string{"English"}},
	"zh": {"Chinese", []string{"English"}},
}

// socialProfile builds a persona meant to look unremarkable. With
// UseIPForLocation and a UserIP set, its location and languages come from
// the host's geolocation instead of the generator.
func (s *Service) socialProfile(ctx context.Context, h *fakegen.Handle, opts Options) SocialProfile {
	first := h.FirstName()
	last := h.LastName()

	displayName := first + " " + last
	if h.Chance(0.3) {
		displayName = h.Pick(commonNames)
	}

	p := SocialProfile{
		Username:    opsecUsername(h, first, last),
		DisplayName: displayName,
		Age:         h.IntRange(opsecMinAge, opsecMaxAge),
		JoinYear:    h.IntRange(firstJoinYear, lastJoinYear),
	}

	locale := strings.ToLower(strings.TrimSpace(opts.Locale))
	if locale == "" {
		locale = fakegen.DefaultLocale
	}

	if opts.UseIPForLocation && opts.UserIP != "" {
		loc := s.locate(ctx, opts.UserIP)
		p.Location = loc.Location
		locale = orDefault(loc.Locale, locale)
		p.IPInfo = &IPInfo{
			IP:               geoip.CensorIP(orDefault(loc.IP, opts.UserIP)),
			DetectedLocation: loc.Location,
			DetectedLocale:   locale,
			Note:             ipNote,
		}
	} else {
		p.Location = h.City() + ", " + h.State()
	}

	p.PersonalityTags = h.Shuffle(personalityTags)[:h.IntRange(minTags, maxTags)]
	p.LanguagePreferences = languagePreferences(h, locale)
	return p
}

// locate asks the configured locator for the host location. Without one it
// returns the fallback tagged with the caller's IP.
func (s *Service) locate(ctx context.Context, userIP string) geoip.Location {
	if s.geo == nil {
		return geoip.Fallback(userIP)
	}
	return s.geo.Resolve(ctx)
}

// opsecUsername picks one of seven name-based styles 80% of the time and a
// name plus number otherwise. The result is lowercase alphanumeric.
func opsecUsername(h *fakegen.Handle, first, last string) string {
	lf, ll := strings.ToLower(first), strings.ToLower(last)

	var u string
	if h.Chance(0.8) {
		switch h.IntRange(0, 6) {
		case 0:
			u = lf
		case 1:
			u = lf + initial(ll)
		case 2:
			u = lf + ll
		case 3:
			u = h.Adjective() + h.Noun()
		case 4:
			u = lf + h.Noun()
		case 5:
			u = h.Username()
		default:
			u = lf + h.Adjective()
		}
	} else {
		u = lf + strconv.Itoa(h.IntRange(0, 99))
	}

	return nonAlnumRun.ReplaceAllString(strings.ToLower(u), "")
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// languagePreferences returns the locale's primary language with a 30%
// chance of one secondary language. Unknown locales use English.
func languagePreferences(h *fakegen.Handle, locale string) Languages {
	cfg, ok := languages[locale]
	if !ok {
		cfg = languages[fakegen.DefaultLocale]
	}

	secondary := []string{}
	if h.Chance(0.3) {
		secondary = append(secondary, h.Pick(cfg.secondary))
	}

	return Languages{
		Primary:     cfg.primary,
		Secondary:   secondary,
		Proficiency: "Native",
	}
}
