// Package geoip resolves the public IP of the running host and geolocates
// it. Lookups never fail from the caller's point of view: any error yields
// a fixed fallback location.
package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultEchoURL = "https://api.ipify.org?format=json"
	defaultGeoURL  = "https://ipapi.co"
	userAgent      = "zpersona/1.0"

	// FallbackIP is geolocated when the public IP cannot be detected.
	FallbackIP = "8.8.8.8"

	// DefaultTimeout bounds the geolocation call.
	DefaultTimeout = 10 * time.Second
)

// Location is the result of a lookup.
type Location struct {
	Location    string `json:"location"`
	Locale      string `json:"locale"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	City        string `json:"city"`
	Region      string `json:"region"`
	IP          string `json:"ip"`
}

// fallback is returned whenever geolocation fails.
var fallback = Location{
	Location:    "Mountain View, CA, United States",
	Locale:      "en",
	Country:     "United States",
	CountryCode: "US",
	City:        "Mountain View",
	Region:      "CA",
}

// Fallback returns the fixed location used when geolocation fails, tagged
// with ip.
func Fallback(ip string) Location {
	l := fallback
	l.IP = ip
	return l
}

// Config holds endpoints and limits for a Resolver. Zero values select the
// defaults.
type Config struct {
	EchoURL string
	GeoURL  string
	Timeout time.Duration
	// Rate caps geolocation requests per second; zero or less disables it.
	Rate float64
	// DNSFallback enables the OpenDNS lookup when the echo service fails.
	DNSFallback bool
}

// Resolver performs the two-stage public IP and geolocation lookup.
type Resolver struct {
	echoURL   string
	geoURL    string
	timeout   time.Duration
	http      *http.Client
	limiter   *rate.Limiter
	detectDNS func(ctx context.Context) (string, error)
	log       *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient sets the client used for both lookups.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) { r.http = c }
}

// WithLogger sets the logger degradations are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

// NewResolver creates a Resolver from cfg.
func NewResolver(cfg Config, opts ...Option) *Resolver {
	r := &Resolver{
		echoURL: cfg.EchoURL,
		geoURL:  strings.TrimSuffix(cfg.GeoURL, "/"),
		timeout: cfg.Timeout,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Inf, 1),
		log:     slog.Default(),
	}
	if r.echoURL == "" {
		r.echoURL = defaultEchoURL
	}
	if r.geoURL == "" {
		r.geoURL = defaultGeoURL
	}
	if r.timeout <= 0 {
		r.timeout = DefaultTimeout
	}
	if cfg.Rate > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}
	if cfg.DNSFallback {
		r.detectDNS = detectPublicIP
	}

	for _, o := range opts {
		o(r)
	}
	return r
}

// Resolve detects the public IP and geolocates it. It always returns a
// usable location.
func (r *Resolver) Resolve(ctx context.Context) Location {
	ip := r.PublicIP(ctx)

	loc, err := r.Locate(ctx, ip)
	if err != nil {
		r.log.Warn("ip geolocation failed, using fallback", "ip", ip, "timeout", IsTimeout(err), "err", err)
		return Fallback(ip)
	}
	return loc
}

// PublicIP asks the echo service for the host's public IP, then OpenDNS if
// enabled, and finally returns FallbackIP.
func (r *Resolver) PublicIP(ctx context.Context) string {
	ip, err := r.echoIP(ctx)
	if err == nil {
		return ip
	}
	r.log.Debug("ip echo failed", "err", err)

	if r.detectDNS != nil {
		ip, err := r.detectDNS(ctx)
		if err == nil {
			return ip
		}
		r.log.Debug("dns ip detection failed", "err", err)
	}

	return FallbackIP
}

// Locate geolocates ip within the resolver's timeout.
func (r *Resolver) Locate(ctx context.Context, ip string) (Location, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.limiter.Wait(ctx); err != nil {
		return Location{}, fmt.Errorf("locate %s: wait: %w", ip, err)
	}

	u := r.geoURL + "/" + url.PathEscape(ip) + "/json/"
	body, err := r.get(ctx, u)
	if err != nil {
		return Location{}, fmt.Errorf("locate %s: %w", ip, err)
	}

	var resp geoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Location{}, fmt.Errorf("locate %s: unmarshal: %w", ip, err)
	}
	if resp.Error {
		reason := resp.Reason
		if reason == "" {
			reason = "ip geolocation failed"
		}
		return Location{}, fmt.Errorf("locate %s: %s", ip, reason)
	}

	return resp.location(ip), nil
}

func (r *Resolver) echoIP(ctx context.Context) (string, error) {
	body, err := r.get(ctx, r.echoURL)
	if err != nil {
		return "", fmt.Errorf("echo ip: %w", err)
	}

	var resp struct {
		IP string `json:"ip"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("echo ip: unmarshal: %w", err)
	}
	if net.ParseIP(resp.IP) == nil {
		return "", fmt.Errorf("echo ip: invalid address %q", resp.IP)
	}
	return resp.IP, nil
}

func (r *Resolver) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return body, nil
}

// geoResponse is the subset of the ipapi.co payload we use.
type geoResponse struct {
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryName string `json:"country_name"`
	CountryCode string `json:"country_code"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

func (g geoResponse) location(ip string) Location {
	return Location{
		Location: fmt.Sprintf("%s, %s, %s",
			orDefault(g.City, "Unknown City"),
			orDefault(g.Region, "Unknown Region"),
			orDefault(g.CountryName, "Unknown Country")),
		Locale:      LocaleForCountry(g.CountryCode),
		Country:     orDefault(g.CountryName, "Unknown"),
		CountryCode: orDefault(g.CountryCode, "XX"),
		City:        orDefault(g.City, "Unknown"),
		Region:      orDefault(g.Region, "Unknown"),
		IP:          ip,
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// IsTimeout reports whether err came from the lookup deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
