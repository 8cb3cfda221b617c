package geoip

import (
	"context"
	"fmt"
	"net"
	"strings"
)

// openDNSResolver is the address of OpenDNS's resolver1.
const openDNSResolver = "208.67.222.222:53"

// censored is shown in place of an address that cannot be partially masked.
const censored = "xxx.xxx.xxx.xxx"

// detectPublicIP resolves the caller's public IP via DNS.
// It queries myip.opendns.com against resolver1.opendns.com.
func detectPublicIP(ctx context.Context) (string, error) {
	r := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "udp", openDNSResolver)
		},
	}

	addrs, err := r.LookupHost(ctx, "myip.opendns.com")
	if err != nil {
		return "", fmt.Errorf("detect public ip: %w", err)
	}

	if len(addrs) == 0 {
		return "", fmt.Errorf("detect public ip: no addresses returned")
	}

	return addrs[0], nil
}

// CensorIP keeps the first two octets of a dotted IPv4 address and masks
// the rest. Anything that does not split into four parts is fully masked.
func CensorIP(ip string) string {
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return censored
	}
	return parts[0] + "." + parts[1] + ".xxx.xxx"
}

var countryLocales = map[string]string{
	"US": "en", "GB": "en", "CA": "en", "AU": "en", "NZ": "en", "IE": "en",
	"DE": "de", "AT": "de", "CH": "de",
	"FR": "fr", "BE": "fr", "LU": "fr", "MC": "fr",
	"ES": "es", "MX": "es", "AR": "es", "CO": "es", "PE": "es", "VE": "es",
	"IT": "it", "SM": "it", "VA": "it",
	"NL": "nl",
	"PT": "pt", "BR": "pt",
	"RU": "ru",
	"JP": "ja",
	"KR": "ko",
	"CN": "zh", "TW": "zh", "HK": "zh", "MO": "zh",
}

// LocaleForCountry maps an ISO country code to a language locale,
// defaulting to "en".
func LocaleForCountry(code string) string {
	if l, ok := countryLocales[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return l
	}
	return "en"
}
