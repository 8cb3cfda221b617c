package fakegen

import (
	"math/rand"
	"strconv"
	"strings"
)

// ibanFormat describes a simplified BBAN: an optional alphabetic bank code
// followed by digits.
type ibanFormat struct {
	banks  []string
	digits int
}

var ibanFormats = map[string]ibanFormat{
	"NL": {banks: []string{"ABNA", "INGB", "RABO", "TRIO", "SNSB", "ASNB", "KNAB", "BUNQ"}, digits: 10},
	"BE": {digits: 12},
	"DE": {digits: 18},
	"FR": {digits: 23},
	"ES": {digits: 20},
	"IT": {banks: []string{"X"}, digits: 22},
	"GB": {banks: []string{"BARC", "HSBC", "LOYD", "NWBK", "MIDL"}, digits: 14},
	"IE": {banks: []string{"AIBK", "BOFI"}, digits: 14},
	"LU": {digits: 16},
}

// iban builds an IBAN for country with real mod-97 check digits. Countries
// without a known format get an 18-digit BBAN.
func iban(rng *rand.Rand, country string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	if len(country) != 2 || !isLetters(country) {
		country = "DE"
	}

	f, ok := ibanFormats[country]
	if !ok {
		f = ibanFormat{digits: 18}
	}

	var bban strings.Builder
	if len(f.banks) > 0 {
		bban.WriteString(f.banks[rng.Intn(len(f.banks))])
	}
	bban.WriteString(digits(rng, f.digits))

	check := 98 - mod97(bban.String()+country+"00")
	cd := strconv.Itoa(check)
	if check < 10 {
		cd = "0" + cd
	}
	return country + cd + bban.String()
}

// mod97 computes s mod 97 with letters expanded to 10..35, as ISO 13616
// prescribes.
func mod97(s string) int {
	rem := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			rem = (rem*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			v := int(r-'A') + 10
			rem = (rem*100 + v) % 97
		}
	}
	return rem
}

// ValidIBAN reports whether s has valid IBAN check digits.
func ValidIBAN(s string) bool {
	s = strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	if len(s) < 5 {
		return false
	}
	return mod97(s[4:]+s[:4]) == 1
}

// abaRouting returns a nine-digit ABA routing number whose checksum holds.
func abaRouting(rng *rand.Rand) string {
	d := make([]int, 9)
	// first two digits are a Federal Reserve district, 01-12
	district := 1 + rng.Intn(12)
	d[0], d[1] = district/10, district%10
	for i := 2; i < 8; i++ {
		d[i] = rng.Intn(10)
	}
	sum := 3*(d[0]+d[3]+d[6]) + 7*(d[1]+d[4]+d[7]) + (d[2] + d[5])
	d[8] = (10 - sum%10) % 10

	var b strings.Builder
	for _, v := range d {
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}

// ValidRouting reports whether s is a nine-digit ABA routing number with a
// valid checksum.
func ValidRouting(s string) bool {
	if len(s) != 9 {
		return false
	}
	d := make([]int, 9)
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		d[i] = int(r - '0')
	}
	sum := 3*(d[0]+d[3]+d[6]) + 7*(d[1]+d[4]+d[7]) + (d[2] + d[5] + d[8])
	return sum%10 == 0
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
