package identity

import (
	"strconv"
	"strings"

	"github.com/zarlcorp/zpersona/internal/fakegen"
)

// Card network names reported by CardType.
const (
	NetworkVisa       = "Visa"
	NetworkMastercard = "Mastercard"
	NetworkAmex       = "American Express"
	NetworkDiscover   = "Discover"
	NetworkJCB        = "JCB"
	NetworkDiners     = "Diners Club"
	NetworkUnionPay   = "UnionPay"
	NetworkMaestro    = "Maestro"
	NetworkUnknown    = "Unknown"
)

// CardType classifies a card number by its leading digits. Non-digits are
// ignored. The first matching rule wins.
func CardType(number string) string {
	num := onlyDigits(number)
	if num == "" {
		return NetworkUnknown
	}

	d2, ok2 := prefixInt(num, 2)
	d3, ok3 := prefixInt(num, 3)
	d4, ok4 := prefixInt(num, 4)
	in := func(v int, ok bool, lo, hi int) bool { return ok && v >= lo && v <= hi }

	switch {
	case num[0] == '4':
		return NetworkVisa
	case in(d2, ok2, 51, 55), in(d4, ok4, 2221, 2720):
		return NetworkMastercard
	case in(d2, ok2, 34, 34), in(d2, ok2, 37, 37):
		return NetworkAmex
	case in(d4, ok4, 6011, 6011), in(d2, ok2, 65, 65), in(d3, ok3, 644, 649):
		return NetworkDiscover
	case in(d4, ok4, 3528, 3589):
		return NetworkJCB
	case in(d3, ok3, 300, 305), in(d2, ok2, 36, 36), in(d2, ok2, 38, 39):
		return NetworkDiners
	case in(d2, ok2, 62, 62):
		return NetworkUnionPay
	case in(d2, ok2, 50, 50), in(d2, ok2, 56, 59), in(d2, ok2, 63, 63), in(d2, ok2, 67, 69):
		return NetworkMaestro
	}
	return NetworkUnknown
}

// LuhnValid reports whether number passes the Luhn checksum.
func LuhnValid(number string) bool {
	num := onlyDigits(number)
	if len(num) < 2 {
		return false
	}
	return luhnDigit(num[:len(num)-1]) == num[len(num)-1]
}

// network describes how to mint numbers for one card scheme.
type network struct {
	prefixes []string
	length   int
	cvv      int
}

var networks = map[string]network{
	"visa":       {prefixes: []string{"4"}, length: 16, cvv: 3},
	"mastercard": {prefixes: []string{"51", "52", "53", "54", "55", "2221", "2720"}, length: 16, cvv: 3},
	"amex":       {prefixes: []string{"34", "37"}, length: 15, cvv: 4},
	"discover":   {prefixes: []string{"6011", "65", "644", "649"}, length: 16, cvv: 3},
	"jcb":        {prefixes: []string{"3528", "3530", "3566", "3589"}, length: 16, cvv: 3},
	"diners":     {prefixes: []string{"300", "305", "36", "38", "39"}, length: 14, cvv: 3},
	"unionpay":   {prefixes: []string{"62"}, length: 16, cvv: 3},
	"maestro":    {prefixes: []string{"50", "56", "57", "58", "63", "67"}, length: 16, cvv: 3},
}

var networkAliases = map[string]string{
	"americanexpress":  "amex",
	"american_express": "amex",
	"american-express": "amex",
	"master":           "mastercard",
	"mc":               "mastercard",
	"dinersclub":       "diners",
	"diners_club":      "diners",
	"diners-club":      "diners",
	"union":            "unionpay",
}

// CardNetworks returns the network names accepted by the creditcard type
// option, besides "any".
func CardNetworks() []string {
	return []string{"visa", "mastercard", "amex", "discover", "jcb", "diners", "unionpay", "maestro"}
}

func lookupNetwork(name string) (network, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if a, ok := networkAliases[name]; ok {
		name = a
	}
	n, ok := networks[name]
	return n, ok
}

// cardNumber mints a Luhn-valid number for the named network, or lets the
// backend choose when the name is empty, "any" or unknown.
func cardNumber(h *fakegen.Handle, name string) (number, cvv string) {
	n, ok := lookupNetwork(name)
	if !ok {
		return h.CreditCardNumber(), h.CreditCardCVV()
	}

	payload := h.Pick(n.prefixes)
	payload += h.Digits(n.length - 1 - len(payload))
	return payload + string(luhnDigit(payload)), h.Digits(n.cvv)
}

// luhnDigit returns the check digit that makes payload+digit Luhn-valid.
func luhnDigit(payload string) byte {
	sum := 0
	double := true
	for i := len(payload) - 1; i >= 0; i-- {
		d := int(payload[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte('0' + (10-sum%10)%10)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func prefixInt(num string, n int) (int, bool) {
	if len(num) < n {
		return 0, false
	}
	v, err := strconv.Atoi(num[:n])
	if err != nil {
		return 0, false
	}
	return v, true
}
