// Package identity generates synthetic personal data: people, contacts,
// companies, payment cards, API keys and low-profile social personas.
//
// Records are plain values. Fields a generator backend cannot produce are
// left empty and omitted from JSON; optional blocks are nil pointers.
package identity

// Address is a postal address. Country and CountryCode are forced to the
// requested locale's canonical country when it has one.
type Address struct {
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zipCode,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// Card holds payment card details. Type is derived from Number.
type Card struct {
	Number string `json:"number"`
	Type   string `json:"type"`
	CVV    string `json:"cvv,omitempty"`
	Expiry string `json:"expiry"`
}

// Financial is the sensitive block attached to a Person on request.
// Exactly one of RoutingNumber and IBAN is set.
type Financial struct {
	CreditCard    Card   `json:"creditCard"`
	BankAccount   string `json:"bankAccount,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`
	IBAN          string `json:"iban,omitempty"`
	Bitcoin       string `json:"bitcoin,omitempty"`
}

// Person is a complete synthetic identity.
type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`

	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Mobile string `json:"mobile,omitempty"`

	Address Address `json:"address"`

	Age       int    `json:"age"`
	BirthDate string `json:"birthDate"`
	Gender    string `json:"gender"`

	Username string `json:"username"`
	Website  string `json:"website,omitempty"`
	Avatar   string `json:"avatar,omitempty"`

	JobTitle   string `json:"jobTitle,omitempty"`
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`

	Financial *Financial `json:"financial,omitempty"`
}

// Contact is the short form of a Person.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// EmailRecord is an email address split into its parts.
type EmailRecord struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Domain   string `json:"domain"`
}

// UsernameRecord is a handle with a display name and bio.
type UsernameRecord struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio,omitempty"`
}

// Company is a synthetic business.
type Company struct {
	Name        string  `json:"name,omitempty"`
	CatchPhrase string  `json:"catchPhrase,omitempty"`
	BS          string  `json:"bs,omitempty"`
	Industry    string  `json:"industry,omitempty"`
	Website     string  `json:"website,omitempty"`
	Email       string  `json:"email,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Address     Address `json:"address"`
	Employees   int     `json:"employees"`
	Founded     int     `json:"founded"`
	Revenue     string  `json:"revenue"`
}

// CreditCard is a standalone card with a holder.
type CreditCard struct {
	Card
	HolderName string `json:"holderName"`
}

// APIKey is a fake credential.
type APIKey struct {
	Key       string `json:"key"`
	Type      string `json:"type"`
	Generated string `json:"generated"`
	Expires   string `json:"expires"`
}

// Languages lists the languages a persona claims.
type Languages struct {
	Primary     string   `json:"primary"`
	Secondary   []string `json:"secondary"`
	Proficiency string   `json:"proficiency"`
}

// IPInfo explains an IP-derived location. The IP is censored.
type IPInfo struct {
	IP               string `json:"ip"`
	DetectedLocation string `json:"detectedLocation"`
	DetectedLocale   string `json:"detectedLocale"`
	Note             string `json:"note"`
}

// SocialProfile is an unremarkable social-media persona.
type SocialProfile struct {
	Username            string    `json:"username"`
	DisplayName         string    `json:"displayName"`
	Location            string    `json:"location"`
	Age                 int       `json:"age"`
	JoinYear            int       `json:"joinYear"`
	PersonalityTags     []string  `json:"personalityTags"`
	LanguagePreferences Languages `json:"languagePreferences"`
	IPInfo              *IPInfo   `json:"ipInfo,omitempty"`
}
