// Package registry holds the static country reference data used by the
// BIC and IBAN validators: ISO 3166 country names and the per-country
// IBAN lengths from the ISO 13616 registry. The table is built once and
// never mutated, so concurrent reads need no synchronization.
package registry

// Country is one entry of the reference table.
type Country struct {
	Code       string
	Name       string
	IBANLength int // 0 when the country has no registered IBAN format
}

// Registry is an immutable country lookup table.
type Registry struct {
	byCode map[string]Country
}

// New builds a Registry from the given countries. Later entries with a
// duplicate code overwrite earlier ones.
func New(countries []Country) *Registry {
	byCode := make(map[string]Country, len(countries))
	for _, c := range countries {
		byCode[c.Code] = c
	}
	return &Registry{byCode: byCode}
}

// Lookup returns the country for an ISO 3166 alpha-2 code.
func (r *Registry) Lookup(code string) (Country, bool) {
	c, ok := r.byCode[code]
	return c, ok
}

// CountryName returns the English name for a country code.
func (r *Registry) CountryName(code string) (string, bool) {
	c, ok := r.byCode[code]
	if !ok {
		return "", false
	}
	return c.Name, true
}

// IBANLength returns the registered IBAN length for a country code.
// The second result is false when the country is unknown or has no
// registered IBAN format.
func (r *Registry) IBANLength(code string) (int, bool) {
	c, ok := r.byCode[code]
	if !ok || c.IBANLength == 0 {
		return 0, false
	}
	return c.IBANLength, true
}

// Len returns the number of registered countries.
func (r *Registry) Len() int {
	return len(r.byCode)
}

var defaultCountries = []Country{
	{Code: "AD", Name: "Andorra", IBANLength: 24},
	{Code: "AT", Name: "Austria", IBANLength: 20},
	{Code: "BE", Name: "Belgium", IBANLength: 16},
	{Code: "CH", Name: "Switzerland", IBANLength: 21},
	{Code: "CY", Name: "Cyprus", IBANLength: 28},
	{Code: "CZ", Name: "Czech Republic", IBANLength: 24},
	{Code: "DE", Name: "Germany", IBANLength: 22},
	{Code: "DK", Name: "Denmark", IBANLength: 18},
	{Code: "EE", Name: "Estonia", IBANLength: 20},
	{Code: "ES", Name: "Spain", IBANLength: 24},
	{Code: "FI", Name: "Finland", IBANLength: 18},
	{Code: "FR", Name: "France", IBANLength: 27},
	{Code: "GB", Name: "United Kingdom", IBANLength: 22},
	{Code: "GR", Name: "Greece", IBANLength: 27},
	{Code: "HR", Name: "Croatia", IBANLength: 21},
	{Code: "HU", Name: "Hungary", IBANLength: 28},
	{Code: "IE", Name: "Ireland", IBANLength: 22},
	{Code: "IS", Name: "Iceland", IBANLength: 26},
	{Code: "IT", Name: "Italy", IBANLength: 27},
	{Code: "LI", Name: "Liechtenstein", IBANLength: 21},
	{Code: "LT", Name: "Lithuania", IBANLength: 20},
	{Code: "LU", Name: "Luxembourg", IBANLength: 20},
	{Code: "LV", Name: "Latvia", IBANLength: 21},
	{Code: "MC", Name: "Monaco", IBANLength: 27},
	{Code: "MT", Name: "Malta", IBANLength: 31},
	{Code: "NL", Name: "Netherlands", IBANLength: 18},
	{Code: "NO", Name: "Norway", IBANLength: 15},
	{Code: "PL", Name: "Poland", IBANLength: 28},
	{Code: "PT", Name: "Portugal", IBANLength: 25},
	{Code: "RO", Name: "Romania", IBANLength: 24},
	{Code: "SE", Name: "Sweden", IBANLength: 24},
	{Code: "SI", Name: "Slovenia", IBANLength: 19},
	{Code: "SK", Name: "Slovakia", IBANLength: 24},

	// BIC-only countries: no IBAN format registered.
	{Code: "US", Name: "United States", IBANLength: 0},
}

var defaultRegistry = New(defaultCountries)

// Default returns the process-wide registry built from the ISO 13616
// table. Callers that need a reduced table (tests, sandboxes) construct
// their own with New and inject it.
func Default() *Registry {
	return defaultRegistry
}
