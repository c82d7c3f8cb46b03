package phone

import "strings"

type Country struct {
	Name     string `json:"name"`
	DialCode string `json:"dial_code"`
	Code     string `json:"code"`
}

// Countries is a trimmed dial-code list; the full table lives in the
// front end and is out of scope here.
var Countries = []Country{
	{Name: "Saudi Arabia", DialCode: "+966", Code: "SA"},
	{Name: "United Arab Emirates", DialCode: "+971", Code: "AE"},
	{Name: "Egypt", DialCode: "+20", Code: "EG"},
	{Name: "Turkey", DialCode: "+90", Code: "TR"},
	{Name: "United States", DialCode: "+1", Code: "US"},
	{Name: "United Kingdom", DialCode: "+44", Code: "GB"},
	{Name: "Germany", DialCode: "+49", Code: "DE"},
}

// Digits strips everything but 0-9 from the local part.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Combine joins a dial code with a digits-only local number. Either
// part may change independently; recombining is pure.
func Combine(dialCode, local string) string {
	return dialCode + Digits(local)
}

// Search filters countries by name substring or dial code.
func Search(query string) []Country {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Countries
	}
	var out []Country
	for _, c := range Countries {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(c.DialCode, q) {
			out = append(out, c)
		}
	}
	return out
}

// FlagEmoji builds the regional-indicator flag for an ISO code.
func FlagEmoji(countryCode string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(countryCode) {
		if r < 'A' || r > 'Z' {
			continue
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}
