package validators

import (
	"net"
	"net/url"
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
)

// maxEmailLength is the longest address SMTP can carry (RFC 5321).
const maxEmailLength = 254

var urlSchemes = []string{"http", "https", "ftp"}

// isEmail accepts a bare address (no display name) whose domain has an
// alphabetic TLD of two or more characters.
func isEmail(s string) bool {
	if len(s) > maxEmailLength || !govalidator.IsEmail(s) {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	return hasTLD(s[at+1:])
}

// isURL accepts http, https and ftp URLs without credentials, with the
// scheme optional, whose host is an IP address or a domain with a TLD.
func isURL(s string) bool {
	if !govalidator.IsURL(s) {
		return false
	}

	raw := s
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.User != nil {
		return false
	}

	if !isAllowedScheme(strings.ToLower(u.Scheme)) {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}

	return hasTLD(host)
}

func isAllowedScheme(scheme string) bool {
	for _, s := range urlSchemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// hasTLD reports whether domain has at least two labels and ends in an
// alphabetic label of two or more characters.
func hasTLD(domain string) bool {
	domain = strings.TrimSuffix(domain, ".")
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}

	for _, l := range labels {
		if l == "" || strings.HasPrefix(l, "-") || strings.HasSuffix(l, "-") {
			return false
		}
	}

	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
