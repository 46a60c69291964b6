package desensitize

import "regexp"

const mask = "******"

var (
	authorizationPattern = regexp.MustCompile(`(Client-ID|Bearer)\s+[^\s"\],]+`)
	emailPattern         = regexp.MustCompile(`\b([A-Za-z0-9])[A-Za-z0-9._%+-]*([A-Za-z0-9])@([A-Za-z0-9])[A-Za-z0-9.-]*\.([A-Za-z]{2,})\b`)
)

// credentialFields are the JSON fields that carry API keys, OAuth secrets or
// grant codes
var credentialFields = []string{
	"access_key",
	"client_id",
	"client_secret",
	"access_token",
	"refresh_token",
	"code",
}

// Credentials returns new instances of the credential rules: "authorization"
// for Client-ID and Bearer credentials, plus one field rule per credential
// field.
func Credentials() []Rule {
	rules := make([]Rule, 0, len(credentialFields)+1)
	rules = append(rules, &ContentRule{
		name:        "authorization",
		pattern:     authorizationPattern,
		replacement: "$1 " + mask,
	})
	for _, field := range credentialFields {
		rule, _ := NewFieldRule(field)
		rules = append(rules, rule)
	}
	return rules
}

// Email returns a rule masking e-mail addresses, user@example.com becomes
// u***r@e***.com
func Email() Rule {
	return &ContentRule{name: "email", pattern: emailPattern, replacement: "$1***$2@$3***.$4"}
}

// MaskAuthorization hides the credential of an Authorization header value and
// keeps a Client-ID or Bearer scheme. Other schemes are masked whole.
func MaskAuthorization(value string) string {
	if value == "" {
		return value
	}
	if authorizationPattern.MatchString(value) {
		return authorizationPattern.ReplaceAllString(value, "$1 "+mask)
	}
	return mask
}
