// Package redact strips secrets from text before it is logged. Error
// messages coming out of database drivers and token libraries routinely
// embed connection strings, SQL, bearer tokens and usernames; Error and
// String replace those fragments with fixed placeholders.
package redact

import (
	"regexp"
)

// Placeholders substituted for redacted fragments.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order; JWTs go before the generic key rule so a
// "token=eyJ..." fragment is reported as a JWT.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?i)(postgres|postgresql|sqlite|file)://[^@\s]+@`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		placeholder: RedactedJWTPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern: regexp.MustCompile(
			`(?i)(secret|token|bearer|api[_-]?key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
		),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern: regexp.MustCompile(
			`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()$=.]+(?:FROM|INTO|SET|WHERE)(?:[\s\w,*()$='".]+)?`,
		),
		placeholder: RedactedSQLPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){2,}`),
		placeholder: RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
