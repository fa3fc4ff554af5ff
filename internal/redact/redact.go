// Package redact strips sensitive information from strings before they are
// logged. Errors from the database, cache and broker drivers routinely embed
// connection URLs, credentials, addresses and SQL text; the HTTP layer passes
// every error through Error before logging it.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules run in order; earlier rules may remove text later rules would match.
var rules = []rule{
	// Stack traces swallow the remainder of the message.
	{regexp.MustCompile(`(?:goroutine \d+ \[|panic:)[\s\S]*`), RedactedStackPlaceholder},

	// User info in postgres, redis and amqp connection URLs.
	{
		regexp.MustCompile(`(?i)\b(postgres(?:ql)?|rediss?|amqps?)://[^\s@/]+@`),
		"${1}://" + RedactedCredentialPlaceholder + "@",
	},

	// key=value credentials, as found in DSNs and driver errors.
	{
		regexp.MustCompile(`(?i)\b(password|passwd|pwd)=[^\s&'"]+`),
		"${1}=" + RedactionPlaceholder,
	},

	// SQL statements, from the keyword to the end of the statement.
	{
		regexp.MustCompile(`\b(?:SELECT\b[^;]*?\bFROM|INSERT INTO|UPDATE \w+ SET|DELETE FROM)\b[^;]*`),
		RedactedSQLPlaceholder,
	},

	// host:port and ip:port addresses.
	{
		regexp.MustCompile(`\b(?:\d{1,3}(?:\.\d{1,3}){3}|[a-zA-Z][a-zA-Z0-9-]*(?:\.[a-zA-Z0-9-]+)*):\d{2,5}\b`),
		RedactedHostPlaceholder,
	},

	// Absolute filesystem paths with at least two segments.
	{regexp.MustCompile(`(?:/[\w.-]+){2,}`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
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
