package utils

import "strings"

// MaskEmail masks an email address for safe logging.
// Example: "user@example.com" -> "u***@example.com"
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return "***"
	}
	r := []rune(local)
	if len(r) <= 1 {
		return local + "***@" + domain
	}
	return string(r[0]) + "***@" + domain
}

// MaskPhone keeps the last two characters of a phone number.
// Example: "9800000012" -> "********12"
func MaskPhone(phone string) string {
	r := []rune(phone)
	if len(r) <= 2 {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-2) + string(r[len(r)-2:])
}
