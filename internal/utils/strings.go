package utils

import "strings"

// Truncate shortens s to maxLength runes, marking the cut with an ellipsis
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return "..."
	}
	return string(runes[:maxLength-3]) + "..."
}

// MaskEmail masks the local part of an email address so it can be logged
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	if len(localPart) > 2 {
		localPart = localPart[:2] + strings.Repeat("*", len(localPart)-2)
	}

	return localPart + "@" + parts[1]
}
