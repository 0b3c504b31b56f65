package impl

import "strings"

// maskPhone keeps the first four and last three characters of a phone number.
func maskPhone(phone string) string {
	if len(phone) <= 7 {
		return strings.Repeat("*", len(phone))
	}

	return phone[:4] + strings.Repeat("*", len(phone)-7) + phone[len(phone)-3:]
}
