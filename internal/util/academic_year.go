package util

import "strconv"

// ValidAcademicYear reports whether s is a "YYYY-YYYY" school year with
// consecutive years, e.g. "2023-2024".
func ValidAcademicYear(s string) bool {
	if len(s) != 9 || s[4] != '-' {
		return false
	}
	first, err := strconv.Atoi(s[:4])
	if err != nil {
		return false
	}
	second, err := strconv.Atoi(s[5:])
	if err != nil {
		return false
	}
	return second == first+1
}
