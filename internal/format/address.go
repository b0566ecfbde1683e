package format

import "strings"

// Address is a best-effort decomposition of a free-text mailing address.
// Sub-parts may be empty; consumers must tolerate that.
type Address struct {
	Line1 string
	Line2 string
	City  string
	State string
	Zip   string
}

// SplitAddress decomposes free text into street/city/state/zip parts.
// Line breaks are treated as comma separators. This is a heuristic, not a
// validated postal parser: malformed input yields a low-confidence split,
// never an error.
func SplitAddress(raw string) Address {
	if strings.TrimSpace(raw) == "" {
		return Address{}
	}
	normalized := strings.ReplaceAll(raw, "\n", ", ")
	normalized = strings.ReplaceAll(normalized, "\r", "")

	var parts []string
	for _, p := range strings.Split(normalized, ",") {
		parts = append(parts, strings.TrimSpace(p))
	}

	var a Address
	switch {
	case len(parts) >= 3:
		tokens := strings.Fields(parts[len(parts)-1])
		switch {
		case len(tokens) >= 2 && (isDigits(tokens[len(tokens)-1]) || len(tokens[len(tokens)-1]) >= 5):
			a.State = tokens[len(tokens)-2]
			a.Zip = tokens[len(tokens)-1]
		case len(tokens) == 1 && isDigits(tokens[0]):
			a.Zip = tokens[0]
		default:
			a.State = parts[len(parts)-1]
		}
		a.City = parts[len(parts)-2]
		a.Line1 = parts[0]
		if len(parts) > 3 {
			a.Line2 = strings.Join(parts[1:len(parts)-2], ", ")
		}
	case len(parts) == 2:
		a.Line1 = parts[0]
		tokens := strings.Fields(parts[1])
		if len(tokens) >= 3 {
			a.Zip = tokens[len(tokens)-1]
			a.State = tokens[len(tokens)-2]
			a.City = strings.Join(tokens[:len(tokens)-2], " ")
		} else {
			a.City = parts[1]
		}
	default:
		a.Line1 = strings.TrimSpace(normalized)
	}
	return a
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
