package acord

import (
	"strings"
	"time"

	"github.com/harper-global/coi-cli/internal/format"
	"github.com/harper-global/coi-cli/internal/model"
	"github.com/harper-global/coi-cli/internal/registry"
)

// completionDate renders today's date in the MM/DD/YYYY style the forms use.
func completionDate(*model.Document) any {
	return time.Now().Format("01/02/2006")
}

// amt formats a Money limit for display.
func amt(m model.Money) string {
	return format.Amount(m.Value())
}

// yes renders a confirmed endorsement code.
func yes(cond bool) string {
	if cond {
		return "Y"
	}
	return ""
}

// letterOr returns the recorded insurer letter, defaulting to "A" when the
// coverage is present but the extraction left the letter blank.
func letterOr(letter string, present bool) string {
	if letter != "" {
		return letter
	}
	if present {
		return "A"
	}
	return ""
}

// carrierName resolves a carrier letter to its legal name.
func carrierName(d *model.Document, letter string) string {
	return d.CarrierByLetter(letter).Name
}

// carrierNAIC resolves a carrier letter to its NAIC code, preferring an
// explicit code on the carrier record over the static registry.
func carrierNAIC(d *model.Document, letter string) string {
	c := d.CarrierByLetter(letter)
	if c.NAIC != "" {
		return c.NAIC
	}
	return registry.NAICCode(c.Name)
}

// Nil-safe section accessors. A nil block yields zero-value sections so
// resolvers read empty fields instead of dereferencing nil.

func liability(d *model.Document) model.LiabilityBlock {
	if d.Liability == nil {
		return model.LiabilityBlock{}
	}
	return *d.Liability
}

func property(d *model.Document) model.PropertyBlock {
	if d.Property == nil {
		return model.PropertyBlock{}
	}
	return *d.Property
}

func garage(d *model.Document) model.GarageBlock {
	if d.Garage == nil {
		return model.GarageBlock{}
	}
	return *d.Garage
}

func endorsed25(d *model.Document, key string) bool {
	if d.Liability == nil {
		return false
	}
	return d.Liability.Endorsements[key]
}

func endorsed30(d *model.Document, key string) bool {
	if d.Garage == nil {
		return false
	}
	return d.Garage.Endorsements[key]
}

// Auto-type classification. The extraction emits a free-text coverage type
// ("Any Auto", "Owned, Hired and Non-Owned Autos", ...); the form wants it
// decomposed into indicator checkboxes. Matching is word-bounded so that
// "owned" does not fire inside "non-owned".

func autoTypeAny(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	return t == "any auto" || t == "any" || containsWord(t, "any auto")
}

func autoTypeOwned(s string) bool {
	t := strings.ToLower(s)
	for _, variant := range []string{"non-owned", "non owned", "nonowned"} {
		t = strings.ReplaceAll(t, variant, "")
	}
	return containsWord(t, "owned")
}

func autoTypeScheduled(s string) bool {
	return containsWord(strings.ToLower(s), "scheduled")
}

func autoTypeHired(s string) bool {
	return containsWord(strings.ToLower(s), "hired")
}

func autoTypeNonOwned(s string) bool {
	t := strings.ToLower(s)
	return containsWord(t, "non-owned") || containsWord(t, "non owned") || containsWord(t, "nonowned")
}

// containsWord checks if text contains needle bounded by non-alphanumeric
// characters or string boundaries. Both arguments should be lowercased.
func containsWord(text, needle string) bool {
	if needle == "" || text == "" {
		return false
	}
	start := 0
	for {
		idx := strings.Index(text[start:], needle)
		if idx < 0 {
			return false
		}
		absIdx := start + idx
		endIdx := absIdx + len(needle)

		leftOK := absIdx == 0 || !isAlphaNum(text[absIdx-1])
		rightOK := endIdx == len(text) || !isAlphaNum(text[endIdx])

		if leftOK && rightOK {
			return true
		}
		start = absIdx + 1
	}
}

func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
