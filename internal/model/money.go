package model

import (
	"encoding/json"
	"strings"
)

// Money is a dollar limit as it arrives from extraction: a numeric amount,
// a literal marker such as "Excluded", or unset. JSON null and a missing
// key both mean unset. A numeric zero is a valid, set value — downstream
// formatting renders it as "Excluded", never "$0".
type Money struct {
	num   float64
	str   string
	isNum bool
	set   bool
}

// MoneyFromFloat returns a set numeric Money.
func MoneyFromFloat(f float64) Money {
	return Money{num: f, isNum: true, set: true}
}

// MoneyFromString returns a set literal Money (e.g. "Excluded", "Included").
func MoneyFromString(s string) Money {
	return Money{str: s, set: true}
}

// IsSet reports whether the value was present in the source document.
func (m Money) IsSet() bool { return m.set }

// Present reports whether the value carries information: a number (zero
// included — zero means explicitly excluded coverage) or a non-blank
// literal. Presence predicates and the merge backfill both key off this.
func (m Money) Present() bool {
	if !m.set {
		return false
	}
	if m.isNum {
		return true
	}
	return strings.TrimSpace(m.str) != ""
}

// Value returns the raw scalar: nil when unset, otherwise float64 or string.
func (m Money) Value() any {
	switch {
	case !m.set:
		return nil
	case m.isNum:
		return m.num
	default:
		return m.str
	}
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*m = Money{}
	case float64:
		*m = MoneyFromFloat(v)
	case string:
		*m = MoneyFromString(v)
	case bool:
		// Extraction occasionally emits booleans for included/excluded rows.
		if v {
			*m = MoneyFromString("Included")
		} else {
			*m = Money{}
		}
	default:
		*m = Money{}
	}
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Value())
}
