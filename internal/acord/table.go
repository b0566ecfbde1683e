// Package acord declares the field resolution tables that project a
// coverage document onto the interactive fields of each certificate form.
package acord

import (
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/harper-global/coi-cli/internal/model"
)

// Resolver computes one form field's value from a coverage document. It
// must not mutate the document; a missing nested path resolves to an empty
// value, never an error.
type Resolver func(d *model.Document) any

// Table maps every field name a form template exposes to its resolver.
// Tables are built once at startup and never modified.
type Table map[string]Resolver

// Resolve evaluates every resolver against d. A resolver that panics is
// logged as a per-field warning and treated as absent — one bad field never
// aborts a fill. Absent, empty-string, and false values are dropped: the
// template's unset state already represents them.
func (t Table) Resolve(d *model.Document) map[string]any {
	values := make(map[string]any, len(t))
	for name, r := range t {
		val, err := resolveField(r, d)
		if err != nil {
			zap.L().Warn("acord: field resolver failed",
				zap.String("field", name),
				zap.Error(err),
			)
			continue
		}
		switch v := val.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
		case bool:
			if !v {
				continue
			}
		}
		values[name] = val
	}
	return values
}

func resolveField(r Resolver, d *model.Document) (val any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = eris.New(fmt.Sprintf("resolver panic: %v", p))
		}
	}()
	return r(d), nil
}

// blank resolves to an empty value. Forms carry rows the coverage schema
// never populates; keeping their entries preserves the one-entry-per-field
// contract with the template.
func blank(*model.Document) any { return "" }

// never resolves to an unchecked indicator.
func never(*model.Document) any { return false }
