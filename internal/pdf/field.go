// Package pdf fills AcroForm fields in certificate templates.
package pdf

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// derefDict resolves a possibly-indirect object to its dictionary.
type derefDict func(obj types.Object) (types.Dict, error)

// entryString reads a dictionary entry as a string, accepting the name,
// literal, and hex spellings PDF producers use interchangeably.
func entryString(d types.Dict, key string) string {
	obj, ok := d[key]
	if !ok {
		return ""
	}
	switch v := obj.(type) {
	case types.Name:
		return v.Value()
	case types.StringLiteral:
		s, err := types.StringLiteralToString(v)
		if err != nil {
			return ""
		}
		return s
	case types.HexLiteral:
		s, err := types.HexLiteralToString(v)
		if err != nil {
			return ""
		}
		return s
	}
	return ""
}

// qualifiedName builds the fully qualified field name by walking the
// Parent chain, the way form producers address nested XFA-style fields.
func qualifiedName(d types.Dict, resolve derefDict) string {
	name := entryString(d, "T")
	parent, ok := d["Parent"]
	for ok {
		pd, err := resolve(parent)
		if err != nil || pd == nil {
			break
		}
		if t := entryString(pd, "T"); t != "" {
			if name == "" {
				name = t
			} else {
				name = t + "." + name
			}
		}
		parent, ok = pd["Parent"]
	}
	return name
}

// fieldType reads the field's FT entry, inheriting from ancestors when the
// terminal widget leaves it unset.
func fieldType(d types.Dict, resolve derefDict) string {
	if ft := entryString(d, "FT"); ft != "" {
		return ft
	}
	parent, ok := d["Parent"]
	for ok {
		pd, err := resolve(parent)
		if err != nil || pd == nil {
			return ""
		}
		if ft := entryString(pd, "FT"); ft != "" {
			return ft
		}
		parent, ok = pd["Parent"]
	}
	return ""
}

// buttonOnState discovers a checkbox's "on" appearance state. Checkboxes
// name their checked state arbitrarily; only "Off" is reserved. The state
// lives on the field dict itself or, when the widget annotation is a
// separate kid, on one of its widgets. Falls back to "Yes".
func buttonOnState(d types.Dict, widgets []types.Dict, resolve derefDict) string {
	if s, ok := apOnState(d, resolve); ok {
		return s
	}
	for _, w := range widgets {
		if s, ok := apOnState(w, resolve); ok {
			return s
		}
	}
	return "Yes"
}

// apOnState reads the first non-Off key of a normal appearance dictionary.
func apOnState(d types.Dict, resolve derefDict) (string, bool) {
	ap, ok := d["AP"]
	if !ok {
		return "", false
	}
	apDict, err := resolve(ap)
	if err != nil || apDict == nil {
		return "", false
	}
	normal, ok := apDict["N"]
	if !ok {
		return "", false
	}
	nDict, err := resolve(normal)
	if err != nil || nDict == nil {
		return "", false
	}
	for key := range nDict {
		if key != "Off" {
			return key, true
		}
	}
	return "", false
}
