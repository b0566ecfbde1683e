// Package merge reconciles coverage documents extracted from multiple
// source certificates into a single document.
package merge

import (
	"reflect"

	"github.com/harper-global/coi-cli/internal/model"
)

var moneyType = reflect.TypeOf(model.Money{})

// Backfill copies values from src into the empty fields of dst and reports
// the JSON-ish paths it filled. Filling is strictly monotonic: a field that
// already carries a value is never overwritten, booleans only move from
// false to true, and a set Money is never replaced.
func Backfill(dst, src any, filled *[]string) {
	dv := reflect.ValueOf(dst)
	sv := reflect.ValueOf(src)
	if dv.Kind() != reflect.Pointer || sv.Kind() != reflect.Pointer || dv.IsNil() || sv.IsNil() {
		return
	}
	backfillValue(dv.Elem(), sv.Elem(), "", filled)
}

func backfillValue(dst, src reflect.Value, path string, filled *[]string) {
	if !dst.CanSet() || dst.Type() != src.Type() {
		return
	}

	if dst.Type() == moneyType {
		d := dst.Interface().(model.Money)
		s := src.Interface().(model.Money)
		if !d.IsSet() && s.IsSet() {
			dst.Set(src)
			record(filled, path)
		}
		return
	}

	switch dst.Kind() {
	case reflect.String:
		if dst.String() == "" && src.String() != "" {
			dst.SetString(src.String())
			record(filled, path)
		}
	case reflect.Bool:
		if !dst.Bool() && src.Bool() {
			dst.SetBool(true)
			record(filled, path)
		}
	case reflect.Struct:
		t := dst.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			backfillValue(dst.Field(i), src.Field(i), joinPath(path, fieldName(t.Field(i))), filled)
		}
	case reflect.Pointer:
		if dst.IsNil() && !src.IsNil() {
			dst.Set(src)
			record(filled, path)
			return
		}
		if !dst.IsNil() && !src.IsNil() {
			backfillValue(dst.Elem(), src.Elem(), path, filled)
		}
	case reflect.Map:
		// Boolean flag sets union; true wins over absent or false.
		if dst.Type().Key().Kind() != reflect.String || dst.Type().Elem().Kind() != reflect.Bool {
			return
		}
		if src.Len() == 0 {
			return
		}
		if dst.IsNil() {
			dst.Set(reflect.MakeMap(dst.Type()))
		}
		iter := src.MapRange()
		for iter.Next() {
			if !iter.Value().Bool() {
				continue
			}
			existing := dst.MapIndex(iter.Key())
			if !existing.IsValid() || !existing.Bool() {
				dst.SetMapIndex(iter.Key(), iter.Value())
				record(filled, joinPath(path, iter.Key().String()))
			}
		}
	case reflect.Slice:
		if dst.Len() == 0 && src.Len() > 0 {
			dst.Set(src)
			record(filled, path)
		}
	}
}

// countLeaves scores how complete a value is: one point per non-empty
// string, true boolean, set Money, true flag, and non-empty slice.
func countLeaves(v any) int {
	return countValue(reflect.ValueOf(v))
}

func countValue(v reflect.Value) int {
	if !v.IsValid() {
		return 0
	}
	if v.Type() == moneyType {
		if v.Interface().(model.Money).IsSet() {
			return 1
		}
		return 0
	}
	switch v.Kind() {
	case reflect.String:
		if v.String() != "" {
			return 1
		}
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
	case reflect.Struct:
		n := 0
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			n += countValue(v.Field(i))
		}
		return n
	case reflect.Pointer:
		if !v.IsNil() {
			return countValue(v.Elem())
		}
	case reflect.Map:
		n := 0
		iter := v.MapRange()
		for iter.Next() {
			n += countValue(iter.Value())
		}
		return n
	case reflect.Slice:
		if v.Len() > 0 {
			return 1
		}
	}
	return 0
}

func record(filled *[]string, path string) {
	if filled != nil && path != "" {
		*filled = append(*filled, path)
	}
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}

// fieldName prefers the JSON tag so backfill paths read like the document.
func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			tag = tag[:i]
			break
		}
	}
	if tag == "" {
		return f.Name
	}
	return tag
}
