package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Result summarizes one fill pass.
type Result struct {
	Filled    int
	Unmatched []string
}

// Fill writes values into the template's fields. Values are matched by
// short field name first, then by fully qualified name. Checkboxes are
// checked only for boolean true or a confirmation code; everything else is
// written as text. Names in values that match no field are reported, not
// fatal: templates drift across form revisions.
func (t *Template) Fill(values map[string]any) Result {
	matched := make(map[string]bool, len(values))
	var res Result

	for _, f := range t.fields {
		val, name, ok := lookup(values, f)
		if !ok {
			continue
		}
		matched[name] = true

		if f.Type == "Btn" {
			if !checked(val) {
				continue
			}
			on := types.Name(f.OnState)
			f.dict["V"] = on
			f.dict["AS"] = on
			for _, w := range f.widgets {
				w["AS"] = on
			}
			res.Filled++
			continue
		}

		f.dict["V"] = types.StringLiteral(text(val))
		// Stale appearance streams would keep showing the empty field.
		delete(f.dict, "AP")
		for _, w := range f.widgets {
			delete(w, "AP")
		}
		res.Filled++
	}

	if res.Filled > 0 {
		t.acroForm["NeedAppearances"] = types.Boolean(true)
	}

	for name := range values {
		if !matched[name] {
			res.Unmatched = append(res.Unmatched, name)
		}
	}
	sort.Strings(res.Unmatched)
	if len(res.Unmatched) > 0 {
		zap.L().Debug("pdf: values without a matching field",
			zap.Int("count", len(res.Unmatched)),
		)
	}
	return res
}

// Bytes serializes the filled document.
func (t *Template) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := api.WriteContext(t.ctx, &buf); err != nil {
		return nil, eris.Wrap(err, "pdf: write document")
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the filled document to path.
func (t *Template) WriteFile(path string) error {
	if err := api.WriteContextFile(t.ctx, path); err != nil {
		return eris.Wrapf(err, "pdf: write %s", path)
	}
	return nil
}

func lookup(values map[string]any, f *Field) (any, string, bool) {
	if v, ok := values[f.Name]; ok {
		return v, f.Name, true
	}
	if v, ok := values[f.Qualified]; ok {
		return v, f.Qualified, true
	}
	return nil, "", false
}

// checked reports whether a resolved value should check a checkbox. Only
// boolean true and the "Y"/"YES" confirmation codes count; arbitrary text
// on a button field stays unchecked.
func checked(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		u := strings.ToUpper(strings.TrimSpace(val))
		return u == "Y" || u == "YES"
	}
	return false
}

func text(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "Yes"
		}
		return ""
	}
	return fmt.Sprint(v)
}
