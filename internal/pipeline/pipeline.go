package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/harper-global/coi-cli/internal/acord"
	"github.com/harper-global/coi-cli/internal/model"
	"github.com/harper-global/coi-cli/internal/pdf"
)

// tables maps form numbers to their field resolution tables. ACORD 28 is
// deliberately absent until its template's fields are mapped.
var tables = map[string]acord.Table{
	"25": acord.Acord25,
	"27": acord.Acord27,
	"30": acord.Acord30,
}

// Applicable returns the form numbers that apply to a document, in the
// fixed 25, 27, 28, 30 order. A form applies when its coverage block is
// present, regardless of how sparse the block is.
func Applicable(d *model.Document) []string {
	var forms []string
	if d.Liability != nil {
		forms = append(forms, "25")
	}
	if d.Property != nil {
		forms = append(forms, "27")
	}
	if d.HasPropertySchedule() {
		forms = append(forms, "28")
	}
	if d.Garage != nil {
		forms = append(forms, "30")
	}
	return forms
}

// Output records one generated certificate.
type Output struct {
	Form      string
	Path      string
	Filled    int
	Unmatched int
}

// Generator fills certificate templates for a coverage document.
type Generator struct {
	Catalog []FormSpec
	OutDir  string
}

// Generate fills every requested form. A form whose template is missing or
// whose field mapping is not configured is logged and skipped; one broken
// form never blocks the others. Pass nil to generate all applicable forms.
func (g *Generator) Generate(d *model.Document, only []string) ([]Output, error) {
	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "pipeline: create output dir %s", g.OutDir)
	}

	forms := Applicable(d)
	if len(only) > 0 {
		forms = intersect(forms, only)
	}

	var outputs []Output
	for _, number := range forms {
		spec, ok := g.spec(number)
		if !ok {
			zap.L().Warn("pipeline: form not in catalog", zap.String("form", number))
			continue
		}
		table, ok := tables[number]
		if !ok {
			zap.L().Warn("pipeline: no field mapping configured, skipping form",
				zap.String("form", number),
			)
			continue
		}
		if _, err := os.Stat(spec.Template); err != nil {
			zap.L().Warn("pipeline: template not found, skipping form",
				zap.String("form", number),
				zap.String("template", spec.Template),
			)
			continue
		}

		out, err := g.fillForm(d, spec, table)
		if err != nil {
			zap.L().Error("pipeline: form generation failed",
				zap.String("form", number),
				zap.Error(err),
			)
			continue
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

func (g *Generator) fillForm(d *model.Document, spec FormSpec, table acord.Table) (Output, error) {
	tpl, err := pdf.Open(spec.Template)
	if err != nil {
		return Output{}, err
	}

	values := table.Resolve(d)
	res := tpl.Fill(values)

	path := filepath.Join(g.OutDir, outputName(spec.Number, d.Insured.Name))
	if err := tpl.WriteFile(path); err != nil {
		return Output{}, err
	}

	zap.L().Info("pipeline: certificate generated",
		zap.String("form", spec.Number),
		zap.String("path", path),
		zap.Int("filled", res.Filled),
		zap.Int("unmatched", len(res.Unmatched)),
	)
	return Output{Form: spec.Number, Path: path, Filled: res.Filled, Unmatched: len(res.Unmatched)}, nil
}

func (g *Generator) spec(number string) (FormSpec, bool) {
	for _, s := range g.Catalog {
		if s.Number == number {
			return s, true
		}
	}
	return FormSpec{}, false
}

// outputName builds acord<NN>_<insured>.pdf with spaces underscored.
func outputName(number, insured string) string {
	name := strings.TrimSpace(insured)
	if name == "" {
		name = "unknown"
	}
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '-'
		}
		return r
	}, name)
	return "acord" + number + "_" + name + ".pdf"
}

func intersect(forms, only []string) []string {
	want := make(map[string]bool, len(only))
	for _, f := range only {
		want[strings.TrimSpace(f)] = true
	}
	var out []string
	for _, f := range forms {
		if want[f] {
			out = append(out, f)
		}
	}
	return out
}
