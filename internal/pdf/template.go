package pdf

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/rotisserie/eris"
)

// Field is one terminal AcroForm field in a template. widgets holds the
// field's separate widget annotations, when it has any; their appearance
// state must track the field's value.
type Field struct {
	dict      types.Dict
	widgets   []types.Dict
	Name      string
	Qualified string
	Type      string
	OnState   string
}

// Template is a loaded form template ready to be filled. A Template is
// single-use: filling mutates the underlying document.
type Template struct {
	ctx      *pdfmodel.Context
	acroForm types.Dict
	fields   []*Field
}

// Open loads a form template and indexes its interactive fields.
func Open(path string) (*Template, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "pdf: read template %s", path)
	}

	catalog, err := ctx.Catalog()
	if err != nil {
		return nil, eris.Wrap(err, "pdf: document catalog")
	}
	acroObj, ok := catalog["AcroForm"]
	if !ok {
		return nil, eris.Errorf("pdf: template %s has no interactive form", path)
	}
	acroForm, err := ctx.DereferenceDict(acroObj)
	if err != nil || acroForm == nil {
		return nil, eris.Wrap(err, "pdf: AcroForm dictionary")
	}

	t := &Template{ctx: ctx, acroForm: acroForm}
	roots, err := ctx.DereferenceArray(acroForm["Fields"])
	if err != nil {
		return nil, eris.Wrap(err, "pdf: form field list")
	}
	for _, obj := range roots {
		if err := t.collect(obj); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Fields returns the template's terminal fields in document order.
func (t *Template) Fields() []*Field {
	return t.fields
}

// collect walks the field tree rooted at obj. Nodes whose kids carry their
// own partial names are containers; everything else is a terminal field
// whose kids, if any, are its widget annotations. Widgets are kept on the
// Field: a checkbox drawn by a separate widget stores its on-state there,
// and filling must update the widget's appearance state too.
func (t *Template) collect(obj types.Object) error {
	d, err := t.ctx.DereferenceDict(obj)
	if err != nil || d == nil {
		return eris.Wrap(err, "pdf: field node")
	}

	var widgets []types.Dict
	if kidsObj, ok := d["Kids"]; ok {
		kids, err := t.ctx.DereferenceArray(kidsObj)
		if err != nil {
			return eris.Wrap(err, "pdf: field kids")
		}
		container := false
		for _, kid := range kids {
			kd, err := t.ctx.DereferenceDict(kid)
			if err != nil || kd == nil {
				continue
			}
			if entryString(kd, "T") != "" {
				container = true
				if err := t.collect(kid); err != nil {
					return err
				}
				continue
			}
			widgets = append(widgets, kd)
		}
		if container {
			return nil
		}
	}

	name := entryString(d, "T")
	if name == "" {
		return nil
	}
	resolve := func(o types.Object) (types.Dict, error) { return t.ctx.DereferenceDict(o) }
	t.fields = append(t.fields, &Field{
		dict:      d,
		widgets:   widgets,
		Name:      name,
		Qualified: qualifiedName(d, resolve),
		Type:      fieldType(d, resolve),
		OnState:   buttonOnState(d, widgets, resolve),
	})
	return nil
}
