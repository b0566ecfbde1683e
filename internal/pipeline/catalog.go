// Package pipeline drives certificate generation end to end: deciding
// which forms apply, resolving their field values, and filling templates.
package pipeline

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// FormSpec describes one certificate form the generator knows how to fill.
type FormSpec struct {
	Number   string `yaml:"number"`
	Label    string `yaml:"label"`
	Template string `yaml:"template"`
}

// DefaultCatalog returns the standard form set with templates rooted at
// dir. ACORD 28 is listed so its template and applicability are tracked,
// but it has no field mapping yet and is skipped at generation time.
func DefaultCatalog(dir string) []FormSpec {
	return []FormSpec{
		{Number: "25", Label: "ACORD 25 - Certificate of Liability Insurance", Template: filepath.Join(dir, "acord25.pdf")},
		{Number: "27", Label: "ACORD 27 - Evidence of Property Insurance", Template: filepath.Join(dir, "acord27.pdf")},
		{Number: "28", Label: "ACORD 28 - Evidence of Commercial Property Insurance", Template: filepath.Join(dir, "acord28.pdf")},
		{Number: "30", Label: "ACORD 30 - Certificate of Garage Insurance", Template: filepath.Join(dir, "acord30.pdf")},
	}
}

// LoadCatalog reads a form catalog from a YAML file.
func LoadCatalog(path string) ([]FormSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: read catalog %s", path)
	}
	var specs []FormSpec
	if err := yaml.Unmarshal(raw, &specs); err != nil {
		return nil, eris.Wrapf(err, "pipeline: parse catalog %s", path)
	}
	for _, s := range specs {
		if s.Number == "" || s.Template == "" {
			return nil, eris.Errorf("pipeline: catalog %s: every form needs a number and a template", path)
		}
	}
	return specs, nil
}
