package acord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harper-global/coi-cli/internal/model"
)

func TestTableResolveDropsEmptyValues(t *testing.T) {
	table := Table{
		"kept_string":  func(*model.Document) any { return "value" },
		"kept_bool":    func(*model.Document) any { return true },
		"empty_string": blank,
		"false_bool":   never,
		"nil_value":    func(*model.Document) any { return nil },
	}
	values := table.Resolve(&model.Document{})

	assert.Equal(t, map[string]any{
		"kept_string": "value",
		"kept_bool":   true,
	}, values)
}

func TestTableResolveRecoversPanics(t *testing.T) {
	table := Table{
		"panics": func(*model.Document) any {
			var b *model.LiabilityBlock
			return b.CertificateNumber
		},
		"survives": func(*model.Document) any { return "still here" },
	}
	values := table.Resolve(&model.Document{})

	assert.Equal(t, map[string]any{"survives": "still here"}, values)
}
