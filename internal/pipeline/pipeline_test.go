package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper-global/coi-cli/internal/model"
)

func TestApplicable(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "liability only",
			doc:  `{"acord25": {}, "acord27": null, "acord30": null}`,
			want: []string{"25"},
		},
		{
			name: "all blocks",
			doc:  `{"acord25": {}, "acord27": {}, "acord28": {"premises": []}, "acord30": {}}`,
			want: []string{"25", "27", "28", "30"},
		},
		{
			name: "sparse block still applies",
			doc:  `{"acord25": null, "acord27": {"policyNumber": ""}}`,
			want: []string{"27"},
		},
		{
			name: "nothing applies",
			doc:  `{"acord25": null, "acord27": null, "acord28": null, "acord30": null}`,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d model.Document
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &d))
			assert.Equal(t, tt.want, Applicable(&d))
		})
	}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "acord25_Acme_Fabrication_LLC.pdf", outputName("25", "Acme Fabrication LLC"))
	assert.Equal(t, "acord27_unknown.pdf", outputName("27", "  "))
	assert.Equal(t, "acord30_A-B-C.pdf", outputName("30", "A/B\\C"))
}

func TestIntersectPreservesFormOrder(t *testing.T) {
	assert.Equal(t, []string{"25", "30"}, intersect([]string{"25", "27", "30"}, []string{"30", "25"}))
	assert.Nil(t, intersect([]string{"25"}, []string{"27"}))
}

func TestDefaultCatalog(t *testing.T) {
	specs := DefaultCatalog("forms")
	require.Len(t, specs, 4)
	assert.Equal(t, "25", specs[0].Number)
	assert.Equal(t, "forms/acord25.pdf", specs[0].Template)
}
