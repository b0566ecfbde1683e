package merge

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper-global/coi-cli/internal/model"
)

func binderDoc() *model.Document {
	return &model.Document{
		Insured: model.Party{Name: "Acme Fabrication LLC", Address: "200 Industrial Way, Dayton, OH 45402"},
		Carriers: []model.Carrier{
			{Letter: "A", Name: "Kinsale Insurance Company"},
		},
		Liability: &model.LiabilityBlock{
			GL: model.GLCoverage{
				InsurerLetter: "A",
				PolicyNumber:  "GL-100",
				Occurrence:    true,
				Limits: model.GLLimits{
					EachOccurrence:   model.MoneyFromFloat(1000000),
					GeneralAggregate: model.MoneyFromFloat(2000000),
				},
			},
			Endorsements: model.Endorsements{"additionalInsured": true},
		},
	}
}

func umbrellaDoc() *model.Document {
	return &model.Document{
		Insured: model.Party{Name: "Acme Fabrication LLC"},
		Carriers: []model.Carrier{
			{Letter: "A", Name: "Zurich American Insurance Company", NAIC: "16535"},
		},
		Liability: &model.LiabilityBlock{
			Umbrella: model.UmbrellaCoverage{
				InsurerLetter:  "A",
				PolicyNumber:   "UMB-7",
				EachOccurrence: model.MoneyFromFloat(5000000),
			},
			Endorsements: model.Endorsements{"waiverOfSubrogation": true},
		},
	}
}

func TestReconcileSingleSourcePassesThrough(t *testing.T) {
	doc := binderDoc()
	got := Reconcile([]Source{{File: "binder.pdf", Doc: doc}})
	assert.Same(t, doc, got)
}

func TestReconcileEmpty(t *testing.T) {
	got := Reconcile(nil)
	require.NotNil(t, got)
	assert.Nil(t, got.Liability)
}

func TestReconcileUnionsCarriersWithFreshLetters(t *testing.T) {
	got := Reconcile([]Source{
		{File: "binder.pdf", Doc: binderDoc()},
		{File: "umbrella.pdf", Doc: umbrellaDoc()},
	})

	require.Len(t, got.Carriers, 2)
	assert.Equal(t, "A", got.Carriers[0].Letter)
	assert.Equal(t, "Kinsale Insurance Company", got.Carriers[0].Name)
	assert.Equal(t, "B", got.Carriers[1].Letter)
	assert.Equal(t, "Zurich American Insurance Company", got.Carriers[1].Name)

	// Both sources called their carrier "A"; after the union the umbrella
	// section must point at the renamed letter.
	require.NotNil(t, got.Liability)
	assert.Equal(t, "A", got.Liability.GL.InsurerLetter)
	assert.Equal(t, "B", got.Liability.Umbrella.InsurerLetter)
}

func TestReconcileMergesCoverageSections(t *testing.T) {
	got := Reconcile([]Source{
		{File: "binder.pdf", Doc: binderDoc()},
		{File: "umbrella.pdf", Doc: umbrellaDoc()},
	})

	require.NotNil(t, got.Liability)
	assert.Equal(t, "GL-100", got.Liability.GL.PolicyNumber)
	assert.Equal(t, "UMB-7", got.Liability.Umbrella.PolicyNumber)
	assert.Equal(t, float64(5000000), got.Liability.Umbrella.EachOccurrence.Value())

	// Endorsements are unioned across sources.
	assert.True(t, got.Liability.Endorsements["additionalInsured"])
	assert.True(t, got.Liability.Endorsements["waiverOfSubrogation"])
}

func TestReconcileDeduplicatesCarriersByName(t *testing.T) {
	a := binderDoc()
	b := binderDoc()
	b.Carriers[0].Letter = "C"
	b.Carriers[0].Name = "kinsale  insurance company"
	b.Liability.GL.InsurerLetter = "C"

	got := Reconcile([]Source{
		{File: "one.pdf", Doc: a},
		{File: "two.pdf", Doc: b},
	})

	require.Len(t, got.Carriers, 1)
	assert.Equal(t, "A", got.Carriers[0].Letter)
	assert.Equal(t, "A", got.Liability.GL.InsurerLetter)
}

func TestReconcileAppendsNote(t *testing.T) {
	got := Reconcile([]Source{
		{File: "binder.pdf", Doc: binderDoc()},
		{File: "umbrella.pdf", Doc: umbrellaDoc()},
	})

	require.NotEmpty(t, got.Notes)
	last := got.Notes[len(got.Notes)-1]
	assert.True(t, strings.Contains(last, "reconciled"), "note: %s", last)
	assert.True(t, strings.Contains(last, "binder.pdf"), "note: %s", last)
	// The note names the fields that came from a non-base source.
	assert.True(t, strings.Contains(last, "umbrella.policyNumber"), "note: %s", last)
}

func TestReconciliationNoteCapsFieldList(t *testing.T) {
	var filled []string
	for i := 0; i < maxNotedFields+3; i++ {
		filled = append(filled, fmt.Sprintf("gl.limits.field%d", i))
	}

	note := reconciliationNote([]string{"one.pdf", "two.pdf"}, filled)
	assert.True(t, strings.Contains(note, "gl.limits.field0"), "note: %s", note)
	assert.False(t, strings.Contains(note, fmt.Sprintf("field%d", maxNotedFields)), "note: %s", note)
	assert.True(t, strings.Contains(note, "and 3 more"), "note: %s", note)

	assert.True(t, strings.Contains(
		reconciliationNote([]string{"one.pdf"}, nil), "no fields backfilled",
	))
}

func TestFallbackClonesFirstSource(t *testing.T) {
	a := binderDoc()
	b := umbrellaDoc()

	got := fallback([]Source{
		{File: "one.pdf", Doc: a},
		{File: "two.pdf", Doc: b},
	})

	require.NotSame(t, a, got)
	assert.Equal(t, "UMB-7", got.Liability.Umbrella.PolicyNumber, "backfilled from the second source")
	assert.Equal(t, "", a.Liability.Umbrella.PolicyNumber, "first source untouched")
}

func TestReconcileDoesNotMutateSources(t *testing.T) {
	a := binderDoc()
	b := umbrellaDoc()
	Reconcile([]Source{
		{File: "one.pdf", Doc: a},
		{File: "two.pdf", Doc: b},
	})

	assert.Equal(t, "A", b.Liability.Umbrella.InsurerLetter, "input letters untouched")
	assert.Empty(t, a.Notes)
}

func TestReconcileMostCompleteBlockWins(t *testing.T) {
	sparse := binderDoc()
	sparse.Liability.GL.PolicyNumber = "GL-SPARSE"
	sparse.Liability.GL.Limits = model.GLLimits{}
	sparse.Liability.GL.Occurrence = false

	rich := binderDoc()

	got := Reconcile([]Source{
		{File: "sparse.pdf", Doc: sparse},
		{File: "rich.pdf", Doc: rich},
	})

	// The richer block is the base; the sparse policy number loses.
	assert.Equal(t, "GL-100", got.Liability.GL.PolicyNumber)
}
