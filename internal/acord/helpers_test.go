package acord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoTypeClassification(t *testing.T) {
	tests := []struct {
		autoType  string
		any       bool
		owned     bool
		scheduled bool
		hired     bool
		nonOwned  bool
	}{
		{autoType: "Any Auto", any: true},
		{autoType: "any", any: true},
		{autoType: "Owned Autos Only", owned: true},
		{autoType: "Owned, Hired and Non-Owned Autos", owned: true, hired: true, nonOwned: true},
		{autoType: "Hired and Non-Owned Autos", hired: true, nonOwned: true},
		{autoType: "Non-Owned Autos Only", nonOwned: true},
		{autoType: "Scheduled Autos", scheduled: true},
		{autoType: "preowned vehicles", owned: false},
		{autoType: ""},
	}
	for _, tt := range tests {
		t.Run(tt.autoType, func(t *testing.T) {
			assert.Equal(t, tt.any, autoTypeAny(tt.autoType), "any")
			assert.Equal(t, tt.owned, autoTypeOwned(tt.autoType), "owned")
			assert.Equal(t, tt.scheduled, autoTypeScheduled(tt.autoType), "scheduled")
			assert.Equal(t, tt.hired, autoTypeHired(tt.autoType), "hired")
			assert.Equal(t, tt.nonOwned, autoTypeNonOwned(tt.autoType), "non-owned")
		})
	}
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("hired and owned autos", "owned"))
	assert.False(t, containsWord("preowned autos", "owned"))
	assert.True(t, containsWord("owned", "owned"))
	assert.False(t, containsWord("", "owned"))
	assert.True(t, containsWord("non-owned autos", "non-owned"))
}

func TestLetterOr(t *testing.T) {
	assert.Equal(t, "B", letterOr("B", false))
	assert.Equal(t, "A", letterOr("", true))
	assert.Equal(t, "", letterOr("", false))
}
