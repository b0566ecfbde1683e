package acord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harper-global/coi-cli/internal/model"
)

func garageDocument() *model.Document {
	return &model.Document{
		Insured: model.Party{Name: "Miller Auto Service Inc"},
		Carriers: []model.Carrier{
			{Letter: "A", Name: "Colony Insurance Company"},
		},
		Garage: &model.GarageBlock{
			InsurerLetter:  "A",
			PolicyNumber:   "GAR-5521",
			EffectiveDate:  "06/01/2026",
			ExpirationDate: "06/01/2027",
			GarageLiability: model.GarageLiability{
				HiredAutos:           true,
				NonOwnedAutos:        true,
				AutoOnlyEachAccident: model.MoneyFromFloat(1000000),
			},
			GarageKeepers: model.GarageKeepers{
				LegalLiability: true,
				DirectBasis:    true,
				Comprehensive:  model.MoneyFromFloat(250000),
				Collision:      model.MoneyFromFloat(250000),
			},
		},
	}
}

func TestAcord30GarageLiabilityRow(t *testing.T) {
	values := Acord30.Resolve(garageDocument())

	assert.Equal(t, "A", values["F[0].P1[0].GarageLiability_InsurerLetterCode_A[0]"])
	assert.Equal(t, "GAR-5521", values["F[0].P1[0].Policy_PolicyNumberIdentifier_A[0]"])
	assert.Equal(t, "1,000,000", values["F[0].P1[0].GarageLiability_AutoOnly_EachAccidentLimitAmount_A[0]"])
	assert.Equal(t, true, values["F[0].P1[0].GarageLiability_HiredAutosIndicator_A[0]"])
	assert.Equal(t, true, values["F[0].P1[0].GarageLiability_NonOwnedAutosUsedInGarageBusinessIndicator_A[0]"])
	assert.NotContains(t, values, "F[0].P1[0].GarageLiability_AllOwnedAutosIndicator_A[0]")
}

func TestAcord30GarageKeepersRow(t *testing.T) {
	values := Acord30.Resolve(garageDocument())

	assert.Equal(t, true, values["F[0].P1[0].GarageKeepersLiability_LegalLiabilityIndicator_A[0]"])
	assert.Equal(t, true, values["F[0].P1[0].GarageKeepersLiability_DirectBasisIndicator_A[0]"])
	assert.Equal(t, true, values["F[0].P1[0].GarageKeepersLiability_ComprehensiveIndicator_A[0]"])
	assert.Equal(t, "250,000", values["F[0].P1[0].GarageKeepersLiability_ComprehensiveOrSpecifiedPerilsLimitAmount_A[0]"])
	assert.Equal(t, "250,000", values["F[0].P1[0].GarageKeepersLiability_CollisionLimitAmount_A[0]"])
	// Garagekeepers rides the garage policy.
	assert.Equal(t, "GAR-5521", values["F[0].P1[0].Policy_PolicyNumberIdentifier_B[0]"])
}

func TestAcord30CommercialGLGating(t *testing.T) {
	doc := garageDocument()
	values := Acord30.Resolve(doc)

	// Without an included GL portion, row C stays empty.
	assert.NotContains(t, values, "F[0].P1[0].GeneralLiability_CoverageIndicator_A[0]")
	assert.NotContains(t, values, "F[0].P1[0].Policy_PolicyNumberIdentifier_C[0]")

	doc.Garage.CommercialGL = model.GarageGL{
		Included:         true,
		EachOccurrence:   model.MoneyFromFloat(1000000),
		GeneralAggregate: model.MoneyFromFloat(2000000),
	}
	values = Acord30.Resolve(doc)

	assert.Equal(t, true, values["F[0].P1[0].GeneralLiability_CoverageIndicator_A[0]"])
	assert.Equal(t, "GAR-5521", values["F[0].P1[0].Policy_PolicyNumberIdentifier_C[0]"])
	assert.Equal(t, "1,000,000", values["F[0].P1[0].GeneralLiability_EachOccurrence_LimitAmount_A[0]"])
	assert.Equal(t, "A", values["F[0].P1[0].GeneralLiability_InsurerLetterCode_A[0]"])
}

func TestAcord30CarrierRows(t *testing.T) {
	values := Acord30.Resolve(garageDocument())
	assert.Equal(t, "Colony Insurance Company", values["F[0].P1[0].Insurer_FullName_A[0]"])
	assert.Equal(t, "39993", values["F[0].P1[0].Insurer_NAICCode_A[0]"])
}
