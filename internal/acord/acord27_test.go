package acord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harper-global/coi-cli/internal/model"
)

func propertyDocument() *model.Document {
	return &model.Document{
		Insured: model.Party{Name: "Riverside Storage LLC"},
		Carriers: []model.Carrier{
			{Letter: "A", Name: "Westchester Surplus Lines Insurance Company"},
		},
		Property: &model.PropertyBlock{
			InsurerLetter:   "A",
			PolicyNumber:    "PR-7788",
			EffectiveDate:   "03/01/2026",
			ExpirationDate:  "03/01/2027",
			CauseOfLoss:     "Special Form",
			PropertyAddress: "44 Dock Road, Savannah, GA 31401",
			Coverages: model.PropertyCoverages{
				Building:         model.MoneyFromFloat(500000),
				PersonalProperty: model.MoneyFromFloat(75000),
			},
			Deductible: model.MoneyFromFloat(5000),
			Mortgageholder: model.Mortgageholder{
				Name:       "First Coastal Bank",
				Address:    "1 Bank Plaza, Savannah, GA 31401",
				LoanNumber: "LN-2291",
			},
		},
	}
}

func TestAcord27CoverageRows(t *testing.T) {
	values := Acord27.Resolve(propertyDocument())

	assert.Equal(t, "Building", values["EvidenceOfProperty_CoverageDescription_A"])
	assert.Equal(t, "500,000", values["EvidenceOfProperty_LimitAmount_A"])
	assert.Equal(t, "5,000", values["EvidenceOfProperty_DeductibleAmount_A"])

	assert.Equal(t, "Business Personal Property", values["EvidenceOfProperty_CoverageDescription_B"])
	assert.Equal(t, "75,000", values["EvidenceOfProperty_LimitAmount_B"])
	assert.Equal(t, "5,000", values["EvidenceOfProperty_DeductibleAmount_B"])

	// Absent coverages leave their whole row untouched.
	assert.NotContains(t, values, "EvidenceOfProperty_CoverageDescription_C")
	assert.NotContains(t, values, "EvidenceOfProperty_LimitAmount_C")
	assert.NotContains(t, values, "EvidenceOfProperty_CoverageDescription_D")
	assert.NotContains(t, values, "EvidenceOfProperty_CoverageDescription_E")
}

func TestAcord27CauseOfLoss(t *testing.T) {
	doc := propertyDocument()
	values := Acord27.Resolve(doc)
	assert.Equal(t, true, values["Policy_PolicyType_SpecialIndicator_A"])
	assert.NotContains(t, values, "Policy_PolicyType_BasicIndicator_A")

	doc.Property.CauseOfLoss = "Basic"
	values = Acord27.Resolve(doc)
	assert.Equal(t, true, values["Policy_PolicyType_BasicIndicator_A"])
	assert.NotContains(t, values, "Policy_PolicyType_SpecialIndicator_A")
}

func TestAcord27Mortgageholder(t *testing.T) {
	values := Acord27.Resolve(propertyDocument())

	assert.Equal(t, "First Coastal Bank", values["AdditionalInterest_FullName_A"])
	assert.Equal(t, "LN-2291", values["AdditionalInterest_AccountNumberIdentifier_A"])
	assert.Equal(t, true, values["AdditionalInterest_Interest_MortgageeIndicator_A"])
	assert.Equal(t, "31401", values["AdditionalInterest_MailingAddress_PostalCode_A"])
}

func TestAcord27InsurerResolution(t *testing.T) {
	values := Acord27.Resolve(propertyDocument())
	assert.Equal(t, "Westchester Surplus Lines Insurance Company", values["Insurer_FullName_A"])

	assert.Equal(t, "PR-7788", values["Policy_PolicyNumberIdentifier_A"])
	assert.Equal(t, "44 Dock Road", values["EvidenceOfProperty_PhysicalAddress_StreetLineOne_A"])
	assert.Equal(t, "Savannah", values["EvidenceOfProperty_PhysicalAddress_CityName_A"])
}
