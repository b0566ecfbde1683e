package acord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper-global/coi-cli/internal/model"
)

func glOnlyDocument() *model.Document {
	return &model.Document{
		Producer: model.Producer{
			Name:    "Harper Global Enterprises Inc.",
			Address: "1035 Rockingham Street, Alpharetta, GA 30022",
			Phone:   "470-839-4314",
		},
		Insured: model.Party{
			Name:    "Acme Fabrication LLC",
			Address: "200 Industrial Way, Dayton, OH 45402",
		},
		Carriers: []model.Carrier{
			{Letter: "A", Name: "Kinsale Insurance Company"},
		},
		Liability: &model.LiabilityBlock{
			GL: model.GLCoverage{
				InsurerLetter:  "A",
				PolicyNumber:   "GL-100",
				EffectiveDate:  "01/01/2026",
				ExpirationDate: "01/01/2027",
				Occurrence:     true,
				Limits: model.GLLimits{
					EachOccurrence:   model.MoneyFromFloat(1000000),
					GeneralAggregate: model.MoneyFromFloat(2000000),
					MedicalExpense:   model.MoneyFromFloat(0),
				},
			},
			CertificateHolder: model.Party{
				Name:    "Acme Fabrication LLC",
				Address: "200 Industrial Way, Dayton, OH 45402",
			},
		},
	}
}

func TestAcord25GLOnly(t *testing.T) {
	values := Acord25.Resolve(glOnlyDocument())

	assert.Equal(t, "1,000,000", values["GeneralLiability_EachOccurrence_LimitAmount_A"])
	assert.Equal(t, "2,000,000", values["GeneralLiability_GeneralAggregate_LimitAmount_A"])
	assert.Equal(t, "Excluded", values["GeneralLiability_MedicalExpense_EachPersonLimitAmount_A"])
	assert.Equal(t, true, values["GeneralLiability_CoverageIndicator_A"])
	assert.Equal(t, true, values["GeneralLiability_OccurrenceIndicator_A"])
	assert.Equal(t, "A", values["GeneralLiability_InsurerLetterCode_A"])
	assert.Equal(t, "GL-100", values["Policy_GeneralLiability_PolicyNumberIdentifier_A"])

	// Coverages the document does not carry leave no trace.
	assert.NotContains(t, values, "Vehicle_AnyAutoIndicator_A")
	assert.NotContains(t, values, "Policy_AutomobileLiability_PolicyNumberIdentifier_A")
	assert.NotContains(t, values, "ExcessUmbrella_Umbrella_EachOccurrenceAmount_A")
	assert.NotContains(t, values, "WorkersCompensationEmployersLiability_InsurerLetterCode_A")

	// Unconfirmed endorsements stay blank.
	assert.NotContains(t, values, "CertificateOfInsurance_GeneralLiability_AdditionalInsuredCode_A")
	assert.NotContains(t, values, "Policy_GeneralLiability_SubrogationWaivedCode_A")
}

func TestAcord25CarrierRows(t *testing.T) {
	doc := glOnlyDocument()
	doc.Carriers = append(doc.Carriers, model.Carrier{
		Letter: "B", Name: "Custom Mutual", NAIC: "99999",
	})
	values := Acord25.Resolve(doc)

	assert.Equal(t, "Kinsale Insurance Company", values["Insurer_FullName_A"])
	assert.Equal(t, "38920", values["Insurer_NAICCode_A"], "registry lookup by name")
	assert.Equal(t, "Custom Mutual", values["Insurer_FullName_B"])
	assert.Equal(t, "99999", values["Insurer_NAICCode_B"], "explicit code wins")
	assert.NotContains(t, values, "Insurer_FullName_C")
}

func TestAcord25Endorsements(t *testing.T) {
	doc := glOnlyDocument()
	doc.Liability.Endorsements = model.Endorsements{
		"additionalInsured":   true,
		"waiverOfSubrogation": true,
	}
	values := Acord25.Resolve(doc)

	assert.Equal(t, "Y", values["CertificateOfInsurance_GeneralLiability_AdditionalInsuredCode_A"])
	assert.Equal(t, "Y", values["Policy_GeneralLiability_SubrogationWaivedCode_A"])
	// No auto policy, so auto endorsement codes stay blank even though the
	// flags are confirmed.
	assert.NotContains(t, values, "CertificateOfInsurance_AutomobileLiability_AdditionalInsuredCode_A")
}

func TestAcord25InsurerLetterDefaults(t *testing.T) {
	doc := glOnlyDocument()
	doc.Liability.GL.InsurerLetter = ""
	values := Acord25.Resolve(doc)
	assert.Equal(t, "A", values["GeneralLiability_InsurerLetterCode_A"])
}

func TestAcord25Addresses(t *testing.T) {
	values := Acord25.Resolve(glOnlyDocument())

	assert.Equal(t, "1035 Rockingham Street", values["Producer_MailingAddress_LineOne_A"])
	assert.Equal(t, "Alpharetta", values["Producer_MailingAddress_CityName_A"])
	assert.Equal(t, "GA", values["Producer_MailingAddress_StateOrProvinceCode_A"])
	assert.Equal(t, "30022", values["Producer_MailingAddress_PostalCode_A"])
	assert.Equal(t, "Acme Fabrication LLC", values["NamedInsured_FullName_A"])
	assert.Equal(t, "Acme Fabrication LLC", values["CertificateHolder_FullName_A"])
	assert.Equal(t, "45402", values["CertificateHolder_MailingAddress_PostalCode_A"])
}

func TestAcord25NilLiabilityResolvesQuietly(t *testing.T) {
	values := Acord25.Resolve(&model.Document{})
	require.NotNil(t, values)
	assert.NotContains(t, values, "GeneralLiability_CoverageIndicator_A")
	assert.Contains(t, values, "Form_CompletionDate_A")
}
