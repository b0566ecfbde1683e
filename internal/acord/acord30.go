package acord

import (
	"github.com/harper-global/coi-cli/internal/format"
	"github.com/harper-global/coi-cli/internal/model"
)

// Acord30 maps the garage certificate. The template is an XFA export, so
// every terminal field carries the "F[0].P1[0]." prefix and an "[0]" index.
// The garage policy number and dates repeat across rows A through C because
// garage liability, garagekeepers, and the GL portion share one policy.
var Acord30 = Table{
	// Header.
	"F[0].P1[0].Form_CompletionDate_A[0]":                                completionDate,
	"F[0].P1[0].CertificateOfInsurance_CertificateNumberIdentifier_A[0]": blank,
	"F[0].P1[0].CertificateOfInsurance_RevisionNumberIdentifier_A[0]":    blank,

	// Producer.
	"F[0].P1[0].Producer_FullName_A[0]": func(d *model.Document) any { return d.Producer.Name },
	"F[0].P1[0].Producer_MailingAddress_LineOne_A[0]": func(d *model.Document) any {
		return format.SplitAddress(d.Producer.Address).Line1
	},
	"F[0].P1[0].Producer_MailingAddress_LineTwo_A[0]": func(d *model.Document) any {
		return format.SplitAddress(d.Producer.Address).Line2
	},
	"F[0].P1[0].Producer_MailingAddress_CityName_A[0]": func(d *model.Document) any {
		return format.SplitAddress(d.Producer.Address).City
	},
	"F[0].P1[0].Producer_MailingAddress_StateOrProvinceCode_A[0]": func(d *model.Document) any {
		return format.SplitAddress(d.Producer.Address).State
	},
	"F[0].P1[0].Producer_MailingAddress_PostalCode_A[0]": func(d *model.Document) any {
		return format.SplitAddress(d.Producer.Address).Zip
	},
	"F[0].P1[0].Producer_ContactPerson_FullName_A[0]": func(d *model.Document) any {
		return d.Producer.ContactName
	},
	"F[0].P1[0].Producer_ContactPerson_PhoneNumber_A[0]": func(d *model.Document) any {
		return d.Producer.Phone
	},
	"F[0].P1[0].Producer_FaxNumber_A[0]": func(d *model.Document) any { return d.Producer.Fax },
	"F[0].P1[0].Producer_ContactPerson_EmailAddress_A[0]": func(d *model.Document) any {
		return d.Producer.Email
	},
	"F[0].P1[0].Producer_CustomerIdentifier_A[0]":                 blank,
	"F[0].P1[0].Producer_AuthorizedRepresentative_Signature_A[0]": blank,

	// Insured.
	"F[0].P1[0].NamedInsured_FullName_A[0]": func(d *model.Document) any { return d.Insured.Name },
	"F[0].P1[0].NamedInsured_MailingAddress_LineOne_A[0]": func(d *model.Document) any {
		return format.SplitAddress(d.Insured.Address).Line1
	},
	"F[0].P1[0].NamedInsured_MailingAddress_LineTwo_A[0]": func(d *model.Document) any {
		return format.SplitAddress(d.Insured.Address).Line2
	},
	"F[0].P1[0].NamedInsured_MailingAddress_CityName_A[0]": func(d *model.Document) any {
		return format.SplitAddress(d.Insured.Address).City
	},
	"F[0].P1[0].NamedInsured_MailingAddress_StateOrProvinceCode_A[0]": func(d *model.Document) any {
		return format.SplitAddress(d.Insured.Address).State
	},
	"F[0].P1[0].NamedInsured_MailingAddress_PostalCode_A[0]": func(d *model.Document) any {
		return format.SplitAddress(d.Insured.Address).Zip
	},

	// Garage liability, row A.
	"F[0].P1[0].GarageLiability_InsurerLetterCode_A[0]": func(d *model.Document) any {
		return letterOr(garage(d).InsurerLetter, d.HasGarage())
	},
	"F[0].P1[0].Policy_PolicyNumberIdentifier_A[0]": func(d *model.Document) any {
		return garage(d).PolicyNumber
	},
	"F[0].P1[0].Policy_EffectiveDate_A[0]":  func(d *model.Document) any { return garage(d).EffectiveDate },
	"F[0].P1[0].Policy_ExpirationDate_A[0]": func(d *model.Document) any { return garage(d).ExpirationDate },

	"F[0].P1[0].GarageLiability_AllOwnedAutosIndicator_A[0]": func(d *model.Document) any {
		return garage(d).GarageLiability.AllOwnedAutos
	},
	"F[0].P1[0].GarageLiability_HiredAutosIndicator_A[0]": func(d *model.Document) any {
		return garage(d).GarageLiability.HiredAutos
	},
	"F[0].P1[0].GarageLiability_NonOwnedAutosUsedInGarageBusinessIndicator_A[0]": func(d *model.Document) any {
		return garage(d).GarageLiability.NonOwnedAutos
	},
	"F[0].P1[0].GarageLiability_OtherIndicator_A[0]":   never,
	"F[0].P1[0].GarageLiability_OtherDescription_A[0]": blank,

	"F[0].P1[0].GarageLiability_AutoOnly_EachAccidentLimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).GarageLiability.AutoOnlyEachAccident)
	},
	"F[0].P1[0].GarageLiability_OtherThanAutoOnly_EachAccidentLimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).GarageLiability.OtherThanAutoOnly)
	},
	"F[0].P1[0].GarageLiability_OtherThanAutoOnly_AggregateLimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).GarageLiability.AutoOnlyAggregate)
	},

	"F[0].P1[0].CertificateOfInsurance_AdditionalInsuredCode_A[0]": func(d *model.Document) any {
		return yes(garage(d).PolicyNumber != "" && endorsed30(d, "additionalInsured"))
	},
	"F[0].P1[0].Policy_SubrogationWaivedCode_A[0]": func(d *model.Document) any {
		return yes(garage(d).PolicyNumber != "" && endorsed30(d, "waiverOfSubrogation"))
	},

	// Garagekeepers, row B.
	"F[0].P1[0].GarageKeepersLiability_InsurerLetterCode_A[0]": func(d *model.Document) any {
		return letterOr(garage(d).InsurerLetter, d.HasGarage())
	},
	"F[0].P1[0].Policy_PolicyNumberIdentifier_B[0]": func(d *model.Document) any {
		return garage(d).PolicyNumber
	},
	"F[0].P1[0].Policy_EffectiveDate_B[0]":  func(d *model.Document) any { return garage(d).EffectiveDate },
	"F[0].P1[0].Policy_ExpirationDate_B[0]": func(d *model.Document) any { return garage(d).ExpirationDate },

	"F[0].P1[0].GarageKeepersLiability_LegalLiabilityIndicator_A[0]": func(d *model.Document) any {
		return garage(d).GarageKeepers.LegalLiability
	},
	"F[0].P1[0].GarageKeepersLiability_DirectBasisIndicator_A[0]": func(d *model.Document) any {
		return garage(d).GarageKeepers.DirectBasis
	},
	"F[0].P1[0].GarageKeepersLiability_PrimaryIndicator_A[0]": func(d *model.Document) any {
		return garage(d).GarageKeepers.Primary
	},
	"F[0].P1[0].GarageKeepersLiability_ExcessIndicator_A[0]": func(d *model.Document) any {
		return garage(d).GarageKeepers.Excess
	},
	"F[0].P1[0].GarageKeepersLiability_ComprehensiveIndicator_A[0]": func(d *model.Document) any {
		return garage(d).GarageKeepers.Comprehensive.Present()
	},
	"F[0].P1[0].GarageKeepersLiability_SpecifiedPerilsIndicator_A[0]": func(d *model.Document) any {
		return garage(d).GarageKeepers.SpecifiedPerils.Present()
	},
	"F[0].P1[0].GarageKeepersLiability_CollisionIndicator_A[0]": func(d *model.Document) any {
		return garage(d).GarageKeepers.Collision.Present()
	},

	"F[0].P1[0].GarageKeepersLiability_ComprehensiveOrSpecifiedPerilsLimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).GarageKeepers.Comprehensive)
	},
	"F[0].P1[0].GarageKeepersLiability_ComprehensiveOrSpecifiedPerilsLimitAmount_B[0]": blank,
	"F[0].P1[0].GarageKeepersLiability_CollisionLimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).GarageKeepers.Collision)
	},
	"F[0].P1[0].GarageKeepersLiability_CollisionLimitAmount_B[0]":       blank,
	"F[0].P1[0].GarageKeepersLiability_LocationProducerIdentifier_A[0]": blank,
	"F[0].P1[0].GarageKeepersLiability_LocationProducerIdentifier_B[0]": blank,
	"F[0].P1[0].GarageKeepersLiability_LocationProducerIdentifier_C[0]": blank,
	"F[0].P1[0].GarageKeepersLiability_LocationProducerIdentifier_D[0]": blank,

	"F[0].P1[0].CertificateOfInsurance_AdditionalInsuredCode_B[0]": blank,
	"F[0].P1[0].Policy_SubrogationWaivedCode_B[0]":                 blank,

	// General liability portion, row C. Populated only when the garage
	// policy includes GL.
	"F[0].P1[0].GeneralLiability_InsurerLetterCode_A[0]": func(d *model.Document) any {
		g := garage(d)
		if !g.HasCommercialGL() {
			return ""
		}
		return letterOr(g.InsurerLetter, true)
	},
	"F[0].P1[0].Policy_PolicyNumberIdentifier_C[0]": func(d *model.Document) any {
		return ifGarageGL(d, garage(d).PolicyNumber)
	},
	"F[0].P1[0].Policy_EffectiveDate_C[0]": func(d *model.Document) any {
		return ifGarageGL(d, garage(d).EffectiveDate)
	},
	"F[0].P1[0].Policy_ExpirationDate_C[0]": func(d *model.Document) any {
		return ifGarageGL(d, garage(d).ExpirationDate)
	},

	"F[0].P1[0].GeneralLiability_CoverageIndicator_A[0]": func(d *model.Document) any {
		g := garage(d)
		return g.HasCommercialGL()
	},
	"F[0].P1[0].GeneralLiability_ClaimsMadeIndicator_A[0]": never,
	"F[0].P1[0].GeneralLiability_OccurrenceIndicator_A[0]": func(d *model.Document) any {
		return garage(d).CommercialGL.Included
	},

	"F[0].P1[0].GeneralLiability_EachOccurrence_LimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).CommercialGL.EachOccurrence)
	},
	"F[0].P1[0].GeneralLiability_FireDamageRentedPremises_EachOccurrenceLimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).CommercialGL.DamageToRentedPremises)
	},
	"F[0].P1[0].GeneralLiability_MedicalExpense_EachPersonLimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).CommercialGL.MedicalExpense)
	},
	"F[0].P1[0].GeneralLiability_PersonalAndAdvertisingInjury_LimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).CommercialGL.PersonalAdvInjury)
	},
	"F[0].P1[0].GeneralLiability_GeneralAggregate_LimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).CommercialGL.GeneralAggregate)
	},
	"F[0].P1[0].GeneralLiability_ProductsAndCompletedOperations_AggregateLimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).CommercialGL.ProductsCompOp)
	},

	"F[0].P1[0].GeneralLiability_GeneralAggregate_LimitAppliesPerPolicyIndicator_A[0]": func(d *model.Document) any {
		g := garage(d)
		return g.HasCommercialGL()
	},
	"F[0].P1[0].GeneralLiability_GeneralAggregate_LimitAppliesPerProjectIndicator_A[0]":  never,
	"F[0].P1[0].GeneralLiability_GeneralAggregate_LimitAppliesPerLocationIndicator_A[0]": never,

	"F[0].P1[0].GeneralLiability_OtherCoverageIndicator_A[0]":        never,
	"F[0].P1[0].GeneralLiability_OtherCoverageIndicator_B[0]":        never,
	"F[0].P1[0].GeneralLiability_OtherCoverageDescription_A[0]":      blank,
	"F[0].P1[0].GeneralLiability_OtherCoverageDescription_B[0]":      blank,
	"F[0].P1[0].GeneralLiability_OtherCoverageLimitAmount_A[0]":      blank,
	"F[0].P1[0].GeneralLiability_OtherCoverageLimitDescription_A[0]": blank,

	"F[0].P1[0].CertificateOfInsurance_AdditionalInsuredCode_C[0]": func(d *model.Document) any {
		return yes(garage(d).CommercialGL.Included && endorsed30(d, "additionalInsured"))
	},
	"F[0].P1[0].Policy_SubrogationWaivedCode_C[0]": func(d *model.Document) any {
		return yes(garage(d).CommercialGL.Included && endorsed30(d, "waiverOfSubrogation"))
	},

	// Other policy, row D. No schema source.
	"F[0].P1[0].OtherPolicy_InsurerLetterCode_A[0]":                blank,
	"F[0].P1[0].OtherPolicy_OtherPolicyDescription_A[0]":           blank,
	"F[0].P1[0].Policy_PolicyNumberIdentifier_D[0]":                blank,
	"F[0].P1[0].Policy_EffectiveDate_D[0]":                         blank,
	"F[0].P1[0].Policy_ExpirationDate_D[0]":                        blank,
	"F[0].P1[0].OtherPolicy_CoverageLimitAmount_A[0]":              blank,
	"F[0].P1[0].CertificateOfInsurance_AdditionalInsuredCode_D[0]": blank,
	"F[0].P1[0].Policy_SubrogationWaivedCode_D[0]":                 blank,

	// Umbrella, row E.
	"F[0].P1[0].ExcessUmbrella_InsurerLetterCode_A[0]": func(d *model.Document) any {
		g := garage(d)
		return letterOr(g.Umbrella.InsurerLetter, g.HasUmbrella())
	},
	"F[0].P1[0].Policy_PolicyNumberIdentifier_E[0]": func(d *model.Document) any {
		return garage(d).Umbrella.PolicyNumber
	},
	"F[0].P1[0].Policy_EffectiveDate_E[0]": func(d *model.Document) any {
		return garage(d).Umbrella.EffectiveDate
	},
	"F[0].P1[0].Policy_ExpirationDate_E[0]": func(d *model.Document) any {
		return garage(d).Umbrella.ExpirationDate
	},

	"F[0].P1[0].Policy_PolicyType_UmbrellaIndicator_A[0]": func(d *model.Document) any {
		return garage(d).Umbrella.EachOccurrence.Present()
	},
	"F[0].P1[0].Policy_PolicyType_ExcessIndicator_A[0]": never,
	"F[0].P1[0].ExcessUmbrella_OccurrenceIndicator_A[0]": func(d *model.Document) any {
		return garage(d).Umbrella.EachOccurrence.Present()
	},
	"F[0].P1[0].ExcessUmbrella_ClaimsMadeIndicator_A[0]": never,
	"F[0].P1[0].ExcessUmbrella_DeductibleIndicator_A[0]": never,
	"F[0].P1[0].ExcessUmbrella_RetentionIndicator_A[0]": func(d *model.Document) any {
		return garage(d).Umbrella.Retention.Present()
	},

	"F[0].P1[0].ExcessUmbrella_Umbrella_EachOccurrenceAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).Umbrella.EachOccurrence)
	},
	"F[0].P1[0].ExcessUmbrella_Umbrella_AggregateAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).Umbrella.Aggregate)
	},
	"F[0].P1[0].ExcessUmbrella_Umbrella_DeductibleOrRetentionAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).Umbrella.Retention)
	},
	"F[0].P1[0].ExcessUmbrella_OtherCoverageDescription_A[0]": blank,
	"F[0].P1[0].ExcessUmbrella_OtherCoverageLimitAmount_A[0]": blank,

	"F[0].P1[0].CertificateOfInsurance_AdditionalInsuredCode_F[0]": blank,
	"F[0].P1[0].Policy_SubrogationWaivedCode_E[0]":                 blank,

	// Workers compensation, row F.
	"F[0].P1[0].WorkersCompensationEmployersLiability_InsurerLetterCode_A[0]": func(d *model.Document) any {
		g := garage(d)
		return letterOr(g.WorkersComp.InsurerLetter, g.HasWorkersComp())
	},
	"F[0].P1[0].Policy_PolicyNumberIdentifier_F[0]": func(d *model.Document) any {
		return garage(d).WorkersComp.PolicyNumber
	},
	"F[0].P1[0].Policy_EffectiveDate_F[0]": func(d *model.Document) any {
		return garage(d).WorkersComp.EffectiveDate
	},
	"F[0].P1[0].Policy_ExpirationDate_F[0]": func(d *model.Document) any {
		return garage(d).WorkersComp.ExpirationDate
	},

	"F[0].P1[0].WorkersCompensationEmployersLiability_WorkersCompensationStatutoryLimitIndicator_A[0]": func(d *model.Document) any {
		return garage(d).WorkersComp.EachAccident.Present()
	},
	"F[0].P1[0].WorkersCompensationEmployersLiability_OtherCoverageIndicator_A[0]":      never,
	"F[0].P1[0].WorkersCompensationEmployersLiability_OtherCoverageDescription_A[0]":    blank,
	"F[0].P1[0].WorkersCompensationEmployersLiability_AnyPersonsExcludedIndicator_A[0]": blank,

	"F[0].P1[0].WorkersCompensationEmployersLiability_EmployersLiability_EachAccidentLimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).WorkersComp.EachAccident)
	},
	"F[0].P1[0].WorkersCompensationEmployersLiability_EmployersLiability_DiseaseEachEmployeeLimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).WorkersComp.DiseaseEachEmployee)
	},
	"F[0].P1[0].WorkersCompensationEmployersLiability_EmployersLiability_DiseasePolicyLimitAmount_A[0]": func(d *model.Document) any {
		return amt(garage(d).WorkersComp.DiseasePolicyLimit)
	},

	"F[0].P1[0].Policy_SubrogationWaivedCode_F[0]": func(d *model.Document) any {
		return yes(garage(d).WorkersComp.PolicyNumber != "" && endorsed30(d, "waiverOfSubrogation"))
	},

	// Remarks.
	"F[0].P1[0].CertificateOfLiabilityInsurance_ACORDForm_RemarkText_A[0]": func(d *model.Document) any {
		return garage(d).Remarks
	},

	// Certificate holder.
	"F[0].P1[0].CertificateHolder_FullName_A[0]": func(d *model.Document) any {
		return garage(d).CertificateHolder.Name
	},
	"F[0].P1[0].CertificateHolder_MailingAddress_LineOne_A[0]": func(d *model.Document) any {
		return format.SplitAddress(garage(d).CertificateHolder.Address).Line1
	},
	"F[0].P1[0].CertificateHolder_MailingAddress_LineTwo_A[0]": func(d *model.Document) any {
		return format.SplitAddress(garage(d).CertificateHolder.Address).Line2
	},
	"F[0].P1[0].CertificateHolder_MailingAddress_CityName_A[0]": func(d *model.Document) any {
		return format.SplitAddress(garage(d).CertificateHolder.Address).City
	},
	"F[0].P1[0].CertificateHolder_MailingAddress_StateOrProvinceCode_A[0]": func(d *model.Document) any {
		return format.SplitAddress(garage(d).CertificateHolder.Address).State
	},
	"F[0].P1[0].CertificateHolder_MailingAddress_PostalCode_A[0]": func(d *model.Document) any {
		return format.SplitAddress(garage(d).CertificateHolder.Address).Zip
	},
}

func init() {
	for _, letter := range []string{"A", "B", "C", "D", "E", "F"} {
		l := letter
		Acord30["F[0].P1[0].Insurer_FullName_"+l+"[0]"] = func(d *model.Document) any { return carrierName(d, l) }
		Acord30["F[0].P1[0].Insurer_NAICCode_"+l+"[0]"] = func(d *model.Document) any { return carrierNAIC(d, l) }
	}
}

// ifGarageGL gates a row C value on the GL portion being included in the
// garage policy.
func ifGarageGL(d *model.Document, v string) string {
	if garage(d).CommercialGL.Included {
		return v
	}
	return ""
}
