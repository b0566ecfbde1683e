package acord

import (
	"strings"

	"github.com/harper-global/coi-cli/internal/format"
	"github.com/harper-global/coi-cli/internal/model"
)

// Acord25 maps every field of the ACORD 25 certificate of liability
// insurance. Field names were verified against a dump of the fillable
// template.
var Acord25 = Table{
	// Header.
	"Form_CompletionDate_A": completionDate,
	"CertificateOfInsurance_CertificateNumberIdentifier_A": func(d *model.Document) any {
		return liability(d).CertificateNumber
	},
	"CertificateOfInsurance_RevisionNumberIdentifier_A": blank,

	// Producer.
	"Producer_FullName_A": func(d *model.Document) any { return d.Producer.Name },
	"Producer_MailingAddress_LineOne_A": func(d *model.Document) any {
		return format.SplitAddress(d.Producer.Address).Line1
	},
	"Producer_MailingAddress_LineTwo_A": func(d *model.Document) any {
		return format.SplitAddress(d.Producer.Address).Line2
	},
	"Producer_MailingAddress_CityName_A": func(d *model.Document) any {
		return format.SplitAddress(d.Producer.Address).City
	},
	"Producer_MailingAddress_StateOrProvinceCode_A": func(d *model.Document) any {
		return format.SplitAddress(d.Producer.Address).State
	},
	"Producer_MailingAddress_PostalCode_A": func(d *model.Document) any {
		return format.SplitAddress(d.Producer.Address).Zip
	},
	"Producer_ContactPerson_FullName_A":    func(d *model.Document) any { return d.Producer.ContactName },
	"Producer_ContactPerson_PhoneNumber_A": func(d *model.Document) any { return d.Producer.Phone },
	"Producer_FaxNumber_A":                 func(d *model.Document) any { return d.Producer.Fax },
	"Producer_ContactPerson_EmailAddress_A": func(d *model.Document) any {
		return d.Producer.Email
	},
	"Producer_AuthorizedRepresentative_Signature_A": blank,

	// Insured.
	"NamedInsured_FullName_A": func(d *model.Document) any { return d.Insured.Name },
	"NamedInsured_MailingAddress_LineOne_A": func(d *model.Document) any {
		return format.SplitAddress(d.Insured.Address).Line1
	},
	"NamedInsured_MailingAddress_LineTwo_A": func(d *model.Document) any {
		return format.SplitAddress(d.Insured.Address).Line2
	},
	"NamedInsured_MailingAddress_CityName_A": func(d *model.Document) any {
		return format.SplitAddress(d.Insured.Address).City
	},
	"NamedInsured_MailingAddress_StateOrProvinceCode_A": func(d *model.Document) any {
		return format.SplitAddress(d.Insured.Address).State
	},
	"NamedInsured_MailingAddress_PostalCode_A": func(d *model.Document) any {
		return format.SplitAddress(d.Insured.Address).Zip
	},

	// General liability.
	"GeneralLiability_InsurerLetterCode_A": func(d *model.Document) any {
		return letterOr(liability(d).GL.InsurerLetter, d.HasGL())
	},
	"Policy_GeneralLiability_PolicyNumberIdentifier_A": func(d *model.Document) any {
		return liability(d).GL.PolicyNumber
	},
	"Policy_GeneralLiability_EffectiveDate_A": func(d *model.Document) any {
		return liability(d).GL.EffectiveDate
	},
	"Policy_GeneralLiability_ExpirationDate_A": func(d *model.Document) any {
		return liability(d).GL.ExpirationDate
	},

	"GeneralLiability_CoverageIndicator_A":   func(d *model.Document) any { return d.HasGL() },
	"GeneralLiability_ClaimsMadeIndicator_A": func(d *model.Document) any { return liability(d).GL.ClaimsMade },
	"GeneralLiability_OccurrenceIndicator_A": func(d *model.Document) any { return liability(d).GL.Occurrence },

	"GeneralLiability_EachOccurrence_LimitAmount_A": func(d *model.Document) any {
		return amt(liability(d).GL.Limits.EachOccurrence)
	},
	"GeneralLiability_FireDamageRentedPremises_EachOccurrenceLimitAmount_A": func(d *model.Document) any {
		return amt(liability(d).GL.Limits.DamageToRentedPremises)
	},
	"GeneralLiability_MedicalExpense_EachPersonLimitAmount_A": func(d *model.Document) any {
		return amt(liability(d).GL.Limits.MedicalExpense)
	},
	"GeneralLiability_PersonalAndAdvertisingInjury_LimitAmount_A": func(d *model.Document) any {
		return amt(liability(d).GL.Limits.PersonalAdvInjury)
	},
	"GeneralLiability_GeneralAggregate_LimitAmount_A": func(d *model.Document) any {
		return amt(liability(d).GL.Limits.GeneralAggregate)
	},
	"GeneralLiability_ProductsAndCompletedOperations_AggregateLimitAmount_A": func(d *model.Document) any {
		return amt(liability(d).GL.Limits.ProductsCompOp)
	},

	"GeneralLiability_GeneralAggregate_LimitAppliesPerPolicyIndicator_A":   func(d *model.Document) any { return d.HasGL() },
	"GeneralLiability_GeneralAggregate_LimitAppliesPerProjectIndicator_A":  never,
	"GeneralLiability_GeneralAggregate_LimitAppliesPerLocationIndicator_A": never,
	"GeneralLiability_GeneralAggregate_LimitAppliesToOtherIndicator_A":     never,
	"GeneralLiability_GeneralAggregate_LimitAppliesToCode_A":               blank,

	"GeneralLiability_OtherCoverageIndicator_A":        never,
	"GeneralLiability_OtherCoverageIndicator_B":        never,
	"GeneralLiability_OtherCoverageDescription_A":      blank,
	"GeneralLiability_OtherCoverageDescription_B":      blank,
	"GeneralLiability_OtherCoverageLimitAmount_A":      blank,
	"GeneralLiability_OtherCoverageLimitDescription_A": blank,

	// GL endorsements: only surfaced when the parent policy exists.
	"CertificateOfInsurance_GeneralLiability_AdditionalInsuredCode_A": func(d *model.Document) any {
		return yes(liability(d).GL.PolicyNumber != "" && endorsed25(d, "additionalInsured"))
	},
	"Policy_GeneralLiability_SubrogationWaivedCode_A": func(d *model.Document) any {
		return yes(liability(d).GL.PolicyNumber != "" && endorsed25(d, "waiverOfSubrogation"))
	},

	// Automobile liability.
	"Vehicle_InsurerLetterCode_A": func(d *model.Document) any {
		return letterOr(liability(d).Auto.InsurerLetter, d.HasAuto())
	},
	"Policy_AutomobileLiability_PolicyNumberIdentifier_A": func(d *model.Document) any {
		return liability(d).Auto.PolicyNumber
	},
	"Policy_AutomobileLiability_EffectiveDate_A": func(d *model.Document) any {
		return liability(d).Auto.EffectiveDate
	},
	"Policy_AutomobileLiability_ExpirationDate_A": func(d *model.Document) any {
		return liability(d).Auto.ExpirationDate
	},

	"Vehicle_AnyAutoIndicator_A":       func(d *model.Document) any { return autoTypeAny(liability(d).Auto.AutoType) },
	"Vehicle_AllOwnedAutosIndicator_A": func(d *model.Document) any { return autoTypeOwned(liability(d).Auto.AutoType) },
	"Vehicle_ScheduledAutosIndicator_A": func(d *model.Document) any {
		return autoTypeScheduled(liability(d).Auto.AutoType)
	},
	"Vehicle_HiredAutosIndicator_A": func(d *model.Document) any { return autoTypeHired(liability(d).Auto.AutoType) },
	"Vehicle_NonOwnedAutosIndicator_A": func(d *model.Document) any {
		return autoTypeNonOwned(liability(d).Auto.AutoType)
	},
	"Vehicle_OtherCoveredAutoIndicator_A":   never,
	"Vehicle_OtherCoveredAutoIndicator_B":   never,
	"Vehicle_OtherCoveredAutoDescription_A": blank,
	"Vehicle_OtherCoveredAutoDescription_B": blank,

	"Vehicle_CombinedSingleLimit_EachAccidentAmount_A": func(d *model.Document) any {
		return amt(liability(d).Auto.CombinedSingleLimit)
	},
	"Vehicle_BodilyInjury_PerPersonLimitAmount_A":     blank,
	"Vehicle_BodilyInjury_PerAccidentLimitAmount_A":   blank,
	"Vehicle_PropertyDamage_PerAccidentLimitAmount_A": blank,
	"Vehicle_OtherCoverage_CoverageDescription_A":     blank,
	"Vehicle_OtherCoverage_LimitAmount_A":             blank,

	"CertificateOfInsurance_AutomobileLiability_AdditionalInsuredCode_A": func(d *model.Document) any {
		return yes(liability(d).Auto.PolicyNumber != "" && endorsed25(d, "additionalInsured"))
	},
	"Policy_AutomobileLiability_SubrogationWaivedCode_A": func(d *model.Document) any {
		return yes(liability(d).Auto.PolicyNumber != "" && endorsed25(d, "waiverOfSubrogation"))
	},

	// Umbrella / excess.
	"ExcessUmbrella_InsurerLetterCode_A": func(d *model.Document) any {
		return letterOr(liability(d).Umbrella.InsurerLetter, d.HasUmbrella())
	},
	"Policy_ExcessLiability_PolicyNumberIdentifier_A": func(d *model.Document) any {
		return liability(d).Umbrella.PolicyNumber
	},
	"Policy_ExcessLiability_EffectiveDate_A": func(d *model.Document) any {
		return liability(d).Umbrella.EffectiveDate
	},
	"Policy_ExcessLiability_ExpirationDate_A": func(d *model.Document) any {
		return liability(d).Umbrella.ExpirationDate
	},

	"Policy_PolicyType_UmbrellaIndicator_A": func(d *model.Document) any {
		t := strings.ToLower(liability(d).Umbrella.Type)
		return d.HasUmbrella() && (t == "umbrella" || t == "")
	},
	"Policy_PolicyType_ExcessIndicator_A": func(d *model.Document) any {
		return strings.EqualFold(liability(d).Umbrella.Type, "excess")
	},
	"ExcessUmbrella_OccurrenceIndicator_A": func(d *model.Document) any {
		return liability(d).Umbrella.EachOccurrence.Present()
	},
	"ExcessUmbrella_ClaimsMadeIndicator_A": never,
	"ExcessUmbrella_DeductibleIndicator_A": never,
	"ExcessUmbrella_RetentionIndicator_A": func(d *model.Document) any {
		return liability(d).Umbrella.Retention.Present()
	},

	"ExcessUmbrella_Umbrella_EachOccurrenceAmount_A": func(d *model.Document) any {
		return amt(liability(d).Umbrella.EachOccurrence)
	},
	"ExcessUmbrella_Umbrella_AggregateAmount_A": func(d *model.Document) any {
		return amt(liability(d).Umbrella.Aggregate)
	},
	"ExcessUmbrella_Umbrella_DeductibleOrRetentionAmount_A": func(d *model.Document) any {
		return amt(liability(d).Umbrella.Retention)
	},
	"ExcessUmbrella_OtherCoverageDescription_A": blank,
	"ExcessUmbrella_OtherCoverageLimitAmount_A": blank,

	"CertificateOfInsurance_ExcessLiability_AdditionalInsuredCode_A": func(d *model.Document) any {
		return yes(liability(d).Umbrella.PolicyNumber != "" && endorsed25(d, "additionalInsured"))
	},
	"Policy_ExcessLiability_SubrogationWaivedCode_A": func(d *model.Document) any {
		return yes(liability(d).Umbrella.PolicyNumber != "" && endorsed25(d, "waiverOfSubrogation"))
	},

	// Workers compensation.
	"WorkersCompensationEmployersLiability_InsurerLetterCode_A": func(d *model.Document) any {
		return letterOr(liability(d).WorkersComp.InsurerLetter, d.HasWorkersComp())
	},
	"Policy_WorkersCompensationAndEmployersLiability_PolicyNumberIdentifier_A": func(d *model.Document) any {
		return liability(d).WorkersComp.PolicyNumber
	},
	"Policy_WorkersCompensationAndEmployersLiability_EffectiveDate_A": func(d *model.Document) any {
		return liability(d).WorkersComp.EffectiveDate
	},
	"Policy_WorkersCompensationAndEmployersLiability_ExpirationDate_A": func(d *model.Document) any {
		return liability(d).WorkersComp.ExpirationDate
	},

	"WorkersCompensationEmployersLiability_WorkersCompensationStatutoryLimitIndicator_A": func(d *model.Document) any {
		return liability(d).WorkersComp.EachAccident.Present()
	},
	"WorkersCompensationEmployersLiability_OtherCoverageIndicator_A":      never,
	"WorkersCompensationEmployersLiability_OtherCoverageDescription_A":    blank,
	"WorkersCompensationEmployersLiability_AnyPersonsExcludedIndicator_A": blank,

	"WorkersCompensationEmployersLiability_EmployersLiability_EachAccidentLimitAmount_A": func(d *model.Document) any {
		return amt(liability(d).WorkersComp.EachAccident)
	},
	"WorkersCompensationEmployersLiability_EmployersLiability_DiseaseEachEmployeeLimitAmount_A": func(d *model.Document) any {
		return amt(liability(d).WorkersComp.DiseaseEachEmployee)
	},
	"WorkersCompensationEmployersLiability_EmployersLiability_DiseasePolicyLimitAmount_A": func(d *model.Document) any {
		return amt(liability(d).WorkersComp.DiseasePolicyLimit)
	},

	"Policy_WorkersCompensation_SubrogationWaivedCode_A": func(d *model.Document) any {
		return yes(liability(d).WorkersComp.PolicyNumber != "" && endorsed25(d, "waiverOfSubrogation"))
	},

	// Other policy rows stay blank: the coverage schema has no source.
	"OtherPolicy_InsurerLetterCode_A":      blank,
	"OtherPolicy_OtherPolicyDescription_A": blank,
	"OtherPolicy_PolicyNumberIdentifier_A": blank,
	"OtherPolicy_PolicyEffectiveDate_A":    blank,
	"OtherPolicy_PolicyExpirationDate_A":   blank,
	"OtherPolicy_CoverageCode_A":           blank,
	"OtherPolicy_CoverageCode_B":           blank,
	"OtherPolicy_CoverageCode_C":           blank,
	"OtherPolicy_CoverageLimitAmount_A":    blank,
	"OtherPolicy_CoverageLimitAmount_B":    blank,
	"OtherPolicy_CoverageLimitAmount_C":    blank,
	"CertificateOfInsurance_OtherPolicy_AdditionalInsuredCode_A": blank,
	"OtherPolicy_SubrogationWaivedCode_A":                        blank,

	// Description of operations.
	"CertificateOfLiabilityInsurance_ACORDForm_RemarkText_A": func(d *model.Document) any {
		return liability(d).DescriptionOfOperations
	},

	// Certificate holder.
	"CertificateHolder_FullName_A": func(d *model.Document) any {
		return liability(d).CertificateHolder.Name
	},
	"CertificateHolder_MailingAddress_LineOne_A": func(d *model.Document) any {
		return format.SplitAddress(liability(d).CertificateHolder.Address).Line1
	},
	"CertificateHolder_MailingAddress_LineTwo_A": func(d *model.Document) any {
		return format.SplitAddress(liability(d).CertificateHolder.Address).Line2
	},
	"CertificateHolder_MailingAddress_CityName_A": func(d *model.Document) any {
		return format.SplitAddress(liability(d).CertificateHolder.Address).City
	},
	"CertificateHolder_MailingAddress_StateOrProvinceCode_A": func(d *model.Document) any {
		return format.SplitAddress(liability(d).CertificateHolder.Address).State
	},
	"CertificateHolder_MailingAddress_PostalCode_A": func(d *model.Document) any {
		return format.SplitAddress(liability(d).CertificateHolder.Address).Zip
	},
}

func init() {
	// Carrier rows A–F replicate per letter; generated so the table stays
	// one entry per field.
	for _, letter := range []string{"A", "B", "C", "D", "E", "F"} {
		l := letter
		Acord25["Insurer_FullName_"+l] = func(d *model.Document) any { return carrierName(d, l) }
		Acord25["Insurer_NAICCode_"+l] = func(d *model.Document) any { return carrierNAIC(d, l) }
	}
}
