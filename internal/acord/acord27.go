package acord

import (
	"strings"

	"github.com/harper-global/coi-cli/internal/format"
	"github.com/harper-global/coi-cli/internal/model"
)

// Acord27 maps the evidence of property insurance form. Coverage rows A–E
// carry fixed labels; a row's label only appears when its limit is present,
// so an absent coverage leaves the whole row untouched.
var Acord27 = Table{
	// Header.
	"Form_CompletionDate_A": completionDate,

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
	"Producer_ContactPerson_PhoneNumber_A":          func(d *model.Document) any { return d.Producer.Phone },
	"Producer_FaxNumber_A":                          func(d *model.Document) any { return d.Producer.Fax },
	"Producer_ContactPerson_EmailAddress_A":         func(d *model.Document) any { return d.Producer.Email },
	"Producer_CustomerIdentifier_A":                 blank,
	"Producer_AuthorizedRepresentative_Signature_A": blank,

	// Insurer. The form carries a single carrier, resolved through the
	// property block's letter.
	"Insurer_FullName_A": func(d *model.Document) any {
		return carrierName(d, letterOr(property(d).InsurerLetter, true))
	},
	"Insurer_MailingAddress_AddressLineOne_A":      blank,
	"Insurer_MailingAddress_AddressLineTwo_A":      blank,
	"Insurer_MailingAddress_CityName_A":            blank,
	"Insurer_MailingAddress_StateOrProvinceCode_A": blank,
	"Insurer_MailingAddress_PostalCode_A":          blank,
	"Insurer_ProducerIdentifier_A":                 blank,
	"Insurer_SubProducerIdentifier_A":              blank,

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

	// Policy.
	"Policy_PolicyNumberIdentifier_A": func(d *model.Document) any { return property(d).PolicyNumber },
	"Policy_EffectiveDate_A":          func(d *model.Document) any { return property(d).EffectiveDate },
	"Policy_ExpirationDate_A":         func(d *model.Document) any { return property(d).ExpirationDate },

	// Perils.
	"Policy_PolicyType_BasicIndicator_A": func(d *model.Document) any {
		return strings.EqualFold(property(d).CauseOfLoss, "basic")
	},
	"Policy_PolicyType_BroadIndicator_A": func(d *model.Document) any {
		return strings.EqualFold(property(d).CauseOfLoss, "broad")
	},
	"Policy_PolicyType_SpecialIndicator_A": func(d *model.Document) any {
		return strings.Contains(strings.ToLower(property(d).CauseOfLoss), "special")
	},
	"Policy_PolicyType_OtherIndicator_A":   never,
	"Policy_PolicyType_OtherDescription_A": blank,

	// Property location.
	"EvidenceOfProperty_PropertyDescription_A": func(d *model.Document) any {
		return property(d).PropertyAddress
	},
	"EvidenceOfProperty_PhysicalAddress_StreetLineOne_A": func(d *model.Document) any {
		return format.SplitAddress(property(d).PropertyAddress).Line1
	},
	"EvidenceOfProperty_PhysicalAddress_StreetLineTwo_A": func(d *model.Document) any {
		return format.SplitAddress(property(d).PropertyAddress).Line2
	},
	"EvidenceOfProperty_PhysicalAddress_CityName_A": func(d *model.Document) any {
		return format.SplitAddress(property(d).PropertyAddress).City
	},
	"EvidenceOfProperty_PhysicalAddress_StateOrProvinceCode_A": func(d *model.Document) any {
		return format.SplitAddress(property(d).PropertyAddress).State
	},
	"EvidenceOfProperty_PhysicalAddress_PostalCode_A": func(d *model.Document) any {
		return format.SplitAddress(property(d).PropertyAddress).Zip
	},
	"EvidenceOfProperty_PhysicalAddress_CountyName_A": blank,
	"EvidenceOfProperty_PriorEvidenceDate_A":          blank,
	"EvidenceOfProperty_ContinuousBasisIndicator_A":   never,

	// Coverage rows A–E.
	"EvidenceOfProperty_CoverageDescription_A": func(d *model.Document) any {
		return coverageLabel("Building", property(d).Coverages.Building)
	},
	"EvidenceOfProperty_LimitAmount_A": func(d *model.Document) any {
		return amt(property(d).Coverages.Building)
	},
	"EvidenceOfProperty_DeductibleAmount_A": func(d *model.Document) any {
		return amt(property(d).Deductible)
	},

	"EvidenceOfProperty_CoverageDescription_B": func(d *model.Document) any {
		return coverageLabel("Business Personal Property", property(d).Coverages.PersonalProperty)
	},
	"EvidenceOfProperty_LimitAmount_B": func(d *model.Document) any {
		return amt(property(d).Coverages.PersonalProperty)
	},
	"EvidenceOfProperty_DeductibleAmount_B": func(d *model.Document) any {
		if !property(d).Coverages.PersonalProperty.Present() {
			return ""
		}
		return amt(property(d).Deductible)
	},

	"EvidenceOfProperty_CoverageDescription_C": func(d *model.Document) any {
		return coverageLabel("Business Income", property(d).Coverages.BusinessIncome)
	},
	"EvidenceOfProperty_LimitAmount_C": func(d *model.Document) any {
		return amt(property(d).Coverages.BusinessIncome)
	},
	"EvidenceOfProperty_DeductibleAmount_C": blank,

	"EvidenceOfProperty_CoverageDescription_D": func(d *model.Document) any {
		return coverageLabel("Flood", property(d).Coverages.Flood)
	},
	"EvidenceOfProperty_LimitAmount_D": func(d *model.Document) any {
		return amt(property(d).Coverages.Flood)
	},
	"EvidenceOfProperty_DeductibleAmount_D": blank,

	"EvidenceOfProperty_CoverageDescription_E": func(d *model.Document) any {
		return coverageLabel("Earthquake", property(d).Coverages.Earthquake)
	},
	"EvidenceOfProperty_LimitAmount_E": func(d *model.Document) any {
		return amt(property(d).Coverages.Earthquake)
	},
	"EvidenceOfProperty_DeductibleAmount_E": blank,

	// Remarks.
	"EvidenceOfProperty_RemarkText_A": blank,

	// Additional interest / mortgageholder.
	"AdditionalInterest_FullName_A": func(d *model.Document) any {
		return property(d).Mortgageholder.Name
	},
	"AdditionalInterest_MailingAddress_LineOne_A": func(d *model.Document) any {
		return format.SplitAddress(property(d).Mortgageholder.Address).Line1
	},
	"AdditionalInterest_MailingAddress_LineTwo_A": func(d *model.Document) any {
		return format.SplitAddress(property(d).Mortgageholder.Address).Line2
	},
	"AdditionalInterest_MailingAddress_CityName_A": func(d *model.Document) any {
		return format.SplitAddress(property(d).Mortgageholder.Address).City
	},
	"AdditionalInterest_MailingAddress_StateOrProvinceCode_A": func(d *model.Document) any {
		return format.SplitAddress(property(d).Mortgageholder.Address).State
	},
	"AdditionalInterest_MailingAddress_PostalCode_A": func(d *model.Document) any {
		return format.SplitAddress(property(d).Mortgageholder.Address).Zip
	},
	"AdditionalInterest_AccountNumberIdentifier_A": func(d *model.Document) any {
		return property(d).Mortgageholder.LoanNumber
	},
	"AdditionalInterest_AccountNumberIdentifier_B": blank,

	"AdditionalInterest_Interest_MortgageeIndicator_A": func(d *model.Document) any {
		return property(d).Mortgageholder.Name != ""
	},
	"AdditionalInterest_Interest_AdditionalInsuredIndicator_A":  never,
	"AdditionalInterest_Interest_LendersLossPayableIndicator_A": never,
	"AdditionalInterest_Interest_LossPayeeIndicator_A":          never,
	"AdditionalInterest_Interest_OtherIndicator_A":              never,
	"AdditionalInterest_Interest_OtherDescription_A":            blank,
}

func init() {
	// Rows F–J have no schema source and stay empty.
	for _, row := range []string{"F", "G", "H", "I", "J"} {
		Acord27["EvidenceOfProperty_CoverageDescription_"+row] = blank
		Acord27["EvidenceOfProperty_LimitAmount_"+row] = blank
		Acord27["EvidenceOfProperty_DeductibleAmount_"+row] = blank
	}
}

// coverageLabel surfaces a fixed row label only when the row's limit is
// present, keeping absent coverages blank across the whole row.
func coverageLabel(label string, m model.Money) string {
	if m.Present() {
		return label
	}
	return ""
}
