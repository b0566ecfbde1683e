// Package model defines the normalized coverage document shared by
// extraction, reconciliation, and form filling.
package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Party is a named entity with a free-text mailing address.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Producer is the retail agent/broker shown in form headers.
type Producer struct {
	Name        string `json:"name"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Fax         string `json:"fax"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

// Carrier is one insurer row. Letter identifies the carrier within a single
// document and is referenced by the insurerLetter of each coverage section.
type Carrier struct {
	Letter string `json:"letter"`
	Name   string `json:"name"`
	NAIC   string `json:"naic"`
}

// Endorsements is the set of confirmed endorsement flags for one coverage
// block. Absent keys mean not confirmed.
type Endorsements map[string]bool

// Document is the normalized coverage document produced by extraction.
// The per-form blocks are pointers: a nil block means the corresponding
// certificate form does not apply to this insured.
type Document struct {
	Notes            []string        `json:"_notes,omitempty"`
	Producer         Producer        `json:"producer"`
	Insured          Party           `json:"insured"`
	Carriers         []Carrier       `json:"carriers"`
	Liability        *LiabilityBlock `json:"acord25"`
	Property         *PropertyBlock  `json:"acord27"`
	PropertySchedule json.RawMessage `json:"acord28,omitempty"`
	Garage           *GarageBlock    `json:"acord30"`
}

// LiabilityBlock backs the certificate of liability insurance (ACORD 25).
type LiabilityBlock struct {
	CertificateNumber       string              `json:"certificateNumber"`
	GL                      GLCoverage          `json:"gl"`
	Auto                    AutoCoverage        `json:"auto"`
	Umbrella                UmbrellaCoverage    `json:"umbrella"`
	WorkersComp             WorkersCompCoverage `json:"workersComp"`
	DescriptionOfOperations string              `json:"descriptionOfOperations"`
	CertificateHolder       Party               `json:"certificateHolder"`
	Endorsements            Endorsements        `json:"endorsements"`
}

// GLCoverage is the commercial general liability section.
type GLCoverage struct {
	InsurerLetter  string   `json:"insurerLetter"`
	PolicyNumber   string   `json:"policyNumber"`
	EffectiveDate  string   `json:"effectiveDate"`
	ExpirationDate string   `json:"expirationDate"`
	ClaimsMade     bool     `json:"claimsMade"`
	Occurrence     bool     `json:"occurrence"`
	Limits         GLLimits `json:"limits"`
}

// GLLimits are the six standard GL limit boxes.
type GLLimits struct {
	EachOccurrence         Money `json:"eachOccurrence"`
	DamageToRentedPremises Money `json:"damageToRentedPremises"`
	MedicalExpense         Money `json:"medicalExpense"`
	PersonalAdvInjury      Money `json:"personalAdvInjury"`
	GeneralAggregate       Money `json:"generalAggregate"`
	ProductsCompOp         Money `json:"productsCompOp"`
}

// AutoCoverage is the automobile liability section.
type AutoCoverage struct {
	InsurerLetter       string `json:"insurerLetter"`
	PolicyNumber        string `json:"policyNumber"`
	EffectiveDate       string `json:"effectiveDate"`
	ExpirationDate      string `json:"expirationDate"`
	AutoType            string `json:"autoType"`
	CombinedSingleLimit Money  `json:"combinedSingleLimit"`
}

// UmbrellaCoverage is the umbrella/excess liability section.
type UmbrellaCoverage struct {
	InsurerLetter  string `json:"insurerLetter"`
	PolicyNumber   string `json:"policyNumber"`
	EffectiveDate  string `json:"effectiveDate"`
	ExpirationDate string `json:"expirationDate"`
	Type           string `json:"type"`
	EachOccurrence Money  `json:"eachOccurrence"`
	Aggregate      Money  `json:"aggregate"`
	Retention      Money  `json:"retention"`
}

// WorkersCompCoverage is the workers compensation / employers liability section.
type WorkersCompCoverage struct {
	InsurerLetter       string `json:"insurerLetter"`
	PolicyNumber        string `json:"policyNumber"`
	EffectiveDate       string `json:"effectiveDate"`
	ExpirationDate      string `json:"expirationDate"`
	EachAccident        Money  `json:"eachAccident"`
	DiseasePolicyLimit  Money  `json:"diseasePolicyLimit"`
	DiseaseEachEmployee Money  `json:"diseaseEachEmployee"`
}

// PropertyBlock backs the evidence of property insurance (ACORD 27).
type PropertyBlock struct {
	InsurerLetter   string            `json:"insurerLetter"`
	PolicyNumber    string            `json:"policyNumber"`
	EffectiveDate   string            `json:"effectiveDate"`
	ExpirationDate  string            `json:"expirationDate"`
	CauseOfLoss     string            `json:"causeOfLoss"`
	PropertyAddress string            `json:"propertyAddress"`
	Coverages       PropertyCoverages `json:"coverages"`
	Deductible      Money             `json:"deductible"`
	Mortgageholder  Mortgageholder    `json:"mortgageholder"`
	Endorsements    Endorsements      `json:"endorsements"`
}

// PropertyCoverages are the property limit rows.
type PropertyCoverages struct {
	Building         Money `json:"building"`
	PersonalProperty Money `json:"personalProperty"`
	BusinessIncome   Money `json:"businessIncome"`
	Flood            Money `json:"flood"`
	Earthquake       Money `json:"earthquake"`
}

// Mortgageholder is the additional interest on a property certificate.
type Mortgageholder struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	LoanNumber string `json:"loanNumber"`
}

// GarageBlock backs the garage certificate (ACORD 30). Garage policies
// combine liability and auto under one policy number, carried on the block
// itself rather than per section.
type GarageBlock struct {
	InsurerLetter           string              `json:"insurerLetter"`
	PolicyNumber            string              `json:"policyNumber"`
	EffectiveDate           string              `json:"effectiveDate"`
	ExpirationDate          string              `json:"expirationDate"`
	GarageLiability         GarageLiability     `json:"garageLiability"`
	GarageKeepers           GarageKeepers       `json:"garageKeepers"`
	CommercialGL            GarageGL            `json:"commercialGL"`
	Umbrella                UmbrellaCoverage    `json:"umbrella"`
	WorkersComp             WorkersCompCoverage `json:"workersComp"`
	Remarks                 string              `json:"remarks"`
	DescriptionOfOperations string              `json:"descriptionOfOperations"`
	CertificateHolder       Party               `json:"certificateHolder"`
	Endorsements            Endorsements        `json:"endorsements"`
}

// GarageLiability is the auto-only garage liability row.
type GarageLiability struct {
	AllOwnedAutos        bool  `json:"allOwnedAutos"`
	HiredAutos           bool  `json:"hiredAutos"`
	NonOwnedAutos        bool  `json:"nonOwnedAutos"`
	AutoOnlyEachAccident Money `json:"autoOnlyEachAccident"`
	OtherThanAutoOnly    Money `json:"otherThanAutoOnly"`
	AutoOnlyAggregate    Money `json:"autoOnlyAggregate"`
}

// GarageKeepers is the garagekeepers legal liability row.
type GarageKeepers struct {
	LegalLiability  bool  `json:"legalLiability"`
	DirectBasis     bool  `json:"directBasis"`
	Primary         bool  `json:"primary"`
	Excess          bool  `json:"excess"`
	Comprehensive   Money `json:"comprehensive"`
	SpecifiedPerils Money `json:"specifiedPerils"`
	Collision       Money `json:"collision"`
}

// GarageGL is the general liability portion of a garage policy.
type GarageGL struct {
	Included               bool  `json:"included"`
	EachOccurrence         Money `json:"eachOccurrence"`
	DamageToRentedPremises Money `json:"damageToRentedPremises"`
	MedicalExpense         Money `json:"medicalExpense"`
	PersonalAdvInjury      Money `json:"personalAdvInjury"`
	GeneralAggregate       Money `json:"generalAggregate"`
	ProductsCompOp         Money `json:"productsCompOp"`
}

// CarrierByLetter returns the carrier registered under letter, matching
// case-insensitively. The zero Carrier is returned when no match exists.
func (d *Document) CarrierByLetter(letter string) Carrier {
	for _, c := range d.Carriers {
		if c.Letter != "" && strings.EqualFold(c.Letter, letter) {
			return c
		}
	}
	return Carrier{}
}

// HasPropertySchedule reports whether the reserved detailed-property block
// key is present and non-null.
func (d *Document) HasPropertySchedule() bool {
	raw := bytes.TrimSpace(d.PropertySchedule)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

