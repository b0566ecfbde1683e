package model

// Presence predicates decide whether a coverage section is "in force":
// a non-empty policy number or a present value for the section's most
// diagnostic limit. Form applicability defaults and indicator fields must
// both go through these so the two can never disagree.

// HasGL reports whether the document evidences general liability coverage.
func (d *Document) HasGL() bool {
	if d.Liability == nil {
		return false
	}
	g := d.Liability.GL
	return g.PolicyNumber != "" || g.Limits.EachOccurrence.Present() || g.Limits.GeneralAggregate.Present()
}

// HasAuto reports whether the document evidences automobile liability coverage.
func (d *Document) HasAuto() bool {
	if d.Liability == nil {
		return false
	}
	a := d.Liability.Auto
	return a.PolicyNumber != "" || a.CombinedSingleLimit.Present()
}

// HasUmbrella reports whether the document evidences umbrella/excess coverage.
func (d *Document) HasUmbrella() bool {
	if d.Liability == nil {
		return false
	}
	u := d.Liability.Umbrella
	return u.PolicyNumber != "" || u.EachOccurrence.Present()
}

// HasWorkersComp reports whether the document evidences workers compensation.
func (d *Document) HasWorkersComp() bool {
	if d.Liability == nil {
		return false
	}
	w := d.Liability.WorkersComp
	return w.PolicyNumber != "" || w.EachAccident.Present()
}

// HasProperty reports whether the document evidences property coverage.
func (d *Document) HasProperty() bool {
	if d.Property == nil {
		return false
	}
	return d.Property.PolicyNumber != "" || d.Property.Coverages.Building.Present()
}

// HasGarage reports whether the document evidences a garage policy.
func (d *Document) HasGarage() bool {
	if d.Garage == nil {
		return false
	}
	return d.Garage.PolicyNumber != "" || d.Garage.GarageLiability.AutoOnlyEachAccident.Present()
}

// HasCommercialGL reports whether a garage policy includes a GL portion.
func (b *GarageBlock) HasCommercialGL() bool {
	if b == nil {
		return false
	}
	c := b.CommercialGL
	return c.Included || c.EachOccurrence.Present() || c.GeneralAggregate.Present()
}

// HasUmbrella reports whether a garage document carries umbrella coverage.
func (b *GarageBlock) HasUmbrella() bool {
	if b == nil {
		return false
	}
	return b.Umbrella.PolicyNumber != "" || b.Umbrella.EachOccurrence.Present()
}

// HasWorkersComp reports whether a garage document carries workers comp.
func (b *GarageBlock) HasWorkersComp() bool {
	if b == nil {
		return false
	}
	return b.WorkersComp.PolicyNumber != "" || b.WorkersComp.EachAccident.Present()
}
