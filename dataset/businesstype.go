package dataset

// BusinessType is the fixed sub-category assigned to a qualifying company.
// The values are the display labels used across all output formats.
type BusinessType string

const (
	TypeWholesaler             BusinessType = "Truck Tyre Wholesaler"
	TypeManufacturerWholesaler BusinessType = "Manufacturer/Wholesaler"
	TypeB2BWholesaler          BusinessType = "B2B Wholesaler"
	TypeB2BWholesalerRetailer  BusinessType = "B2B Wholesaler/Retailer"
	TypeRetreaderWholesaler    BusinessType = "Retreader/Wholesaler"
	TypeRetreader              BusinessType = "Truck Tyre Retreader"
	TypeSpecialist             BusinessType = "Truck Tyre Specialist"
	TypeFitter                 BusinessType = "Truck Tyre Fitter"
	TypeRetailFitter           BusinessType = "Retail/Fitter"
	TypeFleetServices          BusinessType = "Fleet Services"
	TypeMobileService          BusinessType = "Mobile Truck Tyre Service"
	TypeMobileEmergency        BusinessType = "Mobile/Emergency Services"
	TypeEmergencyService       BusinessType = "Emergency Service"
)

const unknownPriority = 99

var typePriority = map[BusinessType]int{
	TypeWholesaler:             1,
	TypeManufacturerWholesaler: 2,
	TypeB2BWholesaler:          3,
	TypeB2BWholesalerRetailer:  4,
	TypeRetreaderWholesaler:    5,
	TypeRetreader:              6,
	TypeSpecialist:             7,
	TypeFitter:                 8,
	TypeRetailFitter:           9,
	TypeFleetServices:          10,
	TypeMobileService:          11,
	TypeMobileEmergency:        12,
	TypeEmergencyService:       13,
}

// Priority returns the sort rank of a business type. Lower ranks sort
// first (wholesalers ahead of fitters). Unrecognized labels rank last.
func Priority(t BusinessType) int {
	if p, ok := typePriority[t]; ok {
		return p
	}

	return unknownPriority
}

// KnownType reports whether label is one of the fixed business types.
func KnownType(label BusinessType) bool {
	_, ok := typePriority[label]
	return ok
}

// TypesByPriority returns the fixed business types in priority order.
func TypesByPriority() []BusinessType {
	return []BusinessType{
		TypeWholesaler,
		TypeManufacturerWholesaler,
		TypeB2BWholesaler,
		TypeB2BWholesalerRetailer,
		TypeRetreaderWholesaler,
		TypeRetreader,
		TypeSpecialist,
		TypeFitter,
		TypeRetailFitter,
		TypeFleetServices,
		TypeMobileService,
		TypeMobileEmergency,
		TypeEmergencyService,
	}
}
