// Package directory builds the industry dataset: a curated list of known
// UK truck tyre networks, manufacturers, wholesalers and mobile services,
// enriched with contact details scraped from each company's own website.
package directory

import "github.com/fleetdata/truck-tyre-scraper/dataset"

// Seeds returns the curated industry roster with pre-assigned business
// types. Contact details present here are kept as-is; scraping only
// fills the gaps.
func Seeds() []dataset.DirectoryCompany {
	return []dataset.DirectoryCompany{
		// Major networks and mobile services
		{Name: "Tyrenet", Website: "https://tyrenet.net/", Phone: "0330 123 1234", BusinessType: "Fleet Services", ServicePoints: "National"},
		{Name: "Tructyre ATS", Website: "https://www.tructyre.co.uk/", Phone: "0191 482 0011", BusinessType: "Fleet Services", ServicePoints: "National"},
		{Name: "Fleet Tyre Network", Website: "https://www.fleettyrenetwork.com/", BusinessType: "Fleet Services", ServicePoints: "National"},
		{Name: "247 Mobile Truck Tyres", Website: "https://www.247mobiletrucktyres.co.uk/", Phone: "0330 043 3988", BusinessType: "Mobile Truck Tyre Service"},
		{Name: "Tyre Assist 365", Website: "https://www.tyreassist365.com/", Phone: "0333 240 7592", BusinessType: "Mobile Truck Tyre Service"},
		{Name: "HGV Tyres", Website: "https://www.hgvtyres.com/", Phone: "0800 002 9843", BusinessType: "Mobile Truck Tyre Service"},
		{Name: "Mobile Tyre Fitting UK", Website: "https://www.mobiletyrefittinguk.co.uk/", Phone: "0808 281 5669", BusinessType: "Mobile/Emergency Services"},
		{Name: "Emergency Tyre Services", Website: "https://www.emergencytyreservices.co.uk/", BusinessType: "Emergency Service"},
		{Name: "DRS Mobile Truck Tyres", Website: "https://www.drsmobiletyreservices.co.uk/", BusinessType: "Mobile Truck Tyre Service"},

		// Manufacturers (UK divisions)
		{Name: "Michelin Truck Tyres UK", Website: "https://business.michelin.co.uk/", BusinessType: "Manufacturer/Wholesaler", IsB2BWholesaler: "Yes"},
		{Name: "Bridgestone Commercial UK", Website: "https://www.bridgestone.co.uk/", BusinessType: "Manufacturer/Wholesaler", IsB2BWholesaler: "Yes"},
		{Name: "Continental Truck Tyres UK", Website: "https://www.continental-tyres.co.uk/", BusinessType: "Manufacturer/Wholesaler", IsB2BWholesaler: "Yes"},
		{Name: "Goodyear Truck Tyres UK", Website: "https://www.goodyear.eu/en_gb/", BusinessType: "Manufacturer/Wholesaler", IsB2BWholesaler: "Yes"},
		{Name: "Pirelli Commercial UK", Website: "https://www.pirelli.com/tyres/en-gb/", BusinessType: "Manufacturer/Wholesaler", IsB2BWholesaler: "Yes"},
		{Name: "Hankook Truck UK", Website: "https://www.hankooktire.com/uk/", BusinessType: "Manufacturer/Wholesaler", IsB2BWholesaler: "Yes"},

		// Wholesalers and distributors
		{Name: "Kirkby Tyres", Website: "https://www.kirkbytyres.co.uk/", BusinessType: "B2B Wholesaler", IsB2BWholesaler: "Yes"},
		{Name: "Stapletons Tyre Services", Website: "https://www.stapleton-tyres.co.uk/", BusinessType: "B2B Wholesaler/Retailer", IsB2BWholesaler: "Yes"},
		{Name: "Bond International", Website: "https://www.bondinternational.com/", BusinessType: "B2B Wholesaler", IsB2BWholesaler: "Yes"},
		{Name: "Deldo Tyres", Website: "https://www.deldo.co.uk/", BusinessType: "B2B Wholesaler", IsB2BWholesaler: "Yes"},
		{Name: "Truck Tyre Wholesalers", Website: "https://www.trucktyrewholesaler.co.uk/", BusinessType: "Truck Tyre Wholesaler", IsB2BWholesaler: "Yes"},

		// Retreaders
		{Name: "Bandvulc", Website: "https://www.bandvulc.co.uk/", BusinessType: "Retreader/Wholesaler", IsB2BWholesaler: "Yes"},
		{Name: "Vacu-Lug Traction Tyres", Website: "https://www.vaculug.co.uk/", BusinessType: "Truck Tyre Retreader"},
		{Name: "King Retreads", Website: "https://www.kingretreads.co.uk/", BusinessType: "Truck Tyre Retreader"},
		{Name: "Colway Tyres", Website: "https://www.colway.co.uk/", BusinessType: "Truck Tyre Retreader"},
		{Name: "Marangoni UK", Website: "https://www.marangoni.com/", BusinessType: "Truck Tyre Retreader"},

		// Regional specialists and fitters
		{Name: "Bush Tyres", Website: "https://www.bushtyres.co.uk/", Phone: "0800 138 3455", BusinessType: "Truck Tyre Specialist", Region: "East Midlands"},
		{Name: "Lodge Tyre Company", Website: "https://www.lodgetyre.com/", BusinessType: "Truck Tyre Specialist", Region: "Midlands"},
		{Name: "Kingsway Tyres", Website: "https://www.kingswaytyres.com/", BusinessType: "Truck Tyre Specialist", Region: "Yorkshire"},
		{Name: "London Truck Tyres", Website: "https://www.londontrucktyres.co.uk/", BusinessType: "Truck Tyre Specialist", Region: "London"},
		{Name: "Manchester Truck Tyres", Website: "https://www.manchestertrucktyres.co.uk/", BusinessType: "Truck Tyre Specialist", Region: "North West"},
		{Name: "Birmingham Truck Tyres", Website: "https://www.birminghamtrucktyres.co.uk/", BusinessType: "Truck Tyre Specialist", Region: "West Midlands"},
		{Name: "Glasgow Truck Tyres", Website: "https://www.glasgowtrucktyres.co.uk/", BusinessType: "Truck Tyre Specialist", Region: "Scotland"},
		{Name: "Anglian Truck Tyres", Website: "https://www.angliantrucktyres.co.uk/", BusinessType: "Truck Tyre Specialist", Region: "East Anglia"},
		{Name: "Bristol Commercial Tyres", Website: "https://www.bristolcommercialtyres.co.uk/", BusinessType: "Truck Tyre Fitter", Region: "South West"},
		{Name: "Fast Fit Commercial Tyres", Website: "https://www.fastfitcommercialtyres.co.uk/", BusinessType: "Truck Tyre Fitter"},
		{Name: "Essex Tyre Fitters", Website: "https://www.essextyrefitters.co.uk/", BusinessType: "Retail/Fitter", Region: "East of England"},
		{Name: "Wessex Commercial Tyres", Website: "https://www.wessexcommercialtyres.co.uk/", BusinessType: "Truck Tyre Fitter", Region: "South West"},
	}
}
