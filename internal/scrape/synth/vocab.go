package synth

// industryVocab maps an industry keyword to the business-name suffixes a
// synthetic lead may carry. Kept as an ordered slice: keywords are tested as
// substrings of the lower-cased industry and the first match wins, so
// tie-breaks stay deterministic.
type industryVocab struct {
	keyword  string
	suffixes []string
}

var vocabularies = []industryVocab{
	{"restaurant", []string{"Family Restaurant", "Kitchen & Grill", "Bistro", "Eatery"}},
	{"dentist", []string{"Dental Care", "Dentistry", "Dental Clinic", "Dental Associates"}},
	{"plumb", []string{"Plumbing Services", "Plumbing & Heating", "Pipe Works", "Drain Solutions"}},
	{"law", []string{"Law Offices", "Legal Group", "Attorneys at Law", "Law Firm"}},
	{"real estate", []string{"Realty", "Real Estate Group", "Properties", "Home Team"}},
	{"auto", []string{"Auto Repair", "Automotive", "Car Care", "Motor Works"}},
	{"salon", []string{"Hair Studio", "Salon & Spa", "Beauty Lounge", "Barber Shop"}},
	{"fitness", []string{"Fitness Center", "Gym & Training", "Athletic Club", "Personal Training"}},
	{"clean", []string{"Cleaning Services", "Cleaning Co", "Maid Service", "Janitorial Services"}},
	{"roof", []string{"Roofing", "Roofing & Siding", "Roof Repair", "Exteriors"}},
}

var defaultSuffixes = []string{"Services", "Solutions", "Group", "Company"}

var surnames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones",
	"Garcia", "Miller", "Davis", "Martinez", "Wilson",
}

// used in descriptions when the request carries no location
var areaQualifiers = []string{
	"your area",
	"the local area",
	"the greater metro area",
	"the region",
}

func suffixesFor(industry string) []string {
	for _, v := range vocabularies {
		if containsFold(industry, v.keyword) {
			return v.suffixes
		}
	}
	return defaultSuffixes
}
