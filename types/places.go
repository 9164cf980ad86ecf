package types

type Place struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	PlaceType   int    `json:"place_type,omitempty"`
	AdminLevel  *int   `json:"admin_level,omitempty"`
	Slug        string `json:"slug,omitempty"`
}

// PlaceTypeName resolves the place's PlaceType code.
func (p Place) PlaceTypeName() (string, bool) {
	return PlaceTypeName(p.PlaceType)
}

// placeTypes maps place type codes used by the API to readable names.
var placeTypes = map[int]string{
	0:    "Undefined",
	1:    "Building",
	2:    "Street Segment",
	5:    "Intersection",
	6:    "Street",
	7:    "Town",
	8:    "State",
	9:    "County",
	10:   "Local Administrative Area",
	12:   "Country",
	13:   "Island",
	14:   "Airport",
	15:   "Drainage",
	16:   "Land Feature",
	17:   "Miscellaneous",
	18:   "Nationality",
	19:   "Supername",
	20:   "Point of Interest",
	21:   "Region",
	22:   "Suburb",
	23:   "Sports Team",
	24:   "Colloquial",
	25:   "Zone",
	26:   "Historical State",
	27:   "Historical County",
	29:   "Continent",
	31:   "Time Zone",
	32:   "Nearby Building",
	33:   "Estate",
	100:  "Open Space",
	101:  "Territory",
	102:  "District",
	103:  "Province",
	1000: "Municipality",
	1001: "Parish",
	1002: "Department Segment",
	1003: "City Building",
	1004: "Commune",
	1005: "Governorate",
	1006: "Prefecture",
	1007: "Canton",
	1008: "Republic",
	1009: "Division",
	1010: "Subdivision",
	1011: "Village Block",
	1012: "Sum",
	1013: "Unknown",
	1014: "Shire",
	1015: "Prefecture City",
	1016: "Regency",
	1017: "Constituency",
	1018: "Local Authority",
	1019: "Poblacion",
	1020: "Delegation",
}

func PlaceTypeName(code int) (string, bool) {
	name, ok := placeTypes[code]
	return name, ok
}

// PlaceTypes returns a copy of the place type table.
func PlaceTypes() map[int]string {
	out := make(map[int]string, len(placeTypes))
	for code, name := range placeTypes {
		out[code] = name
	}
	return out
}
