package geocoding

// Location is a reverse geocoding result as a single human-readable address.
type Location struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is a reverse geocoding result broken into the administrative levels
// the regional species lookup needs.
type Place struct {
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"` // lowercase ISO 3166-1 alpha-2
	State       string  `json:"state"`
	Locality    string  `json:"locality"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// nominatimResponse mirrors the Nominatim reverse endpoint JSON payload.
// Nominatim reports lookup failures as a 200 response with an error field.
type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		County      string `json:"county"`
		State       string `json:"state"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
	Error string `json:"error"`
}

// locality picks the finest populated-place field available.
func (r *nominatimResponse) locality() string {
	switch {
	case r.Address.City != "":
		return r.Address.City
	case r.Address.Town != "":
		return r.Address.Town
	case r.Address.Village != "":
		return r.Address.Village
	default:
		return r.Address.County
	}
}
