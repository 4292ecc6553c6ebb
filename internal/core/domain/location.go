package domain

// Coordinates is a device position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a resolved city and state.
type Place struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Location is the detected location context of a client. Notice is set when
// detection failed and the default place was used.
type Location struct {
	Place
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Notice      string       `json:"notice,omitempty"`
}
