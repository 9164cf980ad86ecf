package types

type User struct {
	Id                int    `json:"id"`
	Login             string `json:"login"`
	Name              string `json:"name,omitempty"`
	IconUrl           string `json:"icon_url,omitempty"`
	ObservationsCount int    `json:"observations_count,omitempty"`
}
