package types

type Observation struct {
	Id           int    `json:"id"`
	Uuid         string `json:"uuid,omitempty"`
	SpeciesGuess string `json:"species_guess,omitempty"`
	ObservedOn   string `json:"observed_on,omitempty"`
	PlaceGuess   string `json:"place_guess,omitempty"`
	QualityGrade string `json:"quality_grade,omitempty"`
	Taxon        *Taxon `json:"taxon,omitempty"`
	User         *User  `json:"user,omitempty"`
}
