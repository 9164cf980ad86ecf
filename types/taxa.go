package types

type Taxon struct {
	Id                  int     `json:"id"`
	Name                string  `json:"name"`
	Rank                string  `json:"rank,omitempty"`
	RankLevel           float64 `json:"rank_level,omitempty"`
	PreferredCommonName string  `json:"preferred_common_name,omitempty"`
	IconicTaxonName     string  `json:"iconic_taxon_name,omitempty"`
	ParentId            int     `json:"parent_id,omitempty"`
	IsActive            bool    `json:"is_active,omitempty"`
}
