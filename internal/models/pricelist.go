package models

import "encoding/json"

// Capacity declares how much work a single package of a material covers,
// e.g. one sack of adhesive for 4.5 m². Materials without a capacity are
// continuous and priced per unit of quantity.
type Capacity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// PriceListEntry is one catalog slot. Matching is by name plus subtitle,
// never by position; positions only matter for the legacy column mirror.
type PriceListEntry struct {
	Name     string    `json:"name"`
	Subtitle string    `json:"subtitle,omitempty"`
	Price    float64   `json:"price"`
	Unit     string    `json:"unit,omitempty"`
	Capacity *Capacity `json:"capacity,omitempty"`
}

// PriceList partitions the catalog into the four categories searched by the
// matcher. A list is either the contractor's general list or a snapshot
// frozen onto a project at creation time.
type PriceList struct {
	Work          []PriceListEntry `json:"work"`
	Material      []PriceListEntry `json:"material"`
	Installations []PriceListEntry `json:"installations"`
	Others        []PriceListEntry `json:"others"`
}

// Snapshot deep-copies the list through a JSON round trip so a project's
// prices stay stable when the general list is edited later.
func (p *PriceList) Snapshot() (*PriceList, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var copy PriceList
	if err := json.Unmarshal(raw, &copy); err != nil {
		return nil, err
	}
	return &copy, nil
}
