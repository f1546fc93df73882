package nasa

import (
	"net/url"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// MediaItem is the metadata record of one asset with an injected href
// pointing at its file manifest.
type MediaItem map[string]any

// Href returns the manifest link injected into the item.
func (m MediaItem) Href() string {
	s, _ := m[fieldHref].(string)
	return s
}

// NasaID returns the asset identifier, or "" if the record has none.
func (m MediaItem) NasaID() string {
	s, _ := m["nasa_id"].(string)
	return s
}

// Title returns the asset title, or "" if the record has none.
func (m MediaItem) Title() string {
	s, _ := m["title"].(string)
	return s
}

// ManifestEntry describes one file of an asset, as returned by the API.
type ManifestEntry map[string]any

// SearchQuery holds the optional filters of a search. Absent filters are
// left out of the request.
type SearchQuery struct {
	// Q is free text compared to all indexed metadata.
	Q mo.Option[string]
	// Center is the NASA center which published the media.
	Center           mo.Option[string]
	Description      mo.Option[string]
	Description508   mo.Option[string]
	Keywords         mo.Option[string]
	Location         mo.Option[string]
	MediaType        mo.Option[string]
	NasaID           mo.Option[string]
	Photographer     mo.Option[string]
	SecondaryCreator mo.Option[string]
	Title            mo.Option[string]
	// YearStart and YearEnd use the YYYY format.
	YearStart mo.Option[string]
	YearEnd   mo.Option[string]
}

// Filters returns the query parameter names paired with their values, in a
// stable order.
func (q SearchQuery) Filters() []lo.Tuple2[string, mo.Option[string]] {
	return []lo.Tuple2[string, mo.Option[string]]{
		{A: "q", B: q.Q},
		{A: "center", B: q.Center},
		{A: "description", B: q.Description},
		{A: "description_508", B: q.Description508},
		{A: "keywords", B: q.Keywords},
		{A: "location", B: q.Location},
		{A: "media_type", B: q.MediaType},
		{A: "nasa_id", B: q.NasaID},
		{A: "photographer", B: q.Photographer},
		{A: "secondary_creator", B: q.SecondaryCreator},
		{A: "title", B: q.Title},
		{A: "year_start", B: q.YearStart},
		{A: "year_end", B: q.YearEnd},
	}
}

// Values encodes the present filters as query parameters.
func (q SearchQuery) Values() url.Values {
	values := url.Values{}
	for _, f := range q.Filters() {
		if v, ok := f.B.Get(); ok {
			values.Set(f.A, v)
		}
	}
	return values
}

// IsEmpty reports whether no filter is present.
func (q SearchQuery) IsEmpty() bool {
	return lo.EveryBy(q.Filters(), func(f lo.Tuple2[string, mo.Option[string]]) bool {
		return f.B.IsAbsent()
	})
}

// collection is the envelope shared by search, album and asset responses.
type collection[T any] struct {
	Collection struct {
		Metadata struct {
			TotalHits int `json:"total_hits"`
		} `json:"metadata"`
		Items []T `json:"items"`
	} `json:"collection"`
}

// rawItem is one search or album hit before flattening.
type rawItem struct {
	Data []MediaItem `json:"data"`
	Href string      `json:"href"`
}

// location is the body of metadata and captions responses.
type location struct {
	Location string `json:"location"`
}
