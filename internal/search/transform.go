package search

import (
	"github.com/microcosm-cc/bluemonday"

	"cragstore/internal/models"
)

// descriptions come in from user-submitted markdown; strip any embedded HTML
// before it reaches the index.
var sanitizer = bluemonday.StrictPolicy()

// AreaDoc is the flattened, search-ready projection of an area. The document
// id doubles as the area's UUID so a resync overwrites in place.
type AreaDoc struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PathTokens  []string  `json:"pathTokens"`
	AreaUUID    string    `json:"areaUUID"`
	Leaf        bool      `json:"leaf"`
	TotalClimbs int       `json:"totalClimbs"`
	Density     float64   `json:"density"`
	LatLng      []float64 `json:"areaLatLng,omitempty"` // [lat, lng]
}

// ClimbDoc is the flattened projection of a climb joined with its owning
// area's path snapshot.
type ClimbDoc struct {
	ID          string    `json:"id"`
	Name        string    `json:"climbName"`
	Description string    `json:"climbDesc"`
	FA          string    `json:"fa"`
	Grade       string    `json:"grade"`
	Safety      string    `json:"safety"`
	Disciplines []string  `json:"disciplines"`
	AreaNames   []string  `json:"areaNames"`
	ClimbUUID   string    `json:"climbUUID"`
	LatLng      []float64 `json:"climbLatLng,omitempty"` // [lat, lng]
}

// AreaToDoc maps one source area to its index document. Pure and total for
// well-formed input; a missing area_id is an upstream data defect, not a
// condition handled here.
func AreaToDoc(a models.Area) AreaDoc {
	return AreaDoc{
		ID:          a.Metadata.AreaID,
		Name:        a.AreaName,
		PathTokens:  tokens(a.PathTokens),
		AreaUUID:    a.Metadata.AreaID,
		Leaf:        a.Metadata.Leaf,
		TotalClimbs: a.TotalClimbs,
		Density:     a.Density,
		LatLng:      a.Metadata.LngLat.LatLng(),
	}
}

// ClimbToDoc maps one joined climb record to its index document.
func ClimbToDoc(cl models.ClimbWithPath) ClimbDoc {
	return ClimbDoc{
		ID:          cl.Metadata.ClimbID,
		Name:        cl.Name,
		Description: sanitizer.Sanitize(cl.Content.Description),
		FA:          cl.FA,
		Grade:       cl.Grade,
		Safety:      cl.Safety,
		Disciplines: cl.Type.List(),
		AreaNames:   tokens(cl.PathTokens),
		ClimbUUID:   cl.Metadata.ClimbID,
		LatLng:      cl.Metadata.LngLat.LatLng(),
	}
}

// the destination schema requires the token arrays; never emit null
func tokens(ts []string) []string {
	if ts == nil {
		return []string{}
	}
	return ts
}
