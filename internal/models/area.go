package models

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Area is one node of the climbing-area hierarchy (region, crag or wall).
// pathTokens and ancestors are denormalized snapshots maintained on write:
// the name chain and the area_id chain from the root down to this node,
// self included.
type Area struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	AreaName    string               `bson:"area_name"`
	Metadata    AreaMetadata         `bson:"metadata"`
	Content     AreaContent          `bson:"content"`
	Aggregate   AggregateType        `bson:"aggregate"`
	Density     float64              `bson:"density"`
	TotalClimbs int                  `bson:"total_climbs"`
	Children    []primitive.ObjectID `bson:"children"`
	Ancestors   []string             `bson:"ancestors"`
	PathTokens  []string             `bson:"pathTokens"`
	PathHash    string               `bson:"pathHash"`
}

type AreaMetadata struct {
	LngLat Point  `bson:"lnglat"`
	AreaID string `bson:"area_id"` // globally unique UUID string
	Leaf   bool   `bson:"leaf"`
	ExtID  string `bson:"ext_id,omitempty"`
}

type AreaContent struct {
	Description string `bson:"description,omitempty"`
}

// Point is a GeoJSON point: coordinates in [lng, lat] order.
type Point struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

func NewPoint(lng, lat float64) Point {
	return Point{Type: "Point", Coordinates: []float64{lng, lat}}
}

// LatLng flips GeoJSON order into the [lat, lng] pair search engines expect.
// Returns nil when the point is unset.
func (p Point) LatLng() []float64 {
	if len(p.Coordinates) != 2 {
		return nil
	}
	return []float64{p.Coordinates[1], p.Coordinates[0]}
}

// AggregateType carries roll-up stats over the climbs under an area.
type AggregateType struct {
	ByGrade      []GradeValue            `bson:"byGrade,omitempty"`
	ByDiscipline map[string]CountByGroup `bson:"byDiscipline,omitempty"`
	Bounds       []Point                 `bson:"bounds,omitempty"`
}

type GradeValue struct {
	Label string `bson:"label"`
	Count int    `bson:"count"`
}

type CountByGroup struct {
	Total int `bson:"total"`
}

// PathHash is the dedup key for a position in the hierarchy: two areas may
// share a name but never a full token path.
func PathHash(tokens []string) string {
	sum := md5.Sum([]byte(strings.Join(tokens, "/")))
	return hex.EncodeToString(sum[:])
}

// NewArea builds a leaf area under parent (nil parent makes a root),
// assigning a fresh area_id and extending the parent's path snapshots.
func NewArea(name string, parent *Area) *Area {
	id := uuid.New().String()
	a := &Area{
		ID:       primitive.NewObjectID(),
		AreaName: name,
		Metadata: AreaMetadata{AreaID: id, Leaf: true},
		Children: []primitive.ObjectID{},
	}
	if parent != nil {
		a.PathTokens = append(append([]string{}, parent.PathTokens...), name)
		a.Ancestors = append(append([]string{}, parent.Ancestors...), id)
	} else {
		a.PathTokens = []string{name}
		a.Ancestors = []string{id}
	}
	a.PathHash = PathHash(a.PathTokens)
	return a
}
