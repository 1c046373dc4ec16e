package models

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Climb is a single route or boulder problem. metadata.area_id is the
// foreign reference to the owning area's metadata.area_id.
type Climb struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Type     DisciplineFlags    `bson:"type"`
	Grade    string             `bson:"grade,omitempty"`
	Safety   string             `bson:"safety,omitempty"`
	FA       string             `bson:"fa,omitempty"`
	Content  ClimbContent       `bson:"content"`
	Metadata ClimbMetadata      `bson:"metadata"`
}

type ClimbMetadata struct {
	LngLat  Point  `bson:"lnglat"`
	ClimbID string `bson:"climb_id"`
	AreaID  string `bson:"area_id"`
}

type ClimbContent struct {
	Description string `bson:"description,omitempty"`
}

// DisciplineFlags mirrors the source document's boolean discipline tags.
type DisciplineFlags struct {
	Trad       bool `bson:"trad,omitempty"`
	Sport      bool `bson:"sport,omitempty"`
	Bouldering bool `bson:"bouldering,omitempty"`
	Aid        bool `bson:"aid,omitempty"`
	TR         bool `bson:"tr,omitempty"`
	Alpine     bool `bson:"alpine,omitempty"`
	Mixed      bool `bson:"mixed,omitempty"`
	Snow       bool `bson:"snow,omitempty"`
	Ice        bool `bson:"ice,omitempty"`
}

// List flattens the flags into the array-of-strings convention used by the
// search index. Always returns a non-nil slice, in a fixed order.
func (d DisciplineFlags) List() []string {
	out := []string{}
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"trad", d.Trad},
		{"sport", d.Sport},
		{"bouldering", d.Bouldering},
		{"aid", d.Aid},
		{"tr", d.TR},
		{"alpine", d.Alpine},
		{"mixed", d.Mixed},
		{"snow", d.Snow},
		{"ice", d.Ice},
	} {
		if f.on {
			out = append(out, f.name)
		}
	}
	return out
}

// DisciplinesFrom is the inverse of List; unknown names are ignored.
func DisciplinesFrom(names []string) DisciplineFlags {
	var d DisciplineFlags
	for _, n := range names {
		switch n {
		case "trad":
			d.Trad = true
		case "sport":
			d.Sport = true
		case "bouldering":
			d.Bouldering = true
		case "aid":
			d.Aid = true
		case "tr":
			d.TR = true
		case "alpine":
			d.Alpine = true
		case "mixed":
			d.Mixed = true
		case "snow":
			d.Snow = true
		case "ice":
			d.Ice = true
		}
	}
	return d
}

// ClimbWithPath is the read-time join shape: a climb plus a snapshot of the
// owning area's path tokens.
type ClimbWithPath struct {
	Climb      `bson:",inline"`
	PathTokens []string `bson:"pathTokens"`
}

// NewClimb builds a climb owned by area, assigning a fresh climb_id.
func NewClimb(name string, owner *Area) *Climb {
	return &Climb{
		ID:   primitive.NewObjectID(),
		Name: name,
		Metadata: ClimbMetadata{
			ClimbID: uuid.New().String(),
			AreaID:  owner.Metadata.AreaID,
		},
	}
}
