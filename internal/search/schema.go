package search

import (
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
)

const (
	AreasCollection  = "areas"
	ClimbsCollection = "climbs"
)

func areaSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: AreasCollection,
		Fields: []api.Field{
			{Name: "name", Type: "string"},
			{Name: "pathTokens", Type: "string[]"},
			{Name: "areaUUID", Type: "string"},
			{Name: "leaf", Type: "bool"},
			{Name: "totalClimbs", Type: "int32"},
			{Name: "density", Type: "float"},
			{Name: "areaLatLng", Type: "geopoint", Optional: pointer.True()},
		},
	}
}

func climbSchema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: ClimbsCollection,
		Fields: []api.Field{
			{Name: "climbName", Type: "string"},
			{Name: "climbDesc", Type: "string"},
			{Name: "fa", Type: "string"},
			{Name: "grade", Type: "string"},
			{Name: "safety", Type: "string"},
			{Name: "disciplines", Type: "string[]", Facet: pointer.True()},
			{Name: "areaNames", Type: "string[]"},
			{Name: "climbUUID", Type: "string"},
			{Name: "climbLatLng", Type: "geopoint", Optional: pointer.True()},
		},
	}
}
