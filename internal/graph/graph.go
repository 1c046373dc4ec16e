package graph

import (
	"context"
	"errors"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"cragstore/internal/models"
)

// Datastore is the slice of the document store the resolvers need.
// *mongo.Client is the production implementation.
type Datastore interface {
	AreaByUUID(ctx context.Context, id string) (*models.Area, error)
	ChildAreas(ctx context.Context, a *models.Area) ([]models.Area, error)
	SearchAreas(ctx context.Context, q string, limit int) ([]models.Area, error)
	ClimbByUUID(ctx context.Context, id string) (*models.Climb, error)
	ClimbsForArea(ctx context.Context, areaID string) ([]models.Climb, error)
	InsertArea(ctx context.Context, a *models.Area) error
	AttachChild(ctx context.Context, parentUUID string, child primitive.ObjectID) error
	InsertClimb(ctx context.Context, cl *models.Climb) error
	BumpClimbCount(ctx context.Context, areaIDs []string, delta int) error
}

func areaFrom(src any) *models.Area {
	switch a := src.(type) {
	case *models.Area:
		return a
	case models.Area:
		return &a
	}
	return nil
}

func climbFrom(src any) *models.Climb {
	switch c := src.(type) {
	case *models.Climb:
		return c
	case models.Climb:
		return &c
	}
	return nil
}

func strArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// NewSchema wires the query and mutation roots over ds.
func NewSchema(ds Datastore) (graphql.Schema, error) {
	climbType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Climb",
		Fields: graphql.Fields{
			"uuid": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return climbFrom(p.Source).Metadata.ClimbID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return climbFrom(p.Source).Name, nil
				},
			},
			"grade": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return climbFrom(p.Source).Grade, nil
				},
			},
			"safety": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return climbFrom(p.Source).Safety, nil
				},
			},
			"fa": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return climbFrom(p.Source).FA, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return climbFrom(p.Source).Content.Description, nil
				},
			},
			"disciplines": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return climbFrom(p.Source).Type.List(), nil
				},
			},
			"areaUuid": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return climbFrom(p.Source).Metadata.AreaID, nil
				},
			},
		},
	})

	areaType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Area",
		Fields: graphql.Fields{
			"uuid": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return areaFrom(p.Source).Metadata.AreaID, nil
				},
			},
			"areaName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return areaFrom(p.Source).AreaName, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return areaFrom(p.Source).Content.Description, nil
				},
			},
			"leaf": &graphql.Field{
				Type: graphql.Boolean,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return areaFrom(p.Source).Metadata.Leaf, nil
				},
			},
			"pathTokens": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return areaFrom(p.Source).PathTokens, nil
				},
			},
			"ancestors": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return areaFrom(p.Source).Ancestors, nil
				},
			},
			"totalClimbs": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return areaFrom(p.Source).TotalClimbs, nil
				},
			},
			"density": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return areaFrom(p.Source).Density, nil
				},
			},
			"climbs": &graphql.Field{
				Type: graphql.NewList(climbType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return ds.ClimbsForArea(p.Context, areaFrom(p.Source).Metadata.AreaID)
				},
			},
		},
	})
	// self-referential field has to land after construction
	areaType.AddFieldConfig("children", &graphql.Field{
		Type: graphql.NewList(areaType),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			return ds.ChildAreas(p.Context, areaFrom(p.Source))
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"area": &graphql.Field{
				Type: areaType,
				Args: graphql.FieldConfigArgument{
					"uuid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return ds.AreaByUUID(p.Context, strArg(p.Args, "uuid"))
				},
			},
			"areas": &graphql.Field{
				Type: graphql.NewList(areaType),
				Args: graphql.FieldConfigArgument{
					"match": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					limit, _ := p.Args["limit"].(int)
					if limit <= 0 || limit > 100 {
						limit = 20
					}
					return ds.SearchAreas(p.Context, strArg(p.Args, "match"), limit)
				},
			},
			"climb": &graphql.Field{
				Type: climbType,
				Args: graphql.FieldConfigArgument{
					"uuid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return ds.ClimbByUUID(p.Context, strArg(p.Args, "uuid"))
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addArea": &graphql.Field{
				Type: areaType,
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"parentUuid":  &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return addArea(p.Context, ds, p.Args)
				},
			},
			"addClimb": &graphql.Field{
				Type: climbType,
				Args: graphql.FieldConfigArgument{
					"areaUuid":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"grade":       &graphql.ArgumentConfig{Type: graphql.String},
					"safety":      &graphql.ArgumentConfig{Type: graphql.String},
					"fa":          &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"disciplines": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return addClimb(p.Context, ds, p.Args)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

func addArea(ctx context.Context, ds Datastore, args map[string]any) (*models.Area, error) {
	var parent *models.Area
	if pu := strArg(args, "parentUuid"); pu != "" {
		var err error
		parent, err = ds.AreaByUUID(ctx, pu)
		if err != nil {
			return nil, err
		}
	}
	a := models.NewArea(strArg(args, "name"), parent)
	a.Content.Description = strArg(args, "description")
	if err := ds.InsertArea(ctx, a); err != nil {
		return nil, err
	}
	if parent != nil {
		if err := ds.AttachChild(ctx, parent.Metadata.AreaID, a.ID); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func addClimb(ctx context.Context, ds Datastore, args map[string]any) (*models.Climb, error) {
	owner, err := ds.AreaByUUID(ctx, strArg(args, "areaUuid"))
	if err != nil {
		return nil, err
	}
	if !owner.Metadata.Leaf {
		return nil, errors.New("climbs can only be added to leaf areas")
	}

	cl := models.NewClimb(strArg(args, "name"), owner)
	cl.Grade = strArg(args, "grade")
	cl.Safety = strArg(args, "safety")
	cl.FA = strArg(args, "fa")
	cl.Content.Description = strArg(args, "description")
	if raw, ok := args["disciplines"].([]any); ok {
		names := make([]string, 0, len(raw))
		for _, v := range raw {
			if s, ok := v.(string); ok {
				names = append(names, s)
			}
		}
		cl.Type = models.DisciplinesFrom(names)
	}

	if err := ds.InsertClimb(ctx, cl); err != nil {
		return nil, err
	}
	// keep the roll-up counts honest up the whole ancestor chain
	if err := ds.BumpClimbCount(ctx, owner.Ancestors, 1); err != nil {
		return nil, err
	}
	return cl, nil
}
