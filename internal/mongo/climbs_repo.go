package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cragstore/internal/models"
)

func (c *Client) climbsCol() *mongo.Collection { return c.DB.Collection("climbs") }

func (c *Client) EnsureClimbIndexes(ctx context.Context) error {
	_, err := c.climbsCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "metadata.climb_id", Value: 1}},
			Options: options.Index().SetName("uniq_climb_id").SetUnique(true),
		},
		{Keys: bson.D{{Key: "metadata.area_id", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	})
	return err
}

// ClimbPage returns one page of climbs in _id order, each joined server-side
// with the owning area's pathTokens snapshot. An empty slice signals that the
// collection is exhausted.
func (c *Client) ClimbPage(ctx context.Context, page, pageSize int) ([]models.ClimbWithPath, error) {
	pipe := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: int64(page) * int64(pageSize)}},
		{{Key: "$limit", Value: int64(pageSize)}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "areas",
			"localField":   "metadata.area_id",
			"foreignField": "metadata.area_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$addFields", Value: bson.M{"pathTokens": "$owner.pathTokens"}}},
		{{Key: "$project", Value: bson.M{"owner": 0}}},
	}

	cur, err := c.climbsCol().Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ClimbWithPath
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ClimbByUUID(ctx context.Context, id string) (*models.Climb, error) {
	var cl models.Climb
	if err := c.climbsCol().FindOne(ctx, bson.M{"metadata.climb_id": id}).Decode(&cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

func (c *Client) ClimbsForArea(ctx context.Context, areaID string) ([]models.Climb, error) {
	cur, err := c.climbsCol().Find(ctx,
		bson.M{"metadata.area_id": areaID},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Climb
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) InsertClimb(ctx context.Context, cl *models.Climb) error {
	_, err := c.climbsCol().InsertOne(ctx, cl)
	return err
}
