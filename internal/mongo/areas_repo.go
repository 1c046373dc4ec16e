package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cragstore/internal/models"
)

func (c *Client) areasCol() *mongo.Collection { return c.DB.Collection("areas") }

func (c *Client) EnsureAreaIndexes(ctx context.Context) error {
	_, err := c.areasCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "metadata.area_id", Value: 1}},
			Options: options.Index().SetName("uniq_area_id").SetUnique(true),
		},
		{
			// two areas may share a name, never a full token path
			Keys:    bson.D{{Key: "pathHash", Value: 1}},
			Options: options.Index().SetName("uniq_path_hash").SetUnique(true),
		},
		{Keys: bson.D{{Key: "area_name", Value: 1}}},
		{Keys: bson.D{{Key: "metadata.lnglat", Value: "2dsphere"}}},
	})
	return err
}

// AreaPage returns one skip/limit page of areas in _id order. An empty slice
// signals that the collection is exhausted.
func (c *Client) AreaPage(ctx context.Context, page, pageSize int) ([]models.Area, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page) * int64(pageSize)).
		SetLimit(int64(pageSize))

	cur, err := c.areasCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Area
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AreaByUUID(ctx context.Context, id string) (*models.Area, error) {
	var a models.Area
	if err := c.areasCol().FindOne(ctx, bson.M{"metadata.area_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) ChildAreas(ctx context.Context, a *models.Area) ([]models.Area, error) {
	if len(a.Children) == 0 {
		return nil, nil
	}
	cur, err := c.areasCol().Find(ctx,
		bson.M{"_id": bson.M{"$in": a.Children}},
		options.Find().SetSort(bson.D{{Key: "area_name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Area
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchAreas(ctx context.Context, q string, limit int) ([]models.Area, error) {
	cur, err := c.areasCol().Find(ctx,
		bson.M{"area_name": bson.M{"$regex": q, "$options": "i"}},
		options.Find().SetSort(bson.D{{Key: "area_name", Value: 1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Area
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) InsertArea(ctx context.Context, a *models.Area) error {
	_, err := c.areasCol().InsertOne(ctx, a)
	return err
}

// AttachChild records a new child under parent and clears the parent's leaf
// flag; a parent with children can no longer hold climbs directly.
func (c *Client) AttachChild(ctx context.Context, parentUUID string, child primitive.ObjectID) error {
	_, err := c.areasCol().UpdateOne(ctx,
		bson.M{"metadata.area_id": parentUUID},
		bson.M{
			"$push": bson.M{"children": child},
			"$set":  bson.M{"metadata.leaf": false},
		})
	return err
}

// BumpClimbCount adjusts total_climbs on every area in areaIDs (typically an
// ancestors chain, self included).
func (c *Client) BumpClimbCount(ctx context.Context, areaIDs []string, delta int) error {
	if len(areaIDs) == 0 {
		return nil
	}
	_, err := c.areasCol().UpdateMany(ctx,
		bson.M{"metadata.area_id": bson.M{"$in": areaIDs}},
		bson.M{"$inc": bson.M{"total_climbs": delta}})
	return err
}
