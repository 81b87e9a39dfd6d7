package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fieldserve/models"
)

// semanticCandidates caps the vector stage before narrowing filters run.
const semanticCandidates = 15

// Search composes the ranked candidate pipeline. Stage order is fixed:
// vector similarity first (it ranks, later stages only narrow), then
// geo-radius, then exact category, with a plain active-services fallback
// when neither primary predicate applies.
func (r *MongoServiceRepo) Search(ctx context.Context, query models.SearchQuery, vector []float32) ([]models.SearchResultItem, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var pipeline mongo.Pipeline

	semantic := len(vector) > 0
	geo := query.HasGeo

	switch {
	case semantic:
		pipeline = append(pipeline, bson.D{
			{Key: "$vectorSearch", Value: bson.D{
				{Key: "index", Value: "service_embedding"},
				{Key: "path", Value: "embedding"},
				{Key: "queryVector", Value: vector},
				{Key: "numCandidates", Value: semanticCandidates * 10},
				{Key: "limit", Value: semanticCandidates},
			}},
		})
		pipeline = append(pipeline, bson.D{
			{Key: "$addFields", Value: bson.M{"score": bson.M{"$meta": "vectorSearchScore"}}},
		})
		pipeline = append(pipeline, bson.D{
			{Key: "$match", Value: bson.M{"active": true}},
		})
		if geo {
			// $geoNear cannot follow another stage, so the radius becomes a
			// $geoWithin predicate here; ranking stays semantic.
			pipeline = append(pipeline, bson.D{
				{Key: "$match", Value: bson.M{
					"location": bson.M{"$geoWithin": bson.M{"$centerSphere": bson.A{
						bson.A{query.Lng, query.Lat},
						query.RadiusKm / 6371.0,
					}}},
				}},
			})
		}
	case geo:
		pipeline = append(pipeline, bson.D{
			{Key: "$geoNear", Value: bson.D{
				{Key: "near", Value: bson.D{
					{Key: "type", Value: "Point"},
					{Key: "coordinates", Value: bson.A{query.Lng, query.Lat}},
				}},
				{Key: "distanceField", Value: "distance"},
				{Key: "spherical", Value: true},
				{Key: "maxDistance", Value: query.RadiusKm * 1000},
				{Key: "query", Value: bson.M{"active": true}},
			}},
		})
		if query.Q != "" {
			// Short queries skip the semantic stage but still narrow by
			// keyword over name, category and tags.
			pipeline = append(pipeline, keywordMatchStage(query.Q))
		}
	default:
		pipeline = append(pipeline, bson.D{
			{Key: "$match", Value: bson.M{"active": true}},
		})
		if query.Q != "" {
			pipeline = append(pipeline, keywordMatchStage(query.Q))
		}
	}

	if query.Category != "" {
		pipeline = append(pipeline, bson.D{
			{Key: "$match", Value: bson.M{"category": query.Category}},
		})
	}

	cursor, err := r.coll.Aggregate(cctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("search pipeline failed: %w", err)
	}
	defer cursor.Close(cctx)

	var items []models.SearchResultItem
	if err := cursor.All(cctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return items, nil
}

func keywordMatchStage(q string) bson.D {
	return bson.D{
		{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"name": bson.M{"$regex": q, "$options": "i"}},
				bson.M{"category": bson.M{"$regex": q, "$options": "i"}},
				bson.M{"tags": bson.M{"$regex": q, "$options": "i"}},
			},
		}},
	}
}
