package records

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	kdb "github.com/recordbin/recordbin/pkg/db"
	xe "github.com/recordbin/recordbin/pkg/errors"
)

// identityField is the key the store attaches to each document on insert.
// It never leaks out of this package.
const identityField = "_id"

type recordMongo struct { // implements kdb.RecordInterface
	coll *mongo.Collection
}

func New(coll *mongo.Collection) *recordMongo {
	return &recordMongo{coll: coll}
}

func (r *recordMongo) Insert(ctx context.Context, document kdb.Document) (string, error) {
	result, err := r.coll.InsertOne(ctx, bson.M(document))
	if err != nil {
		return "", xe.WrapWithNote("on insert", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(result.InsertedID), nil
}

func (r *recordMongo) ScanAll(ctx context.Context) ([]kdb.Document, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, xe.WrapWithNote("on scan", err)
	}
	defer cursor.Close(ctx)

	found := []kdb.Document{}
	for cursor.Next(ctx) {
		document := kdb.Document{}
		if err := cursor.Decode(&document); err != nil {
			return nil, xe.WrapWithNote("on scan", err)
		}
		delete(document, identityField)
		found = append(found, document)
	}
	if err := cursor.Err(); err != nil {
		return nil, xe.WrapWithNote("on scan", err)
	}

	return found, nil
}
