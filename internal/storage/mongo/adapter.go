// Package mongo implements storage.EventRepository on a MongoDB collection.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	v1 "github.com/unclelab/sportevents/internal/api/v1"
	"github.com/unclelab/sportevents/internal/storage"
)

const connectPingTimeout = 5 * time.Second

// Adapter implements storage.EventRepository for MongoDB.
type Adapter struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewAdapter connects to MongoDB and returns an adapter bound to the given
// database and collection.
//
// Example URI: "mongodb://127.0.0.1:27017"
func NewAdapter(ctx context.Context, uri, database, collection string) (*Adapter, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	slog.Info("[Mongo] Connected", "database", database, "collection", collection)

	return &Adapter{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// Client exposes the underlying connection for migrations and health checks.
func (a *Adapter) Client() *mongo.Client {
	return a.client
}

// Close disconnects from MongoDB.
func (a *Adapter) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}

func (a *Adapter) List(ctx context.Context) ([]*v1.Event, error) {
	cursor, err := a.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var events []*v1.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func (a *Adapter) Get(ctx context.Context, eventID string) (*v1.Event, error) {
	var event v1.Event
	err := a.coll.FindOne(ctx, bson.M{"eventId": eventID}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", eventID, err)
	}
	return &event, nil
}

func (a *Adapter) Insert(ctx context.Context, event *v1.Event) error {
	res, err := a.coll.InsertOne(ctx, event)
	if mongo.IsDuplicateKeyError(err) {
		return storage.ErrDuplicateID
	}
	if err != nil {
		return fmt.Errorf("insert event %s: %w", event.EventID, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.OID = oid
	}
	return nil
}

func (a *Adapter) Update(ctx context.Context, eventID string, patch map[string]interface{}) error {
	res, err := a.coll.UpdateOne(ctx, bson.M{"eventId": eventID}, bson.M{"$set": patch})
	if err != nil {
		return fmt.Errorf("update event %s: %w", eventID, err)
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (a *Adapter) Delete(ctx context.Context, eventID string) (*v1.Event, error) {
	var event v1.Event
	err := a.coll.FindOneAndDelete(ctx, bson.M{"eventId": eventID}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete event %s: %w", eventID, err)
	}
	return &event, nil
}

// LastEventID finds the most recently inserted document by descending _id.
// ObjectIDs are monotonic within this single-writer service, which is all
// the allocator needs.
func (a *Adapter) LastEventID(ctx context.Context) (string, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetProjection(bson.D{{Key: "eventId", Value: 1}})

	var doc struct {
		EventID string `bson:"eventId"`
	}
	err := a.coll.FindOne(ctx, bson.D{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("find last event id: %w", err)
	}
	return doc.EventID, nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, readpref.Primary())
}
