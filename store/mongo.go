package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
)

// DefaultCollection is the MongoDB collection used by cmd/mazed.
const DefaultCollection = "mazes"

// mazeDocument is the BSON shape of a Record. The grid is stored in its rows
// form and the id as its string form.
type mazeDocument struct {
	ID        string       `bson:"_id"`
	Algorithm string       `bson:"algorithm"`
	Width     int          `bson:"width"`
	Height    int          `bson:"height"`
	Seed      int64        `bson:"seed"`
	Rows      [][]int      `bson:"rows"`
	Solution  []maze.Point `bson:"solution,omitempty"`
	CreatedAt time.Time    `bson:"createdAt"`
}

func toDocument(rec *Record) mazeDocument {
	return mazeDocument{
		ID:        rec.ID.String(),
		Algorithm: rec.Algorithm.String(),
		Width:     rec.Width,
		Height:    rec.Height,
		Seed:      rec.Seed,
		Rows:      rec.Grid.Rows(),
		Solution:  rec.Solution,
		CreatedAt: rec.CreatedAt,
	}
}

func fromDocument(doc mazeDocument) (*Record, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("document id %q: %w", doc.ID, err)
	}
	algo, err := generate.ParseAlgorithm(doc.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", doc.ID, err)
	}
	g, err := maze.FromRows(doc.Rows)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", doc.ID, err)
	}
	return &Record{
		ID:        id,
		Algorithm: algo,
		Width:     doc.Width,
		Height:    doc.Height,
		Seed:      doc.Seed,
		Grid:      g,
		Solution:  maze.Path(doc.Solution),
		CreatedAt: doc.CreatedAt,
	}, nil
}

// MongoRepository handles the persistence of maze records in MongoDB.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a MongoRepository on the given database and
// collection.
func NewMongoRepository(client *mongo.Client, dbName, collectionName string) *MongoRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoRepository{
		collection: collection,
	}
}

// Save inserts or updates a record.
func (m *MongoRepository) Save(ctx context.Context, rec *Record) error {
	if rec == nil || rec.Grid == nil {
		return ErrNilRecord
	}
	doc := toDocument(rec)

	filter := bson.M{"_id": doc.ID}
	update := bson.M{
		"$set": bson.M{
			"algorithm": doc.Algorithm,
			"width":     doc.Width,
			"height":    doc.Height,
			"seed":      doc.Seed,
			"rows":      doc.Rows,
			"solution":  doc.Solution,
			"createdAt": doc.CreatedAt,
			"updatedAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("Save(%s): %w", rec.ID, err)
	}
	return nil
}

// ByID retrieves a record by its id.
func (m *MongoRepository) ByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	filter := bson.M{"_id": id.String()}
	var doc mazeDocument
	if err := m.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("ByID(%s): %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("ByID(%s): %w", id, err)
	}
	return fromDocument(doc)
}

// SaveSolution sets the solution path of an existing record.
func (m *MongoRepository) SaveSolution(ctx context.Context, id uuid.UUID, path maze.Path) error {
	filter := bson.M{"_id": id.String()}
	update := bson.M{
		"$set": bson.M{
			"solution":  []maze.Point(path),
			"updatedAt": time.Now(),
		},
	}
	res, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("SaveSolution(%s): %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("SaveSolution(%s): %w", id, ErrNotFound)
	}
	return nil
}
