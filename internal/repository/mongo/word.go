// Package mongo stores words in a MongoDB collection with a unique index on text.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"wordregistry/internal/domain"
	"wordregistry/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CollectionName is the collection holding word documents
const CollectionName = "words"

type wordDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Text string             `bson:"text"`
}

func (d wordDocument) toDomain() domain.Word {
	return domain.Word{ID: d.ID.Hex(), Text: d.Text}
}

// WordRepo implements repository.WordRepository
type WordRepo struct {
	coll *mongo.Collection
}

// NewWordRepo creates a repository over the given collection
func NewWordRepo(coll *mongo.Collection) *WordRepo {
	return &WordRepo{coll: coll}
}

// EnsureIndexes creates the unique index on text if it is missing
func (r *WordRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "text", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("text_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create text index: %w", err)
	}
	return nil
}

// List returns all words ordered by _id, which follows insertion order
func (r *WordRepo) List(ctx context.Context) ([]domain.Word, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []wordDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	words := make([]domain.Word, 0, len(docs))
	for _, d := range docs {
		words = append(words, d.toDomain())
	}
	return words, nil
}

// Create inserts a word; the unique index rejects taken text
func (r *WordRepo) Create(ctx context.Context, text string) (*domain.Word, error) {
	doc := wordDocument{ID: primitive.NewObjectID(), Text: text}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateText
		}
		return nil, err
	}

	w := doc.toDomain()
	return &w, nil
}

// FindByText returns the word holding the given normalized text
func (r *WordRepo) FindByText(ctx context.Context, text string) (*domain.Word, error) {
	var doc wordDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "text", Value: text}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	w := doc.toDomain()
	return &w, nil
}

// Update sets the text of the word with the given id and returns the new document
func (r *WordRepo) Update(ctx context.Context, id, text string) (*domain.Word, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "text", Value: text}}}}

	var doc wordDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateText
		}
		return nil, err
	}

	w := doc.toDomain()
	return &w, nil
}

// Delete removes the word with the given id and reports whether it existed
func (r *WordRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Ping checks the primary is reachable
func (r *WordRepo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client
func (r *WordRepo) Close(ctx context.Context) error {
	return r.coll.Database().Client().Disconnect(ctx)
}
