package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userlist/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoUser is the stored document: the record fields, the ObjectID that
// doubles as the public id, and the insertion position.
type mongoUser struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Seq         int                `bson:"seq"`
	models.User `bson:",inline"`
}

// MongoRepository keeps users in a MongoDB collection. Ids are ObjectID hex
// strings; records are listed by their insertion position.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) List(ctx context.Context) ([]models.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}

	var docs []mongoUser
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		u := d.User
		u.ID = d.ID.Hex()
		users = append(users, u)
	}
	return users, nil
}

// ReplaceAll swaps the stored users for users inside a transaction. Ids
// that are valid ObjectID hex strings are kept; any other id is replaced by
// a new ObjectID. A standalone server has no transactions; there the delete
// and insert run unguarded and a failed insert leaves the collection empty.
func (r *MongoRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	prepared, err := prepare(users, func() string { return primitive.NewObjectID().Hex() })
	if err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(prepared))
	for i, u := range prepared {
		oid, err := primitive.ObjectIDFromHex(u.ID)
		if err != nil {
			oid = primitive.NewObjectID()
		}
		docs = append(docs, mongoUser{ID: oid, Seq: i, User: u})
	}

	sess, err := r.coll.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, r.replace(sc, docs)
	})
	if err != nil && transactionsUnsupported(err) {
		return r.replace(ctx, docs)
	}
	return err
}

func (r *MongoRepository) replace(ctx context.Context, docs []interface{}) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("mongo insert: %w", err)
	}
	return nil
}

// Server error codes returned when a deployment cannot run transactions:
// IllegalOperation from a standalone mongod, and
// OperationNotSupportedInTransaction.
const (
	codeIllegalOperation                   = 20
	codeOperationNotSupportedInTransaction = 263
)

func transactionsUnsupported(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) {
		return ce.Code == codeIllegalOperation || ce.Code == codeOperationNotSupportedInTransaction
	}
	return false
}

func (r *MongoRepository) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("mongo count: %w", err)
	}
	return int(n), nil
}
