// internal/store/return_store.go
package store

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pallet-returns-dashboard/internal/models"
)

var (
	ErrNotFound         = errors.New("return request not found")
	ErrDuplicateOrderID = errors.New("a return request with this orderId already exists")
	ErrDuplicateID      = errors.New("a return request with this _id already exists")
)

// ReturnStore persists return requests in a single MongoDB collection.
// It is safe for concurrent use; concurrent writers to the same record are
// resolved by MongoDB, last write wins.
type ReturnStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewReturnStore(coll *mongo.Collection) *ReturnStore {
	return &ReturnStore{coll: coll, now: time.Now}
}

// IdentityFilter builds the lookup filter for a path identifier. A well-formed
// ObjectID matches on _id only; anything else matches either a string _id or
// the orderId business key.
func IdentityFilter(id string) bson.M {
	if oid, ok := models.RecordID(id).ObjectID(); ok {
		return bson.M{"_id": oid}
	}
	return bson.M{"$or": bson.A{
		bson.M{"_id": id},
		bson.M{"orderId": id},
	}}
}

// timestamp is truncated to what a BSON datetime can hold.
func (s *ReturnStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// Insert persists a new record, filling in the identifier, order id and
// status when the caller left them empty.
func (s *ReturnStore) Insert(ctx context.Context, r *models.ReturnRequest) error {
	if r.ID.IsZero() {
		r.ID = models.NewRecordID()
	}
	if r.OrderID == "" {
		r.OrderID = models.NewOrderID()
	}
	if r.Status == "" {
		r.Status = models.StatusPending
	}
	now := s.timestamp()
	r.CreatedAt, r.UpdatedAt = now, now

	if _, err := s.coll.InsertOne(ctx, r); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateKey(err)
		}
		return errors.Wrap(err, "insert return request")
	}
	return nil
}

// duplicateKey tells which unique index rejected the insert. The server
// message reads "E11000 duplicate key error collection: db.coll index: <name> ...".
func duplicateKey(err error) error {
	if strings.Contains(err.Error(), "index: _id_ ") {
		return ErrDuplicateID
	}
	return ErrDuplicateOrderID
}

// FindAll returns every record in natural (insertion) order.
func (s *ReturnStore) FindAll(ctx context.Context) ([]models.ReturnRequest, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "find return requests")
	}
	defer cursor.Close(ctx)

	returns := []models.ReturnRequest{}
	if err = cursor.All(ctx, &returns); err != nil {
		return nil, errors.Wrap(err, "decode return requests")
	}
	return returns, nil
}

// FindByIdentifier resolves a record by primary key and falls back to the
// orderId business key.
func (s *ReturnStore) FindByIdentifier(ctx context.Context, id string) (models.ReturnRequest, error) {
	var r models.ReturnRequest
	filter := IdentityFilter(id)
	err := s.coll.FindOne(ctx, filter).Decode(&r)

	// the $or filter already covers orderId
	if _, isOID := filter["_id"]; isOID && errors.Is(err, mongo.ErrNoDocuments) {
		err = s.coll.FindOne(ctx, bson.M{"orderId": id}).Decode(&r)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ReturnRequest{}, ErrNotFound
		}
		return models.ReturnRequest{}, errors.Wrapf(err, "find return request %q", id)
	}
	return r, nil
}

// UpdateFields applies the whitelisted fields of patch and returns the record
// as it is after the update.
func (s *ReturnStore) UpdateFields(ctx context.Context, id string, patch models.ReturnPatch) (models.ReturnRequest, error) {
	if err := patch.Validate(); err != nil {
		return models.ReturnRequest{}, err
	}

	set := patch.SetFields()
	set["updatedAt"] = s.timestamp()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.ReturnRequest
	err := s.coll.FindOneAndUpdate(ctx, IdentityFilter(id), bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ReturnRequest{}, ErrNotFound
		}
		return models.ReturnRequest{}, errors.Wrapf(err, "update return request %q", id)
	}
	return updated, nil
}

// Delete removes exactly one record matching id.
func (s *ReturnStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, IdentityFilter(id))
	if err != nil {
		return errors.Wrapf(err, "delete return request %q", id)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored records.
func (s *ReturnStore) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "count return requests")
	}
	return n, nil
}
