package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecordID is the primary identifier of a return request. Identifiers that are
// valid ObjectID hex strings are stored as BSON ObjectIDs; anything else (for
// example a client generated UUID) is stored as a plain string.
type RecordID string

// NewRecordID returns a fresh ObjectID based identifier.
func NewRecordID() RecordID {
	return RecordID(primitive.NewObjectID().Hex())
}

// ObjectID reports whether the identifier is a well-formed ObjectID and returns it.
func (id RecordID) ObjectID() (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

func (id RecordID) IsZero() bool {
	return id == ""
}

func (id RecordID) String() string {
	return string(id)
}

func (id RecordID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if oid, ok := id.ObjectID(); ok {
		return bson.MarshalValue(oid)
	}
	return bson.MarshalValue(string(id))
}

func (id *RecordID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		*id = RecordID(raw.ObjectID().Hex())
	case bsontype.String:
		*id = RecordID(raw.StringValue())
	case bsontype.Null, bsontype.Undefined:
		*id = ""
	default:
		return fmt.Errorf("cannot decode BSON %s into RecordID", t)
	}
	return nil
}
