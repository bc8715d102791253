package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRecordID_BSON(t *testing.T) {
	t.Run("object id hex is stored as ObjectID", func(t *testing.T) {
		id := NewRecordID()
		typ, _, err := id.MarshalBSONValue()
		require.NoError(t, err)
		assert.Equal(t, bsontype.ObjectID, typ)

		data, err := bson.Marshal(bson.M{"_id": id})
		require.NoError(t, err)
		var out struct {
			ID RecordID `bson:"_id"`
		}
		require.NoError(t, bson.Unmarshal(data, &out))
		assert.Equal(t, id, out.ID)
	})

	t.Run("anything else is stored as string", func(t *testing.T) {
		id := RecordID("0d6f2c3a-5b1e-4c8a-9f00-1234567890ab")
		typ, _, err := id.MarshalBSONValue()
		require.NoError(t, err)
		assert.Equal(t, bsontype.String, typ)

		_, ok := id.ObjectID()
		assert.False(t, ok)
	})

	t.Run("decodes native ObjectID", func(t *testing.T) {
		oid := primitive.NewObjectID()
		data, err := bson.Marshal(bson.M{"_id": oid})
		require.NoError(t, err)
		var out struct {
			ID RecordID `bson:"_id"`
		}
		require.NoError(t, bson.Unmarshal(data, &out))
		assert.Equal(t, RecordID(oid.Hex()), out.ID)
	})

	t.Run("rejects other types", func(t *testing.T) {
		data, err := bson.Marshal(bson.M{"_id": 42})
		require.NoError(t, err)
		var out struct {
			ID RecordID `bson:"_id"`
		}
		assert.Error(t, bson.Unmarshal(data, &out))
	})
}
