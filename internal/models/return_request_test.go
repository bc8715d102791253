package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCreateReturnRequest_Validate(t *testing.T) {
	date, _ := ParseReturnDate("2025-10-01")
	valid := CreateReturnRequest{CustomerName: "ABC Company", ReturnDate: date, PalletCount: 5}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *CreateReturnRequest)
		want   error
	}{
		{"blank customer", func(r *CreateReturnRequest) { r.CustomerName = "  " }, ErrMissingCustomer},
		{"no date", func(r *CreateReturnRequest) { r.ReturnDate = ReturnDate{} }, ErrInvalidReturnDate},
		{"zero pallets", func(r *CreateReturnRequest) { r.PalletCount = 0 }, ErrInvalidPalletCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.ErrorIs(t, r.Validate(), tt.want)
		})
	}
}

func TestCreateReturnRequest_ToModel(t *testing.T) {
	date, _ := ParseReturnDate("2025-10-01")

	// a status in the body is not part of the create request
	var body CreateReturnRequest
	require.NoError(t, json.Unmarshal([]byte(`{"customerName":"ABC Company","returnDate":"2025-10-01","palletCount":5,"status":"Completed"}`), &body))
	require.NoError(t, body.Validate())
	assert.Equal(t, StatusPending, body.ToModel().Status)

	m := CreateReturnRequest{
		ID:           " abc ",
		OrderID:      " ORD123 ",
		CustomerName: " ABC Company ",
		ReturnDate:   date,
		PalletCount:  5,
	}.ToModel()

	assert.Equal(t, RecordID("abc"), m.ID)
	assert.Equal(t, "ORD123", m.OrderID)
	assert.Equal(t, "ABC Company", m.CustomerName)
	assert.Equal(t, StatusPending, m.Status)
}

func TestReturnPatch(t *testing.T) {
	t.Run("decodes only whitelisted fields", func(t *testing.T) {
		var p ReturnPatch
		require.NoError(t, json.Unmarshal([]byte(`{"status":"Rejected","orderId":"X","_id":"Y"}`), &p))
		require.NoError(t, p.Validate())
		assert.Equal(t, bson.M{"status": StatusRejected}, p.SetFields())
	})

	t.Run("empty patch", func(t *testing.T) {
		var p ReturnPatch
		require.NoError(t, json.Unmarshal([]byte(`{"createdAt":"2020-01-01"}`), &p))
		assert.True(t, p.IsEmpty())
		assert.ErrorIs(t, p.Validate(), ErrEmptyUpdate)
	})

	t.Run("invalid values", func(t *testing.T) {
		assert.ErrorIs(t, StatusPatch("Lost").Validate(), ErrInvalidStatus)
		zero := 0
		assert.ErrorIs(t, ReturnPatch{PalletCount: &zero}.Validate(), ErrInvalidPalletCount)
	})

	t.Run("customer name cannot be blanked", func(t *testing.T) {
		for _, body := range []string{`{"customerName":""}`, `{"customerName":"   "}`} {
			var p ReturnPatch
			require.NoError(t, json.Unmarshal([]byte(body), &p))
			assert.ErrorIs(t, p.Validate(), ErrMissingCustomer, body)
		}

		var p ReturnPatch
		require.NoError(t, json.Unmarshal([]byte(`{"customerName":" XYZ Ltd. "}`), &p))
		require.NoError(t, p.Validate())
		assert.Equal(t, bson.M{"customerName": "XYZ Ltd."}, p.SetFields())
	})

	t.Run("remarks can be cleared", func(t *testing.T) {
		var p ReturnPatch
		require.NoError(t, json.Unmarshal([]byte(`{"remarks":""}`), &p))
		require.NoError(t, p.Validate())
		assert.Equal(t, bson.M{"remarks": ""}, p.SetFields())

		r := ReturnRequest{Remarks: "Handle with care", Status: StatusPending}
		p.Apply(&r)
		assert.Equal(t, "", r.Remarks)
		assert.Equal(t, StatusPending, r.Status)
	})

	t.Run("apply every field", func(t *testing.T) {
		var p ReturnPatch
		require.NoError(t, json.Unmarshal([]byte(
			`{"status":"Completed","customerName":"XYZ Ltd.","returnDate":"2025-09-28","palletCount":2,"remarks":"ok"}`), &p))
		assert.Len(t, p.SetFields(), 5)

		var r ReturnRequest
		p.Apply(&r)
		assert.Equal(t, StatusCompleted, r.Status)
		assert.Equal(t, "XYZ Ltd.", r.CustomerName)
		assert.Equal(t, "2025-09-28", r.ReturnDate.String())
		assert.Equal(t, 2, r.PalletCount)
		assert.Equal(t, "ok", r.Remarks)
	})
}

func TestNewOrderID(t *testing.T) {
	id := NewOrderID()
	assert.True(t, strings.HasPrefix(id, "ORD-"))
	assert.Len(t, id, 12)
	assert.NotEqual(t, id, NewOrderID())
}
