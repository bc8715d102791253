// internal/models/return_request.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// ReturnRequest là một yêu cầu trả pallet của khách hàng.
type ReturnRequest struct {
	ID           RecordID   `bson:"_id,omitempty" json:"_id"`
	OrderID      string     `bson:"orderId" json:"orderId"` // Mã đơn hàng, ví dụ "ORD123"
	CustomerName string     `bson:"customerName" json:"customerName"`
	ReturnDate   ReturnDate `bson:"returnDate" json:"returnDate"`
	PalletCount  int        `bson:"palletCount" json:"palletCount"`
	Status       Status     `bson:"status" json:"status"` // Pending, Completed, Rejected
	Remarks      string     `bson:"remarks,omitempty" json:"remarks,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time  `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CreateReturnRequest is the POST body. The identifier and order id are
// optional and filled in by the store when absent. New records always start
// as Pending.
type CreateReturnRequest struct {
	ID           RecordID   `json:"_id"`
	OrderID      string     `json:"orderId"`
	CustomerName string     `json:"customerName" binding:"required"`
	ReturnDate   ReturnDate `json:"returnDate"`
	PalletCount  int        `json:"palletCount" binding:"required,min=1"`
	Remarks      string     `json:"remarks"`
}

// Validate checks what the binding tags cannot express.
func (r CreateReturnRequest) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return ErrMissingCustomer
	}
	if r.ReturnDate.IsZero() {
		return ErrInvalidReturnDate
	}
	if r.PalletCount < 1 {
		return ErrInvalidPalletCount
	}
	return nil
}

// ToModel converts the request body into a record ready to insert.
func (r CreateReturnRequest) ToModel() ReturnRequest {
	return ReturnRequest{
		ID:           RecordID(strings.TrimSpace(string(r.ID))),
		OrderID:      strings.TrimSpace(r.OrderID),
		CustomerName: strings.TrimSpace(r.CustomerName),
		ReturnDate:   r.ReturnDate,
		PalletCount:  r.PalletCount,
		Status:       StatusPending,
		Remarks:      r.Remarks,
	}
}

// ReturnPatch is a partial update. Only these five fields are ever written;
// anything else in the request body, _id and orderId included, is ignored.
type ReturnPatch struct {
	Status       *Status     `json:"status,omitempty"`
	CustomerName *string     `json:"customerName,omitempty"`
	ReturnDate   *ReturnDate `json:"returnDate,omitempty"`
	PalletCount  *int        `json:"palletCount,omitempty"`
	Remarks      *string     `json:"remarks,omitempty"`
}

// IsEmpty reports whether the patch carries no recognised field.
func (p ReturnPatch) IsEmpty() bool {
	return p.Status == nil && p.CustomerName == nil && p.ReturnDate == nil &&
		p.PalletCount == nil && p.Remarks == nil
}

func (p ReturnPatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyUpdate
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.CustomerName != nil && strings.TrimSpace(*p.CustomerName) == "" {
		return ErrMissingCustomer
	}
	if p.PalletCount != nil && *p.PalletCount < 1 {
		return ErrInvalidPalletCount
	}
	if p.ReturnDate != nil && p.ReturnDate.IsZero() {
		return ErrInvalidReturnDate
	}
	return nil
}

// SetFields returns the $set document for the fields present in the patch.
func (p ReturnPatch) SetFields() bson.M {
	set := bson.M{}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.CustomerName != nil {
		set["customerName"] = strings.TrimSpace(*p.CustomerName)
	}
	if p.ReturnDate != nil {
		set["returnDate"] = *p.ReturnDate
	}
	if p.PalletCount != nil {
		set["palletCount"] = *p.PalletCount
	}
	if p.Remarks != nil {
		set["remarks"] = *p.Remarks
	}
	return set
}

// Apply copies the patched fields onto r.
func (p ReturnPatch) Apply(r *ReturnRequest) {
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.CustomerName != nil {
		r.CustomerName = strings.TrimSpace(*p.CustomerName)
	}
	if p.ReturnDate != nil {
		r.ReturnDate = *p.ReturnDate
	}
	if p.PalletCount != nil {
		r.PalletCount = *p.PalletCount
	}
	if p.Remarks != nil {
		r.Remarks = *p.Remarks
	}
}

// StatusPatch is shorthand for a patch that only moves the status.
func StatusPatch(s Status) ReturnPatch {
	return ReturnPatch{Status: &s}
}

// NewOrderID generates a business key in the "ORD-xxxxxxxx" shape the
// dashboard form has always produced.
func NewOrderID() string {
	return "ORD-" + uuid.NewString()[:8]
}
