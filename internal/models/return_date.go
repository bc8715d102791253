package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DateLayout is the wire format of a return date.
const DateLayout = "2006-01-02"

// ReturnDate is the calendar day a pallet return is scheduled for. It travels
// as an ISO date string in JSON and is stored as a BSON datetime at midnight UTC.
type ReturnDate struct {
	time.Time
}

// NewReturnDate truncates t to its calendar day in UTC.
func NewReturnDate(t time.Time) ReturnDate {
	t = t.UTC()
	y, m, d := t.Date()
	return ReturnDate{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseReturnDate accepts either YYYY-MM-DD or an RFC 3339 timestamp.
func ParseReturnDate(raw string) (ReturnDate, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return NewReturnDate(t), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return NewReturnDate(t), nil
	}
	return ReturnDate{}, ErrInvalidReturnDate
}

func (d ReturnDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d ReturnDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *ReturnDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidReturnDate
	}
	parsed, err := ParseReturnDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d ReturnDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.Time)
}

// UnmarshalBSONValue also reads dates that were stored as strings by older
// clients that inserted the request body verbatim.
func (d *ReturnDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.DateTime:
		*d = NewReturnDate(raw.Time())
	case bsontype.String:
		parsed, err := ParseReturnDate(raw.StringValue())
		if err != nil {
			return err
		}
		*d = parsed
	case bsontype.Null, bsontype.Undefined:
		*d = ReturnDate{}
	default:
		return fmt.Errorf("cannot decode BSON %s into ReturnDate", t)
	}
	return nil
}
