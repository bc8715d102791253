package dashboard

import (
	"strconv"
	"strings"

	"pallet-returns-dashboard/internal/models"
)

// Form is the "new return" form posted by the dashboard page.
type Form struct {
	CustomerName string `form:"customerName"`
	ReturnDate   string `form:"returnDate"`
	PalletCount  int    `form:"palletCount"`
	Remarks      string `form:"remarks"`
}

func (f Form) Validate() error {
	if strings.TrimSpace(f.CustomerName) == "" {
		return models.ErrMissingCustomer
	}
	if _, err := models.ParseReturnDate(f.ReturnDate); err != nil {
		return err
	}
	if f.PalletCount < 1 {
		return models.ErrInvalidPalletCount
	}
	return nil
}

// ToCreateRequest builds the request body for a new record. The order id is
// generated here; the server starts every record as Pending.
func (f Form) ToCreateRequest() (models.CreateReturnRequest, error) {
	if err := f.Validate(); err != nil {
		return models.CreateReturnRequest{}, err
	}
	date, _ := models.ParseReturnDate(f.ReturnDate)
	return models.CreateReturnRequest{
		OrderID:      models.NewOrderID(),
		CustomerName: strings.TrimSpace(f.CustomerName),
		ReturnDate:   date,
		PalletCount:  f.PalletCount,
		Remarks:      strings.TrimSpace(f.Remarks),
	}, nil
}

// EditForm is the inline edit form on a card. Blank inputs leave the field
// untouched, except remarks which is always sent so it can be cleared.
type EditForm struct {
	CustomerName string `form:"customerName"`
	ReturnDate   string `form:"returnDate"`
	PalletCount  string `form:"palletCount"`
	Status       string `form:"status"`
	Remarks      string `form:"remarks"`
}

func (f EditForm) ToPatch() (models.ReturnPatch, error) {
	var p models.ReturnPatch

	if name := strings.TrimSpace(f.CustomerName); name != "" {
		p.CustomerName = &name
	}
	if raw := strings.TrimSpace(f.ReturnDate); raw != "" {
		d, err := models.ParseReturnDate(raw)
		if err != nil {
			return p, err
		}
		p.ReturnDate = &d
	}
	if raw := strings.TrimSpace(f.PalletCount); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, models.ErrInvalidPalletCount
		}
		p.PalletCount = &n
	}
	if raw := strings.TrimSpace(f.Status); raw != "" {
		s, err := models.ParseStatus(raw)
		if err != nil {
			return p, err
		}
		p.Status = &s
	}
	remarks := strings.TrimSpace(f.Remarks)
	p.Remarks = &remarks

	return p, p.Validate()
}
