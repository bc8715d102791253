// Package dashboard holds the view layer of the returns dashboard: search and
// pagination state, form handling, and the HTTP client for the REST API.
package dashboard

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"pallet-returns-dashboard/internal/models"
)

// Dashboard is one user's view of the collection. Every successful mutation
// is followed by a full re-fetch; nothing is patched locally.
type Dashboard struct {
	api     API
	log     logrus.FieldLogger
	state   State
	records []models.ReturnRequest
}

func New(api API, pageSize int, log logrus.FieldLogger) *Dashboard {
	return &Dashboard{
		api:     api,
		log:     log,
		state:   NewState(pageSize),
		records: []models.ReturnRequest{},
	}
}

// Refresh replaces the local copy with the full collection, newest first.
// On failure the previous copy is kept.
func (d *Dashboard) Refresh(ctx context.Context) error {
	records, err := d.api.List(ctx)
	if err != nil {
		d.log.WithError(err).Error("Failed to fetch return requests")
		return errors.Wrap(err, "fetch return requests")
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	d.records = records
	d.state.GoTo(d.state.Page, len(d.filtered()))
	return nil
}

// Records returns the local copy of the collection.
func (d *Dashboard) Records() []models.ReturnRequest {
	return d.records
}

func (d *Dashboard) State() State {
	return d.state
}

func (d *Dashboard) filtered() []models.ReturnRequest {
	return Filter(d.records, d.state.Search)
}

func (d *Dashboard) Search(term string) {
	d.state.SetSearch(term)
}

func (d *Dashboard) NextPage() {
	d.state.Next(len(d.filtered()))
}

func (d *Dashboard) PrevPage() {
	d.state.Prev(len(d.filtered()))
}

func (d *Dashboard) GoToPage(page int) {
	d.state.GoTo(page, len(d.filtered()))
}

// Create submits the form as a new Pending record and re-fetches.
func (d *Dashboard) Create(ctx context.Context, f Form) (models.ReturnRequest, error) {
	req, err := f.ToCreateRequest()
	if err != nil {
		return models.ReturnRequest{}, err
	}
	created, err := d.api.Create(ctx, req)
	if err != nil {
		d.log.WithError(err).WithField("orderId", req.OrderID).Error("Failed to create return request")
		return models.ReturnRequest{}, err
	}
	return created, d.Refresh(ctx)
}

// Update applies patch to the record with the given id and re-fetches.
func (d *Dashboard) Update(ctx context.Context, id string, patch models.ReturnPatch) (models.ReturnRequest, error) {
	if err := patch.Validate(); err != nil {
		return models.ReturnRequest{}, err
	}
	updated, err := d.api.Update(ctx, id, patch)
	if err != nil {
		d.log.WithError(err).WithField("id", id).Error("Failed to update return request")
		return models.ReturnRequest{}, err
	}
	return updated, d.Refresh(ctx)
}

// SetStatus moves a record to status. Any status may follow any other.
func (d *Dashboard) SetStatus(ctx context.Context, id string, status models.Status) (models.ReturnRequest, error) {
	return d.Update(ctx, id, models.StatusPatch(status))
}

func (d *Dashboard) Delete(ctx context.Context, id string) error {
	if err := d.api.Delete(ctx, id); err != nil {
		d.log.WithError(err).WithField("id", id).Error("Failed to delete return request")
		return err
	}
	return d.Refresh(ctx)
}

// View renders the current page of the filtered collection. Stats always
// cover the whole collection.
func (d *Dashboard) View() View {
	return View{
		Search:   d.state.Search,
		Page:     Paginate(d.filtered(), d.state.Page, d.state.PageSize),
		Stats:    ComputeStats(d.records),
		Statuses: models.Statuses,
	}
}
