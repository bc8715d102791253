// internal/api/handlers/return_handler.go
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"pallet-returns-dashboard/internal/metrics"
	"pallet-returns-dashboard/internal/models"
	"pallet-returns-dashboard/internal/socket"
	"pallet-returns-dashboard/internal/store"
)

//go:generate mockgen -source=return_handler.go -destination=mocks/mock.go

// ReturnStore is what the handler needs from the persistence layer.
type ReturnStore interface {
	Insert(ctx context.Context, r *models.ReturnRequest) error
	FindAll(ctx context.Context) ([]models.ReturnRequest, error)
	FindByIdentifier(ctx context.Context, id string) (models.ReturnRequest, error)
	UpdateFields(ctx context.Context, id string, patch models.ReturnPatch) (models.ReturnRequest, error)
	Delete(ctx context.Context, id string) error
}

// Broadcaster pushes change events to open dashboards.
type Broadcaster interface {
	Broadcast(ev socket.Event)
}

type ReturnHandler struct {
	Store ReturnStore
	Hub   Broadcaster
	Log   logrus.FieldLogger
}

func NewReturnHandler(st ReturnStore, hub Broadcaster, log logrus.FieldLogger) *ReturnHandler {
	return &ReturnHandler{Store: st, Hub: hub, Log: log}
}

// RegisterRoutes gắn các route /returns vào group rg.
func (h *ReturnHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetAllReturns)
	rg.POST("", h.CreateReturn)
	rg.GET("/:id", h.GetReturnByID)
	rg.PUT("/:id", h.UpdateReturn)
	rg.DELETE("/:id", h.DeleteReturn)
}

// GetAllReturns lấy danh sách tất cả các yêu cầu trả pallet
func (h *ReturnHandler) GetAllReturns(c *gin.Context) {
	returns, err := h.Store.FindAll(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err, "Failed to fetch returns")
		return
	}
	c.JSON(http.StatusOK, returns)
}

// CreateReturn tạo một yêu cầu trả pallet mới
func (h *ReturnHandler) CreateReturn(c *gin.Context) {
	var req models.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(c, "create", err, "Failed to create return")
		return
	}

	record := req.ToModel()
	if err := h.Store.Insert(c.Request.Context(), &record); err != nil {
		h.fail(c, "create", err, "Failed to create return")
		return
	}

	metrics.ReturnsCreatedTotal.Inc()
	h.broadcast("created", record.ID.String())
	c.JSON(http.StatusCreated, record)
}

// GetReturnByID tìm theo _id, nếu không có thì theo orderId
func (h *ReturnHandler) GetReturnByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	record, err := h.Store.FindByIdentifier(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", err, "Failed to fetch return")
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateReturn cập nhật một phần các trường của yêu cầu trả pallet.
// Chỉ status, customerName, returnDate, palletCount và remarks được ghi.
func (h *ReturnHandler) UpdateReturn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch models.ReturnPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := patch.Validate(); err != nil {
		h.fail(c, "update", err, "Failed to update return")
		return
	}

	updated, err := h.Store.UpdateFields(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, "update", err, "Failed to update return")
		return
	}

	metrics.ReturnsUpdatedTotal.WithLabelValues(updated.Status.String()).Inc()
	h.broadcast("updated", updated.ID.String())
	c.JSON(http.StatusOK, gin.H{"success": true, "updated": updated})
}

// DeleteReturn xóa đúng một bản ghi khớp _id hoặc orderId.
func (h *ReturnHandler) DeleteReturn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Store.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err, "Failed to delete return")
		return
	}

	metrics.ReturnsDeletedTotal.Inc()
	h.broadcast("deleted", id)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Return deleted"})
}

func pathID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id in URL"})
		return "", false
	}
	return id, true
}

// fail maps store and validation errors to a status code. Unexpected errors
// are logged and answered with the generic message only.
func (h *ReturnHandler) fail(c *gin.Context, op string, err error, generic string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Return not found"})
	case errors.Is(err, store.ErrDuplicateOrderID):
		c.JSON(http.StatusConflict, gin.H{"error": "Return with this orderId already exists"})
	case errors.Is(err, store.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": "Return with this _id already exists"})
	default:
		metrics.OperationErrorsTotal.WithLabelValues(op).Inc()
		h.Log.WithError(err).WithField("operation", op).Error(generic)
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}

func (h *ReturnHandler) broadcast(action, id string) {
	if h.Hub != nil {
		h.Hub.Broadcast(socket.ReturnsChanged(action, id))
	}
}
