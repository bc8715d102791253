// internal/api/handlers/report_handler.go
package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pallet-returns-dashboard/internal/models"
	"pallet-returns-dashboard/internal/reports"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReturnLister is the read side of the store used for reports.
type ReturnLister interface {
	FindAll(ctx context.Context) ([]models.ReturnRequest, error)
}

// ReportUploader stores an exported report and returns its public URL.
type ReportUploader interface {
	UploadFile(ctx context.Context, file io.Reader, objectKey, contentType string) (string, error)
}

type ReportHandler struct {
	Store    ReturnLister
	Uploader ReportUploader // nil khi chưa cấu hình S3
	Log      logrus.FieldLogger
	Now      func() time.Time
}

func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/returns.csv", h.DownloadCSV)
	rg.GET("/returns.xlsx", h.DownloadXLSX)
	rg.POST("/returns/export", h.ExportToS3)
}

func (h *ReportHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// render builds the report fully in memory so a failure never leaves a
// half-written download behind.
func (h *ReportHandler) render(c *gin.Context, format string) (*bytes.Buffer, bool) {
	records, err := h.Store.FindAll(c.Request.Context())
	if err != nil {
		h.Log.WithError(err).Error("Failed to fetch returns for report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch returns"})
		return nil, false
	}

	var buf bytes.Buffer
	if format == "xlsx" {
		err = reports.WriteXLSX(&buf, records)
	} else {
		err = reports.WriteCSV(&buf, records)
	}
	if err != nil {
		h.Log.WithError(err).WithField("format", format).Error("Failed to render report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return nil, false
	}
	return &buf, true
}

// DownloadCSV trả về toàn bộ danh sách dưới dạng file CSV.
func (h *ReportHandler) DownloadCSV(c *gin.Context) {
	h.download(c, "csv", csvContentType)
}

// DownloadXLSX trả về toàn bộ danh sách dưới dạng file Excel.
func (h *ReportHandler) DownloadXLSX(c *gin.Context) {
	h.download(c, "xlsx", xlsxContentType)
}

func (h *ReportHandler) download(c *gin.Context, format, contentType string) {
	buf, ok := h.render(c, format)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="returns.`+format+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// ExportToS3 tạo file báo cáo và tải lên S3. ?format=xlsx cho file Excel.
func (h *ReportHandler) ExportToS3(c *gin.Context) {
	if h.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Report storage is not configured"})
		return
	}

	format, contentType := "csv", csvContentType
	if c.Query("format") == "xlsx" {
		format, contentType = "xlsx", xlsxContentType
	}

	buf, ok := h.render(c, format)
	if !ok {
		return
	}

	key := reports.ObjectKey(h.now(), format)
	url, err := h.Uploader.UploadFile(c.Request.Context(), buf, key, contentType)
	if err != nil {
		h.Log.WithError(err).WithField("key", key).Error("Failed to upload report")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload report"})
		return
	}

	h.Log.WithField("key", key).Info("Report exported")
	c.JSON(http.StatusCreated, gin.H{"url": url, "key": key})
}
