package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pallet-returns-dashboard/internal/models"
)

type recordingUploader struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (u *recordingUploader) UploadFile(_ context.Context, file io.Reader, key, contentType string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.key, u.contentType = key, contentType
	u.body, _ = io.ReadAll(file)
	return "https://cdn.example.com/" + key, nil
}

func setupReportRouter(t *testing.T, uploader ReportUploader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, _ := logtest.NewNullLogger()

	st := &memStore{}
	for _, r := range []models.ReturnRequest{sampleReturn(), {OrderID: "ORD124", CustomerName: "XYZ Ltd.", PalletCount: 2, Status: models.StatusCompleted}} {
		r := r
		require.NoError(t, st.Insert(context.Background(), &r))
	}

	h := &ReportHandler{
		Store:    st,
		Uploader: uploader,
		Log:      log,
		Now:      func() time.Time { return time.Date(2025, 10, 1, 8, 30, 0, 0, time.UTC) },
	}
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/reports"))
	return r
}

func TestReportHandler_CSV(t *testing.T) {
	r := setupReportRouter(t, nil)

	w := doJSON(r, http.MethodGet, "/api/reports/returns.csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "returns.csv")

	rows, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Order ID", rows[0][1])
	assert.Equal(t, "ORD123", rows[1][1])
	assert.Equal(t, "2025-10-01", rows[1][3])
	assert.Equal(t, "Completed", rows[2][5])
}

func TestReportHandler_XLSX(t *testing.T) {
	r := setupReportRouter(t, nil)

	w := doJSON(r, http.MethodGet, "/api/reports/returns.xlsx", "")
	require.Equal(t, http.StatusOK, w.Code)

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Returns")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "XYZ Ltd.", rows[2][2])
}

func TestReportHandler_Export(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		r := setupReportRouter(t, nil)
		w := doJSON(r, http.MethodPost, "/api/reports/returns/export", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("uploads csv", func(t *testing.T) {
		up := &recordingUploader{}
		r := setupReportRouter(t, up)

		w := doJSON(r, http.MethodPost, "/api/reports/returns/export", "")
		require.Equal(t, http.StatusCreated, w.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "reports/returns-20251001-083000.csv", got["key"])
		assert.Equal(t, "https://cdn.example.com/reports/returns-20251001-083000.csv", got["url"])
		assert.Equal(t, "text/csv; charset=utf-8", up.contentType)
		assert.Contains(t, string(up.body), "ABC Company")
	})

	t.Run("uploads xlsx", func(t *testing.T) {
		up := &recordingUploader{}
		r := setupReportRouter(t, up)

		w := doJSON(r, http.MethodPost, "/api/reports/returns/export?format=xlsx", "")
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "reports/returns-20251001-083000.xlsx", up.key)
	})

	t.Run("upload failure", func(t *testing.T) {
		r := setupReportRouter(t, &recordingUploader{err: errors.New("access denied")})

		w := doJSON(r, http.MethodPost, "/api/reports/returns/export", "")
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"error":"Failed to upload report"}`, w.Body.String())
	})
}
