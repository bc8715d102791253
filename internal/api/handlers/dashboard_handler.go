// internal/api/handlers/dashboard_handler.go
package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"pallet-returns-dashboard/internal/dashboard"
	"pallet-returns-dashboard/internal/models"
)

// DashboardHandler renders the HTML dashboard. It talks to the record service
// through the REST API, like any other client would.
type DashboardHandler struct {
	API      dashboard.API
	PageSize int
	Log      logrus.FieldLogger
}

func (h *DashboardHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.POST("/dashboard/returns", h.Create)
	r.POST("/dashboard/returns/:id", h.Update)
	r.POST("/dashboard/returns/:id/status", h.SetStatus)
	r.POST("/dashboard/returns/:id/delete", h.Delete)
}

func (h *DashboardHandler) board() *dashboard.Dashboard {
	return dashboard.New(h.API, h.PageSize, h.Log)
}

// Index hiển thị trang dashboard. Query: q (tìm kiếm), page, error.
func (h *DashboardHandler) Index(c *gin.Context) {
	d := h.board()
	data := dashboard.PageData{Error: c.Query("error")}
	status := http.StatusOK

	if err := d.Refresh(c.Request.Context()); err != nil {
		data.Error = "Failed to fetch returns"
		status = http.StatusBadGateway
	}
	d.Search(c.Query("q"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	d.GoToPage(page)

	data.View = d.View()
	c.HTML(status, "dashboard.html", data)
}

func (h *DashboardHandler) Create(c *gin.Context) {
	var form dashboard.Form
	if err := c.ShouldBind(&form); err != nil {
		h.redirect(c, "Invalid form")
		return
	}
	if _, err := h.board().Create(c.Request.Context(), form); err != nil {
		h.redirect(c, message(err))
		return
	}
	h.redirect(c, "")
}

func (h *DashboardHandler) Update(c *gin.Context) {
	var form dashboard.EditForm
	if err := c.ShouldBind(&form); err != nil {
		h.redirect(c, "Invalid form")
		return
	}
	patch, err := form.ToPatch()
	if err != nil {
		h.redirect(c, message(err))
		return
	}
	if _, err := h.board().Update(c.Request.Context(), c.Param("id"), patch); err != nil {
		h.redirect(c, message(err))
		return
	}
	h.redirect(c, "")
}

func (h *DashboardHandler) SetStatus(c *gin.Context) {
	status, err := models.ParseStatus(c.PostForm("status"))
	if err != nil {
		h.redirect(c, message(err))
		return
	}
	if _, err := h.board().SetStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		h.redirect(c, message(err))
		return
	}
	h.redirect(c, "")
}

func (h *DashboardHandler) Delete(c *gin.Context) {
	if err := h.board().Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.redirect(c, message(err))
		return
	}
	h.redirect(c, "")
}

// redirect sends the browser back to the list after a form post, keeping the
// search term and page the form was posted from. Index clamps the page.
func (h *DashboardHandler) redirect(c *gin.Context, errMsg string) {
	page, _ := strconv.Atoi(c.PostForm("page"))
	target := dashboard.PageURL(c.PostForm("q"), page)
	if errMsg != "" {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + url.Values{"error": {errMsg}}.Encode()
	}
	c.Redirect(http.StatusSeeOther, target)
}

// message is the text shown to the user for a failed action.
func message(err error) string {
	var verr *models.ValidationError
	var apiErr *dashboard.APIError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.As(err, &apiErr):
		return apiErr.Message
	default:
		return "Something went wrong, please try again"
	}
}
