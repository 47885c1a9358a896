package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// @Summary      Organization summary
// @Tags         Reports
// @Produce      json
// @Success      200  {object}  models.OrgSummary
// @Router       /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
		return
	}
	summary, err := h.Service.Summary(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) ExportLeads(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
		return
	}
	data, err := h.Service.ExportLeadsPDF(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="leads.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
