package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/models"
	"simplecrm/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

func getPagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return
}

// @Summary      Create a lead
// @Description  Organizer-only; the lead's organization is taken from the token
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        lead  body      models.LeadRequest  true  "Lead data"
// @Success      201   {object}  models.Lead
// @Failure      403   {object}  map[string]string
// @Router       /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var req models.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
		return
	}
	lead, err := h.Service.Create(actor, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// List — основной список: назначенные лиды в зоне видимости актора.
func (h *LeadHandler) List(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
		return
	}
	limit, offset := getPagination(c)
	leads, err := h.Service.List(actor, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

// ListUnassigned — лиды без агента; только для организатора.
func (h *LeadHandler) ListUnassigned(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
		return
	}
	limit, offset := getPagination(c)
	leads, err := h.Service.ListUnassigned(actor, limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
		return
	}
	lead, err := h.Service.GetByID(actor, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req models.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
		return
	}
	lead, err := h.Service.Update(actor, id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
		return
	}
	if err := h.Service.Delete(actor, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Assign an agent to a lead
// @Description  Organizer-only; the agent must belong to the organizer's organization
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        id      path      int                        true  "Lead ID"
// @Param        assign  body      models.AssignAgentRequest  true  "Agent to assign"
// @Success      200     {object}  models.Lead
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /leads/{id}/assign [post]
func (h *LeadHandler) Assign(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req models.AssignAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
		return
	}
	lead, err := h.Service.AssignAgent(actor, id, req.AgentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// AssignableAgents — кандидаты для формы назначения (агенты организации).
func (h *LeadHandler) AssignableAgents(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
		return
	}
	agents, err := h.Service.AssignableAgents(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

// UpdateCategory доступен организатору и агенту в пределах видимости.
// Успех возвращает сам лид (аналог редиректа на detail).
func (h *LeadHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req models.UpdateLeadCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor, ok := getActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
		return
	}
	lead, err := h.Service.UpdateCategory(actor, id, req.CategoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}
