package handler

import (
	"github.com/Zaker237/projectboard/internal/model"
	"github.com/Zaker237/projectboard/internal/service"
	"github.com/gin-gonic/gin"
)

type StepHandler struct {
	stepService *service.StepService
}

func NewStepHandler(stepService *service.StepService) *StepHandler {
	return &StepHandler{stepService: stepService}
}

// GET /steps
func (h *StepHandler) List(c *gin.Context) {
	steps, err := h.stepService.List()
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, steps)
}

// GET /steps/:id
func (h *StepHandler) Get(c *gin.Context) {
	step, err := h.stepService.GetByID(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, step)
}

// POST /steps
func (h *StepHandler) Create(c *gin.Context) {
	var req struct {
		CreatedBy   uint   `json:"created_by" binding:"required"`
		Name        string `json:"name" binding:"required,max=128"`
		Description string `json:"description" binding:"max=5000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	step, err := h.stepService.Create(&model.Step{
		CreatedByID: req.CreatedBy,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, step)
}

// PUT /steps/:id
func (h *StepHandler) Update(c *gin.Context) {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	step, err := h.stepService.Update(parseID(c.Param("id")), updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, step)
}

// DELETE /steps/:id
func (h *StepHandler) Delete(c *gin.Context) {
	if err := h.stepService.Delete(parseID(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "step deleted"})
}
