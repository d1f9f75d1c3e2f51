package handler

import (
	"github.com/Zaker237/projectboard/internal/model"
	"github.com/Zaker237/projectboard/internal/service"
	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardService    *service.CardService
	commentService *service.CommentService
}

func NewCardHandler(cardService *service.CardService, commentService *service.CommentService) *CardHandler {
	return &CardHandler{cardService: cardService, commentService: commentService}
}

// GET /cards
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.cardService.List()
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, cards)
}

// GET /cards/:id
func (h *CardHandler) Get(c *gin.Context) {
	card, err := h.cardService.GetByID(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, card)
}

// POST /cards
func (h *CardHandler) Create(c *gin.Context) {
	var req struct {
		CreatedBy   uint   `json:"created_by" binding:"required"`
		AssignTo    uint   `json:"assign_to" binding:"required"`
		ProjectID   uint   `json:"project_id" binding:"required"`
		StepID      uint   `json:"step_id" binding:"required"`
		Title       string `json:"title" binding:"required,max=256"`
		Description string `json:"description" binding:"max=5000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	card, err := h.cardService.Create(&model.Card{
		CreatedByID: req.CreatedBy,
		AssignToID:  req.AssignTo,
		ProjectID:   req.ProjectID,
		StepID:      req.StepID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, card)
}

// PUT /cards/:id
func (h *CardHandler) Update(c *gin.Context) {
	var req struct {
		AssignTo    *uint   `json:"assign_to"`
		StepID      *uint   `json:"step_id"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.AssignTo != nil {
		updates["assign_to_id"] = *req.AssignTo
	}
	if req.StepID != nil {
		updates["step_id"] = *req.StepID
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	card, err := h.cardService.Update(parseID(c.Param("id")), updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, card)
}

// DELETE /cards/:id
func (h *CardHandler) Delete(c *gin.Context) {
	if err := h.cardService.Delete(parseID(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "card deleted"})
}

// GET /cards/:id/comments
func (h *CardHandler) ListComments(c *gin.Context) {
	comments, err := h.commentService.ListByCard(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, comments)
}
