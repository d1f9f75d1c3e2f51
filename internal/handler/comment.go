package handler

import (
	"github.com/Zaker237/projectboard/internal/model"
	"github.com/Zaker237/projectboard/internal/service"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// GET /comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentService.List()
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, comments)
}

// GET /comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
	comment, err := h.commentService.GetByID(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, comment)
}

// POST /comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req struct {
		CreatedBy uint   `json:"created_by" binding:"required"`
		CardID    uint   `json:"card_id" binding:"required"`
		Text      string `json:"text" binding:"required,max=5000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	comment, err := h.commentService.Create(&model.Comment{
		CreatedByID: req.CreatedBy,
		CardID:      req.CardID,
		Text:        req.Text,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, comment)
}

// PUT /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required,max=5000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	comment, err := h.commentService.Update(parseID(c.Param("id")), map[string]interface{}{
		"text": req.Text,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, comment)
}

// DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentService.Delete(parseID(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "comment deleted"})
}
