package handler

import (
	"github.com/Zaker237/projectboard/internal/model"
	"github.com/Zaker237/projectboard/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService    *service.UserService
	projectService *service.ProjectService
	stepService    *service.StepService
	cardService    *service.CardService
	commentService *service.CommentService
}

func NewUserHandler(
	userService *service.UserService,
	projectService *service.ProjectService,
	stepService *service.StepService,
	cardService *service.CardService,
	commentService *service.CommentService,
) *UserHandler {
	return &UserHandler{
		userService:    userService,
		projectService: projectService,
		stepService:    stepService,
		cardService:    cardService,
		commentService: commentService,
	}
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		Fail(c, err)
		return
	}
	list := make([]model.UserBrief, 0, len(users))
	for i := range users {
		list = append(list, users[i].Brief())
	}
	Success(c, list)
}

// GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetByID(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}

// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		Username  string `json:"username" binding:"required,max=64"`
		Firstname string `json:"firstname" binding:"max=64"`
		Lastname  string `json:"lastname" binding:"max=64"`
		Email     string `json:"email" binding:"required,email"`
		GoogleID  string `json:"google_id" binding:"required"`
		Admin     bool   `json:"admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	user, err := h.userService.Create(&model.User{
		Username:  req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		GoogleID:  req.GoogleID,
		Admin:     req.Admin,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}

// PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req struct {
		Username  *string `json:"username"`
		Firstname *string `json:"firstname"`
		Lastname  *string `json:"lastname"`
		Email     *string `json:"email"`
		Admin     *bool   `json:"admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Firstname != nil {
		updates["firstname"] = *req.Firstname
	}
	if req.Lastname != nil {
		updates["lastname"] = *req.Lastname
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Admin != nil {
		updates["admin"] = *req.Admin
	}

	user, err := h.userService.Update(parseID(c.Param("id")), updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}

// DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.Delete(parseID(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "user deleted"})
}

// GET /users/:id/projects
func (h *UserHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListByOwner(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, projects)
}

// GET /users/:id/steps
func (h *UserHandler) ListSteps(c *gin.Context) {
	steps, err := h.stepService.ListByCreator(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, steps)
}

// GET /users/:id/cards
func (h *UserHandler) ListCards(c *gin.Context) {
	cards, err := h.cardService.ListByCreator(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, cards)
}

// GET /users/:id/comments
func (h *UserHandler) ListComments(c *gin.Context) {
	comments, err := h.commentService.ListByCreator(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, comments)
}
