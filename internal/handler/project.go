package handler

import (
	"time"

	"github.com/Zaker237/projectboard/internal/model"
	"github.com/Zaker237/projectboard/internal/service"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	memberService  *service.ProjectMemberService
	cardService    *service.CardService
}

func NewProjectHandler(
	projectService *service.ProjectService,
	memberService *service.ProjectMemberService,
	cardService *service.CardService,
) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		memberService:  memberService,
		cardService:    cardService,
	}
}

// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, projects)
}

// GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.GetByID(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, project)
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		OwnerID     uint      `json:"owner_id" binding:"required"`
		Name        string    `json:"name" binding:"required,max=128"`
		Description string    `json:"description" binding:"max=5000"`
		StartAt     time.Time `json:"start_at" binding:"required"`
		EndsAt      time.Time `json:"ends_at" binding:"required"`
		Public      bool      `json:"public"`
		Closed      bool      `json:"closed"`
		GithubLink  string    `json:"githublink" binding:"max=512"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	project, err := h.projectService.Create(&model.Project{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		StartAt:     req.StartAt,
		EndsAt:      req.EndsAt,
		Public:      req.Public,
		Closed:      req.Closed,
		GithubLink:  req.GithubLink,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, project)
}

// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req struct {
		Name        *string    `json:"name"`
		Description *string    `json:"description"`
		StartAt     *time.Time `json:"start_at"`
		EndsAt      *time.Time `json:"ends_at"`
		Public      *bool      `json:"public"`
		Closed      *bool      `json:"closed"`
		GithubLink  *string    `json:"githublink"`
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
	if req.StartAt != nil {
		updates["start_at"] = *req.StartAt
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}
	if req.Public != nil {
		updates["public"] = *req.Public
	}
	if req.Closed != nil {
		updates["closed"] = *req.Closed
	}
	if req.GithubLink != nil {
		updates["github_link"] = *req.GithubLink
	}

	project, err := h.projectService.Update(parseID(c.Param("id")), updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, project)
}

// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(parseID(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "project deleted"})
}

// GET /projects/:id/cards
func (h *ProjectHandler) ListCards(c *gin.Context) {
	cards, err := h.cardService.ListByProject(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, cards)
}

// GET /projects/:id/members
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]gin.H, 0, len(members))
	for _, m := range members {
		item := gin.H{
			"user_id":   m.UserID,
			"admin":     m.Admin,
			"joined_at": m.CreatedAt,
		}
		if m.User != nil {
			item["username"] = m.User.Username
			item["firstname"] = m.User.Firstname
			item["lastname"] = m.User.Lastname
		}
		list = append(list, item)
	}
	Success(c, list)
}

// POST /projects/:id/members
func (h *ProjectHandler) AddMember(c *gin.Context) {
	var req struct {
		UserID uint `json:"user_id" binding:"required"`
		Admin  bool `json:"admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	projectID := parseID(c.Param("id"))
	if err := h.memberService.AddMember(projectID, req.UserID, req.Admin); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"project_id": projectID, "user_id": req.UserID, "admin": req.Admin})
}

// PUT /projects/:id/members/:user_id
func (h *ProjectHandler) UpdateMember(c *gin.Context) {
	var req struct {
		Admin *bool `json:"admin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	projectID := parseID(c.Param("id"))
	userID := parseID(c.Param("user_id"))
	if err := h.memberService.UpdateMember(projectID, userID, *req.Admin); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"project_id": projectID, "user_id": userID, "admin": *req.Admin})
}

// DELETE /projects/:id/members/:user_id
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	projectID := parseID(c.Param("id"))
	userID := parseID(c.Param("user_id"))
	if err := h.memberService.RemoveMember(projectID, userID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "member removed"})
}
