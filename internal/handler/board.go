package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Zaker237/projectboard/internal/events"
	"github.com/Zaker237/projectboard/internal/service"
	"github.com/gin-gonic/gin"
)

// BoardHandler serves the ordered step list of a project and the attach,
// detach and move operations that rearrange it, plus the SSE stream of board
// changes.
type BoardHandler struct {
	projectStepService *service.ProjectStepService
	cardService        *service.CardService
	hub                *events.Hub
}

func NewBoardHandler(
	projectStepService *service.ProjectStepService,
	cardService *service.CardService,
	hub *events.Hub,
) *BoardHandler {
	return &BoardHandler{
		projectStepService: projectStepService,
		cardService:        cardService,
		hub:                hub,
	}
}

// GET /projects/:id/steps
func (h *BoardHandler) ListSteps(c *gin.Context) {
	projectID := parseID(c.Param("id"))
	rows, err := h.projectStepService.ListRows(projectID)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		item := gin.H{
			"step_id":  row.StepID,
			"position": row.Position,
		}
		if row.Step != nil {
			item["name"] = row.Step.Name
			item["description"] = row.Step.Description
			item["created_by"] = row.Step.CreatedByID
		}
		list = append(list, item)
	}
	Success(c, list)
}

// POST /projects/:id/steps
func (h *BoardHandler) AddStep(c *gin.Context) {
	var req struct {
		StepID uint `json:"step_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	projectID := parseID(c.Param("id"))
	if err := h.projectStepService.AddStep(projectID, req.StepID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"project_id": projectID, "step_id": req.StepID})
}

// DELETE /projects/:id/steps/:step_id
func (h *BoardHandler) RemoveStep(c *gin.Context) {
	projectID := parseID(c.Param("id"))
	stepID := parseID(c.Param("step_id"))
	if err := h.projectStepService.RemoveStep(projectID, stepID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"message": "step removed from project"})
}

// PUT /projects/:id/steps/:step_id/position
func (h *BoardHandler) MoveStep(c *gin.Context) {
	var req struct {
		Position int `json:"position" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	projectID := parseID(c.Param("id"))
	stepID := parseID(c.Param("step_id"))
	if err := h.projectStepService.MoveStep(projectID, stepID, req.Position); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"project_id": projectID, "step_id": stepID, "position": req.Position})
}

// GET /projects/:id/steps/:step_id/cards
func (h *BoardHandler) ListStepCards(c *gin.Context) {
	cards, err := h.cardService.ListByProjectStep(parseID(c.Param("id")), parseID(c.Param("step_id")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, cards)
}

// GET /projects/:id/events
func (h *BoardHandler) Stream(c *gin.Context) {
	projectID := parseID(c.Param("id"))

	// Reject unknown projects before committing to the event stream.
	if _, err := h.projectStepService.ListRows(projectID); err != nil {
		Fail(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		InternalError(c, "streaming not supported")
		return
	}

	lastEventID := events.ParseLastEventID(c.GetHeader("Last-Event-ID"))

	// Replay history
	history, _ := h.hub.ReplayFrom(projectID, lastEventID)
	for _, ev := range history {
		data, _ := json.Marshal(ev.Data)
		fmt.Fprintf(c.Writer, "id: %d\nevent: %s\ndata: %s\n\n", ev.ID, ev.Type, string(data))
	}
	flusher.Flush()

	// Subscribe for live events
	ch, unsub := h.hub.Subscribe(projectID)
	defer unsub()

	ctx := c.Request.Context()
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Fprint(c.Writer, ": heartbeat\n\n")
			flusher.Flush()
		case ev, open := <-ch:
			if !open {
				return
			}
			data, _ := json.Marshal(ev.Data)
			fmt.Fprintf(c.Writer, "id: %d\nevent: %s\ndata: %s\n\n", ev.ID, ev.Type, string(data))
			flusher.Flush()
		}
	}
}
