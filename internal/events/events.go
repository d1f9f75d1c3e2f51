package events

// Event is one board change, delivered over SSE.
type Event struct {
	ID   int64       `json:"id"`
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const (
	TypeStepAttached  = "step_attached"
	TypeStepDetached  = "step_detached"
	TypeStepMoved     = "step_moved"
	TypeCardCreated   = "card_created"
	TypeCardUpdated   = "card_updated"
	TypeCardDeleted   = "card_deleted"
	TypeMemberAdded   = "member_added"
	TypeMemberRemoved = "member_removed"
)

type StepPayload struct {
	ProjectID uint `json:"project_id"`
	StepID    uint `json:"step_id"`
	Position  int  `json:"position"`
}

type StepMovedPayload struct {
	ProjectID uint `json:"project_id"`
	StepID    uint `json:"step_id"`
	From      int  `json:"from"`
	To        int  `json:"to"`
}

type CardPayload struct {
	ProjectID uint   `json:"project_id"`
	StepID    uint   `json:"step_id"`
	CardID    uint   `json:"card_id"`
	Title     string `json:"title"`
}

type MemberPayload struct {
	ProjectID uint `json:"project_id"`
	UserID    uint `json:"user_id"`
	Admin     bool `json:"admin"`
}
