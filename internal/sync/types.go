package sync

// Action tells the worker what to do with the goal's calendar event.
type Action string

const (
	ActionUpsert Action = "upsert"
	ActionDelete Action = "delete"
	ActionResync Action = "resync"
)

// Message is the payload published to the goal.sync queue.
type Message struct {
	Action Action `json:"action"`
	GoalID string `json:"goal_id,omitempty"`
	UserID string `json:"user_id"`
}

// Valid reports whether the action is one the worker knows.
func (a Action) Valid() bool {
	switch a {
	case ActionUpsert, ActionDelete, ActionResync:
		return true
	}
	return false
}
