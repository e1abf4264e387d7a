// README: Conversation turn model; append-only per session.
package chat

import (
	"errors"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrNoContent rejects a submission carrying neither text nor an image. It is
// raised before any turn is appended or any provider call is made.
var ErrNoContent = errors.New("no message or image provided")

// Turn is one exchange unit. Content may be empty when an image carried the
// meaning of the turn. Image bytes are never stored in the log; HasImage only
// records that the user attached one. Turns are immutable once appended and
// ordering is strictly append order.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	HasImage  bool      `json:"has_image,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}
