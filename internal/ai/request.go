// README: Provider-agnostic request value assembled fresh per call.
package ai

import "strings"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one prior turn projected to role and text. Image payloads are
// never replayed for history turns; only the current turn may carry one.
type Message struct {
	Role    string
	Content string
}

// Image is a raw image payload with its MIME type (e.g. "image/jpeg").
type Image struct {
	MIME string
	Data []byte
}

// Request carries everything a provider needs for one generation: the fixed
// system persona, the ordered dialogue history, and the current turn's text
// and optional image. The part set is closed: text and image, nothing else.
type Request struct {
	System  string
	History []Message
	Text    string
	Image   *Image
}

// imageMarker replaces the image for backends that cannot accept binary
// payloads; they only learn that a photo existed, not its content.
const imageMarker = "[The user attached a photo of their surroundings.]"

// flatten renders the whole request as one linear text block with role
// prefixes, the shape expected by the generative-content and
// text-generation-inference backends.
func (r Request) flatten(markImage bool) string {
	var b strings.Builder
	if r.System != "" {
		b.WriteString(r.System)
		b.WriteString("\n\n")
	}
	for _, m := range r.History {
		switch m.Role {
		case RoleAssistant:
			b.WriteString("Assistant: ")
		default:
			b.WriteString("User: ")
		}
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	if markImage && r.Image != nil {
		b.WriteString(imageMarker)
		if r.Text != "" {
			b.WriteString(" ")
		}
	}
	b.WriteString(r.Text)
	b.WriteString("\nAssistant:")
	return b.String()
}
