// Package bot is the connector-facing surface of the engine: it consumes
// inbound chat messages, runs renders on a bounded worker pool, handles the
// built-in admin commands, and produces replies for the connector to deliver.
// The chat-platform connector itself (gateway, authentication, delivery) is
// an external collaborator.
package bot

import (
	"github.com/atomicparade/did-you-just-say/render"
)

// Message is an inbound chat message addressed to the bot. The connector has
// already stripped the bot's own mention token from Content.
type Message struct {
	// SenderID identifies the message author for admin authorization
	SenderID string

	// Content is the message text: an optional command token plus free text
	Content string

	// Direct is true when the message arrived in a direct-message channel.
	// The auth command is only honored in direct messages.
	Direct bool
}

// Reply is the bot's response to a single Message. Exactly one of Image or
// Text is set.
type Reply struct {
	// To is the message this reply answers
	To Message

	// Image is the rendered result, nil for text-only replies
	Image *render.Rendered

	// Text is a user-facing message (errors, auth responses)
	Text string
}

// User-facing reply texts. The generic failure text matches the original
// bot's wording.
const (
	ReplyTextTooLarge   = "That text is too long to fit on this image. Try something shorter."
	ReplyNoSlot         = "No image is configured for that message."
	ReplyGenericFailure = "Sorry, something went wrong! Maybe try again?"
	ReplyAuthSuccess    = "Successfully authorized."
	ReplyAlreadyAuthed  = "You are already authorized."
	ReplyShuttingDown   = "Shutting down."
)
