package contract

// Inbound events, one explicit variant per kind. The transport decodes its
// wire frames into these before anything reaches the room service; each
// variant carries only the fields its handler needs.

const (
	ActionSendMessage       = "sendMessage"
	ActionGetRecentMessages = "getRecentMessages"
	ActionPing              = "ping"
)

type ConnectRequest struct {
	ConnectionID string
}

type DisconnectRequest struct {
	ConnectionID string
}

type PostMessageRequest struct {
	Username string `json:"username" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

type FetchRecentRequest struct {
	ConnectionID string
}

type PingRequest struct {
	ConnectionID string
}

type UnrecognizedRequest struct {
	Action string
}

// Response is the acknowledgment returned to the requester. Status follows
// HTTP conventions (200 / 400 / 500).
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// MessagePayload is one entry of the outbound push frame.
type MessagePayload struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// PushPayload is the frame delivered to connections, both for broadcast of
// a new message and for recent-history replies.
type PushPayload struct {
	Messages []MessagePayload `json:"messages"`
}
