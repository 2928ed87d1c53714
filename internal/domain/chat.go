package domain

import "time"

// Sender identifies the author of a transcript turn.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Chart type selectors consulted at render time.
const (
	ChartBar = "bar"
	ChartPie = "pie"
)

// Turn represents one message in a chat transcript
type Turn struct {
	ID        string        `json:"id"`
	Sender    string        `json:"sender"` // user, bot
	Text      string        `json:"text"`
	Chart     *ChartPayload `json:"chart,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// ChartPayload is the structural description of a chart attached to a bot turn
type ChartPayload struct {
	Type   string    `json:"type"` // bar, pie
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// ChatMessage is the outbound projection of a turn; chart payloads never
// travel back to the analysis service
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// ChatRequest is the request to send the transcript for analysis
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse is the response from the analysis service
type ChatResponse struct {
	Answer string        `json:"answer"`
	Chart  *ChartPayload `json:"chart,omitempty"`
}

// QueryLogEntry records one answered question for audit/debug
type QueryLogEntry struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	HadChart  bool      `json:"had_chart"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats represents system statistics
type Stats struct {
	TotalRecords int `json:"total_records"`
	TotalQueries int `json:"total_queries"`
}
