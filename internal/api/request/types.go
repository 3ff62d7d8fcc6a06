package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	ChatID      string `json:"chat_id"`
}

// VoteRequest is the request body for casting a daily mode vote.
// Date defaults to the server's current date when omitted.
type VoteRequest struct {
	PlayerID string `json:"player_id"`
	Date     string `json:"date,omitempty"`
	Mode     string `json:"mode"`
}

// ChoiceRequest is the request body for submitting a hidden auto-mode move
type ChoiceRequest struct {
	PlayerID string `json:"player_id"`
	Move     string `json:"move"`
}

// SettleRequest is the request body for the daily settlement trigger.
// Date defaults to the server's current date when omitted.
type SettleRequest struct {
	Date string `json:"date,omitempty"`
}

// ManualStartRequest is the request body for opening a manual round.
// Date defaults to the server's current date when omitted.
type ManualStartRequest struct {
	Date string `json:"date,omitempty"`
}

// ManualMoveRequest is the request body for recording a manual-mode move
type ManualMoveRequest struct {
	Move string `json:"move"`
}
