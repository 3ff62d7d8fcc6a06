package response

import "github.com/nikrus/rpsduel-go/internal/model"

// RegisterResponse reports a registration result
type RegisterResponse struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Created     bool   `json:"created"`
}

// VoteResponse reports a vote submission result
type VoteResponse struct {
	Status string `json:"status"`
	GameID string `json:"game_id,omitempty"`
}

// VoteResponseFromOutcome converts a vote outcome to its wire form
func VoteResponseFromOutcome(outcome *model.VoteOutcome) VoteResponse {
	return VoteResponse{
		Status: string(outcome.Status),
		GameID: string(outcome.GameID),
	}
}

// ChoiceResponse acknowledges a recorded pending choice
type ChoiceResponse struct {
	Status string `json:"status"`
}

// SettlementResponse reports a settlement attempt
type SettlementResponse struct {
	Status            string `json:"status"`
	GameID            string `json:"game_id,omitempty"`
	Round             int    `json:"round,omitempty"`
	Winner            string `json:"winner,omitempty"`
	NotificationsSent int    `json:"notifications_sent"`
}

// SettlementResponseFromModel converts a settlement to its wire form
func SettlementResponseFromModel(s *model.Settlement) SettlementResponse {
	return SettlementResponse{
		Status:            string(s.Status),
		GameID:            string(s.GameID),
		Round:             s.Round,
		Winner:            s.Winner,
		NotificationsSent: len(s.Notifications),
	}
}

// ManualStartResponse reports an opened manual round
type ManualStartResponse struct {
	Round int    `json:"round"`
	State string `json:"state"`
}

// ManualMoveResponse reports a recorded manual move. Settlement is present
// only once the second side's move completes the round.
type ManualMoveResponse struct {
	State      string              `json:"state"`
	Settlement *SettlementResponse `json:"settlement,omitempty"`
}
