package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RegisterResult:
		o.printRegisterResult(v)
	case VoteResult:
		o.printVoteResult(v)
	case ChoiceResult:
		o.printChoiceResult(v)
	case SettlementResult:
		o.printSettlementResult(v)
	case ManualStartResult:
		o.printManualStartResult(v)
	case ManualMoveResult:
		o.printManualMoveResult(v)
	case StatsResult:
		o.printStatsResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RegisterResult response type (matches API)
type RegisterResult struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Created     bool   `json:"created"`
}

// VoteResult response type
type VoteResult struct {
	Status string `json:"status"`
	GameID string `json:"game_id,omitempty"`
}

// ChoiceResult response type
type ChoiceResult struct {
	Status string `json:"status"`
}

// SettlementResult response type
type SettlementResult struct {
	Status            string `json:"status"`
	GameID            string `json:"game_id,omitempty"`
	Round             int    `json:"round,omitempty"`
	Winner            string `json:"winner,omitempty"`
	NotificationsSent int    `json:"notifications_sent"`
}

// ManualStartResult response type
type ManualStartResult struct {
	Round int    `json:"round"`
	State string `json:"state"`
}

// ManualMoveResult response type
type ManualMoveResult struct {
	State      string            `json:"state"`
	Settlement *SettlementResult `json:"settlement,omitempty"`
}

// StatsResult response type
type StatsResult struct {
	TotalGames    int            `json:"total_games"`
	FinishedGames int            `json:"finished_games"`
	PendingGames  int            `json:"pending_games"`
	TotalRounds   int            `json:"total_rounds"`
	WinsByPlayer  map[string]int `json:"wins_by_player"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRegisterResult(r RegisterResult) {
	action := "already registered"
	if r.Created {
		action = "registered"
	}
	fmt.Printf("Player %s (%s) %s\n", r.DisplayName, r.PlayerID, action)
}

func (o *Output) printVoteResult(v VoteResult) {
	fmt.Printf("Vote status: %s\n", v.Status)
	if v.GameID != "" {
		fmt.Printf("Game: %s\n", v.GameID)
	}
}

func (o *Output) printChoiceResult(c ChoiceResult) {
	fmt.Printf("Choice status: %s\n", c.Status)
}

func (o *Output) printSettlementResult(s SettlementResult) {
	fmt.Printf("Settlement: %s\n", s.Status)
	if s.GameID != "" {
		fmt.Printf("Game: %s\n", s.GameID)
	}
	if s.Round > 0 {
		fmt.Printf("Round: %d\n", s.Round)
	}
	if s.Winner != "" {
		fmt.Printf("Winner: %s\n", s.Winner)
	}
	fmt.Printf("Notifications sent: %d\n", s.NotificationsSent)
}

func (o *Output) printManualStartResult(m ManualStartResult) {
	fmt.Printf("Round %d started\n", m.Round)
	fmt.Printf("State: %s\n", m.State)
}

func (o *Output) printManualMoveResult(m ManualMoveResult) {
	fmt.Printf("State: %s\n", m.State)
	if m.Settlement != nil {
		o.printSettlementResult(*m.Settlement)
	}
}

func (o *Output) printStatsResult(s StatsResult) {
	fmt.Printf("Games: %d (%d finished, %d pending)\n", s.TotalGames, s.FinishedGames, s.PendingGames)
	fmt.Printf("Rounds: %d\n", s.TotalRounds)

	if len(s.WinsByPlayer) > 0 {
		names := make([]string, 0, len(s.WinsByPlayer))
		for name := range s.WinsByPlayer {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println("Wins:")
		for _, name := range names {
			fmt.Printf("  %s: %d\n", name, s.WinsByPlayer[name])
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
