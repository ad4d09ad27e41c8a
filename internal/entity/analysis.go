package entity

// Analysis - everything the engine can say about a board.
type Analysis struct {
	Board        Board    `json:"board"`
	Player       Player   `json:"player,omitempty"`
	Terminal     bool     `json:"terminal"`
	Outcome      Outcome  `json:"outcome"`
	LegalActions []Action `json:"legal_actions"`
	// BestAction and Value are nil on terminal boards.
	BestAction *Action `json:"best_action,omitempty"`
	Value      *int    `json:"value,omitempty"`
}
