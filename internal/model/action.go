package model

// Action is a human-friendly label for what the strategy did on a day.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)
