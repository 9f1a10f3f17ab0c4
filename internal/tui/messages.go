package tui

// TickMsg asks the model to pull the next text from its source.
type TickMsg struct{}
