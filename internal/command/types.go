package command

import "personal-secretary/internal/model"

// ExecuteInput carries one natural language command, as captured from the
// user's voice transcription or typed text.
type ExecuteInput struct {
	Text string
}

// ExecuteOutput is the conversational result of executing a command. Message
// is phrased to be read back to the user verbatim.
type ExecuteOutput struct {
	Success bool
	Action  string // intent kind that was executed
	Message string
	Task    *model.Task  // set for create/complete/delete
	Tasks   []model.Task // set for list
}
