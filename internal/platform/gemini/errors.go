package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrContentBlocked is returned when the API refuses the prompt or
	// stops the reply for safety reasons.
	ErrContentBlocked = errors.New("content blocked by safety filters")
)
