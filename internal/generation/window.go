package generation

import "unicode/utf8"

// DefaultWindowBudget is the maximum number of runes sent to the model.
const DefaultWindowBudget = 4000

// WindowSeparator joins the head and tail of a windowed text.
const WindowSeparator = "\n\n...\n\n"

// WindowText bounds text to budget runes.
//
// Text of at most budget runes is returned unchanged. Longer text is reduced
// to the first budget/2 runes, WindowSeparator, and the last budget/2 runes.
// The boolean result reports whether the text was windowed.
func WindowText(text string, budget int) (string, bool) {
	if budget <= 0 || utf8.RuneCountInString(text) <= budget {
		return text, false
	}

	half := budget / 2
	runes := []rune(text)
	head := string(runes[:half])
	tail := string(runes[len(runes)-half:])

	return head + WindowSeparator + tail, true
}
