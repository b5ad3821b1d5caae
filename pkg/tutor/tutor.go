// Package tutor answers learner questions with a calm, three-step template.
package tutor

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyPrompt = errors.New("prompt is empty")

const Greeting = "Ask anything — NeuroLearn will answer with calm pacing, short paragraphs, and optional next-steps."

// Helper describes one of the assistant tools shown next to the tutor.
type Helper struct {
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	Snippet string `json:"snippet"`
}

var Helpers = []Helper{
	{Title: "Smart Summary", Detail: "AI trims essays into short, dyslexia-friendly chunks.", Snippet: "Key idea → Neurons pass signals in one direction. Supporting fact → Axons act like insulated cables."},
	{Title: "Flashcard Builder", Detail: "Auto-build cards with visual or text backs.", Snippet: "Q: What protects axons? | A: Myelin — a fatty layer that boosts speed."},
	{Title: "Adaptive Quiz", Detail: "Difficulty responds to attention drift in under 3 prompts.", Snippet: "“Pick the picture showing the synapse gap.” · +1 gentle hint unlocked."},
	{Title: "Explain Differently", Detail: "Switch to metaphors, stories, or spoken walkthroughs.", Snippet: "Metaphor: “Neurons are relay runners passing glowing batons.”"},
}

// Explain builds the stub answer for prompt.
func Explain(prompt string) (string, error) {
	request := strings.TrimSpace(prompt)
	if request == "" {
		return "", ErrEmptyPrompt
	}
	return fmt.Sprintf("Thanks for sharing. Here’s a calm explanation of “%s”:\n"+
		"• Step 1 — What it is: break the idea into one short sentence.\n"+
		"• Step 2 — Why it matters: connect to something you already know.\n"+
		"• Step 3 — Try it: describe a tiny action you can take now.\n\n"+
		"Need it shorter, visual, or voiced? Toggle a new mode anytime.", request), nil
}
