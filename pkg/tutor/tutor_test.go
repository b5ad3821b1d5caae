package tutor

import (
	"strings"
	"testing"
)

func TestExplain(t *testing.T) {
	answer, err := Explain("  synapses  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(answer, "Thanks for sharing. Here’s a calm explanation of “synapses”:") {
		t.Errorf("answer = %q", answer)
	}
	if strings.Count(answer, "• Step") != 3 {
		t.Errorf("expected three steps in %q", answer)
	}
}

func TestExplainEmpty(t *testing.T) {
	if _, err := Explain(" \n"); err != ErrEmptyPrompt {
		t.Errorf("err = %v, want ErrEmptyPrompt", err)
	}
}
