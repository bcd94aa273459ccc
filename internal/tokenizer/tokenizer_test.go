package tokenizer

import (
	"errors"
	"testing"
)

type runeCounter struct{}

func (runeCounter) Name() string { return "runes" }

func (runeCounter) CountString(input string) (int, error) {
	return len([]rune(input)), nil
}

func TestCountDocument(t *testing.T) {
	tokens, err := CountDocument(runeCounter{}, "├── a")
	if err != nil {
		t.Fatalf("CountDocument error: %v", err)
	}
	if tokens != 5 {
		t.Fatalf("expected 5 tokens, got %d", tokens)
	}
}

func TestCountDocumentNilCounter(t *testing.T) {
	if _, err := CountDocument(nil, "text"); !errors.Is(err, ErrNilCounter) {
		t.Fatalf("expected ErrNilCounter, got %v", err)
	}
}

func TestOpenAICounterWithoutEncoding(t *testing.T) {
	if _, err := (openAICounter{}).CountString("text"); err == nil {
		t.Fatalf("expected error for counter without encoding")
	}
}
