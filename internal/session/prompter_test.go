package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrompter_ReadLine_StripsCRLF(t *testing.T) {
	p := NewPrompter(strings.NewReader("Dog\r\nM\r\n"), &bytes.Buffer{})

	k, err := p.Kind()
	if err != nil || k != "Dog" {
		t.Fatalf("expected Dog, got %q err=%v", k, err)
	}
	g, err := p.Gender()
	if err != nil || g != "Male" {
		t.Fatalf("expected Male, got %q err=%v", g, err)
	}
}

func TestPrompter_Text_EndOfInputWhileRetrying(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n  \n"), &out)

	_, err := p.Text("Owner: ")
	if !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("expected ErrEndOfInput, got %v", err)
	}

	want := "Owner: \nInput cannot be empty. Owner: \nInput cannot be empty. Owner: \n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestPrompter_Ask_AcceptsAnything(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := p.Ask("Filter:")
	if err != nil || got != "" {
		t.Fatalf("expected empty line, got %q err=%v", got, err)
	}
	if _, err := p.Ask("Filter:"); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("expected ErrEndOfInput on second read, got %v", err)
	}
}

func TestPrompter_ReadLine_LastLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("Rex\r\nSam"), &bytes.Buffer{})

	for _, want := range []string{"Rex", "Sam"} {
		got, err := p.ReadLine()
		if err != nil || got != want {
			t.Fatalf("expected %q, got %q err=%v", want, got, err)
		}
	}
	if _, err := p.ReadLine(); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("expected ErrEndOfInput, got %v", err)
	}
}

func TestPrompter_Text_NoLineLengthLimit(t *testing.T) {
	long := strings.Repeat("x", 3<<20)
	p := NewPrompter(strings.NewReader(long+"\n"), &bytes.Buffer{})

	got, err := p.Text("Owner: ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != len(long) {
		t.Fatalf("expected %d bytes, got %d", len(long), len(got))
	}
}
