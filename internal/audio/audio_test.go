package audio

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func TestBuiltinBackendsRegistered(t *testing.T) {
	expected := []string{"bell", "log", "none"}
	got := List()
	if len(got) != len(expected) {
		t.Fatalf("List() = %v, expected %v", got, expected)
	}
	for i, name := range expected {
		if got[i] != name {
			t.Errorf("List()[%d] = %q, expected %q", i, got[i], name)
		}
		if !Exists(name) {
			t.Errorf("Exists(%q) = false", name)
		}
	}
}

func TestCreateUnknownBackend(t *testing.T) {
	_, err := Create("speaker", Options{})
	if err == nil {
		t.Fatal("Create(speaker) should fail")
	}
	if !strings.Contains(err.Error(), "bell") {
		t.Errorf("error = %v, expected it to list available backends", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() of an existing name should panic")
		}
	}()
	Register("none", func(Options) Player { return None{} })
}

func TestBellPlay(t *testing.T) {
	tests := []struct {
		sound    string
		expected string
	}{
		{"pour", "\a"},
		{"bravo", "\a\a\a"},
	}

	for _, tc := range tests {
		var buf bytes.Buffer
		p, err := Create("bell", Options{Out: &buf})
		if err != nil {
			t.Fatalf("Create(bell) failed: %v", err)
		}
		if err := p.Play(tc.sound); err != nil {
			t.Fatalf("Play(%q) failed: %v", tc.sound, err)
		}
		if buf.String() != tc.expected {
			t.Errorf("Play(%q) wrote %q, expected %q", tc.sound, buf.String(), tc.expected)
		}
	}
}

func TestUnknownSound(t *testing.T) {
	var buf bytes.Buffer
	players := map[string]Player{
		"bell": NewBell(&buf),
		"log":  NewLog(log.New(&buf)),
	}
	for name, p := range players {
		if err := p.Play("splash"); err == nil {
			t.Errorf("%s.Play(splash) should fail", name)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("unknown sound wrote %q", buf.String())
	}
}

func TestBellNilWriter(t *testing.T) {
	if err := NewBell(nil).Play("pour"); err != nil {
		t.Errorf("Play() with nil writer failed: %v", err)
	}
}

func TestBellConcurrentPlay(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Play("pour")
		}()
	}
	wg.Wait()

	if buf.Len() != 20 {
		t.Errorf("wrote %d bytes, expected 20", buf.Len())
	}
}

func TestLogPlay(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	p, err := Create("log", Options{Logger: logger})
	if err != nil {
		t.Fatalf("Create(log) failed: %v", err)
	}
	if err := p.Play("bravo"); err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "bravo") {
		t.Errorf("log output = %q, expected it to mention bravo", buf.String())
	}
}

func TestNonePlay(t *testing.T) {
	if err := (None{}).Play("anything"); err != nil {
		t.Errorf("None.Play() = %v, expected nil", err)
	}
}
