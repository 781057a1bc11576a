package ffmpegproc

import (
	"strings"
	"testing"
)

func TestTailBufferUnderCap(t *testing.T) {
	tb := newTailBuffer(16)
	tb.Write([]byte("hello "))
	tb.Write([]byte("world"))

	if got := tb.String(); got != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", got)
	}
}

func TestTailBufferKeepsTail(t *testing.T) {
	tb := newTailBuffer(8)
	tb.Write([]byte("0123456789"))

	if got := tb.String(); got != "23456789" {
		t.Errorf("expected tail %q, got %q", "23456789", got)
	}

	tb.Write([]byte("AB"))
	if got := tb.String(); got != "456789AB" {
		t.Errorf("expected tail %q, got %q", "456789AB", got)
	}
}

func TestTailBufferLargeWrite(t *testing.T) {
	tb := newTailBuffer(4)
	tb.Write([]byte(strings.Repeat("x", 100) + "tail"))

	if got := tb.String(); got != "tail" {
		t.Errorf("expected %q, got %q", "tail", got)
	}
}
