package console

import (
	"strings"
	"testing"
	"time"
)

func runMenu(t *testing.T, input string) {
	t.Helper()
	m := &Menu{Prompter: newPrompterFrom(strings.NewReader(input))}

	done := make(chan struct{})
	go func() {
		m.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("menu loop kept running after input ended")
	}
}

func TestRunStopsWhenInputIsExhausted(t *testing.T) {
	runMenu(t, "")
}

func TestRunStopsAfterInvalidChoicesThenEOF(t *testing.T) {
	runMenu(t, "0\nhelp\n")
}

func TestRunExitChoice(t *testing.T) {
	runMenu(t, "7\n")
}
