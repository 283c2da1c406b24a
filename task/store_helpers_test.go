package task

import "testing"

// scriptedPrompter feeds canned answers to interactive mutations. An
// exhausted script behaves like an operator abort.
type scriptedPrompter struct {
	confirms []bool
	answers  []string
}

func (p *scriptedPrompter) Confirm(message string) (bool, error) {
	if len(p.confirms) == 0 {
		return false, ErrCanceled
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *scriptedPrompter) Ask(message string) (string, error) {
	if len(p.answers) == 0 {
		return "", ErrCanceled
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func parseStore(t *testing.T, lines ...string) Store {
	t.Helper()
	return ParseLines(lines)
}

func assertLines(t *testing.T, store Store, want ...string) {
	t.Helper()

	got := store.Lines()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
