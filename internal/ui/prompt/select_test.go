package prompt

import (
	"testing"

	"charm.land/bubbles/v2/textinput"
)

func newSelectModel(options ...string) selectModel {
	m := selectModel{
		options:  options,
		filter:   textinput.New(),
		selected: -1,
	}
	m.applyFilter()
	return m
}

func TestSelectModel_NoFilterShowsAllInOrder(t *testing.T) {
	t.Parallel()

	m := newSelectModel("beta", "alpha", "gamma")
	if len(m.filtered) != 3 {
		t.Fatalf("filtered = %d entries, want 3", len(m.filtered))
	}
	for i, want := range []string{"beta", "alpha", "gamma"} {
		if m.filtered[i].Str != want {
			t.Errorf("filtered[%d] = %q, want %q", i, m.filtered[i].Str, want)
		}
	}
}

func TestSelectModel_FuzzyFilter(t *testing.T) {
	t.Parallel()

	m := newSelectModel("feature-auth", "bugfix-login", "feature-api")
	m.filter.SetValue("feat")
	m.applyFilter()

	if len(m.filtered) != 2 {
		t.Fatalf("filtered = %d entries, want 2: %v", len(m.filtered), m.filtered)
	}
	for _, match := range m.filtered {
		if match.Str != "feature-auth" && match.Str != "feature-api" {
			t.Errorf("unexpected match %q", match.Str)
		}
	}
}

func TestSelectModel_CursorNavigationAndEnter(t *testing.T) {
	t.Parallel()

	m := newSelectModel("one", "two", "three")

	updated, _ := m.Update(keyPress("down"))
	m = updated.(selectModel)
	if m.cursor != 1 {
		t.Fatalf("cursor = %d after down, want 1", m.cursor)
	}

	updated, _ = m.Update(keyPress("enter"))
	m = updated.(selectModel)
	if !m.done || m.selected != 1 {
		t.Errorf("done=%v selected=%d, want done=true selected=1", m.done, m.selected)
	}
}

func TestSelectModel_EscCancels(t *testing.T) {
	t.Parallel()

	m := newSelectModel("one")
	updated, _ := m.Update(keyPress("esc"))
	m = updated.(selectModel)
	if !m.cancelled || !m.done {
		t.Errorf("cancelled=%v done=%v, want both true", m.cancelled, m.done)
	}
}

func TestSelectModel_CursorClampedByFilter(t *testing.T) {
	t.Parallel()

	m := newSelectModel("aaa", "bbb", "ccc")
	m.cursor = 2
	m.filter.SetValue("aaa")
	m.applyFilter()
	if m.cursor >= len(m.filtered) {
		t.Errorf("cursor %d not clamped to %d matches", m.cursor, len(m.filtered))
	}
}

func TestSelect_NoOptions(t *testing.T) {
	t.Parallel()

	res, err := Select("pick", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Cancelled {
		t.Error("Select with no options should cancel")
	}
}
