package tui

import "testing"

func TestTriggerFiresOnEnteringSentinelZone(t *testing.T) {
	var trigger scrollTrigger

	if trigger.Visible(0, 12) {
		t.Fatal("top of the list must not fire")
	}

	if !trigger.Visible(9, 12) {
		t.Fatal("entering the sentinel zone must fire")
	}
}

func TestTriggerIsEdgeTriggered(t *testing.T) {
	var trigger scrollTrigger

	if !trigger.Visible(11, 12) {
		t.Fatal("first entry into the zone must fire")
	}

	// Moving around inside the zone must not fire again.
	if trigger.Visible(10, 12) {
		t.Fatal("staying in the zone must not re-fire")
	}

	if trigger.Visible(11, 12) {
		t.Fatal("staying in the zone must not re-fire")
	}

	// Leaving and re-entering fires again.
	if trigger.Visible(2, 12) {
		t.Fatal("leaving the zone must not fire")
	}

	if !trigger.Visible(11, 12) {
		t.Fatal("re-entering the zone must fire")
	}
}

func TestTriggerEmptyList(t *testing.T) {
	var trigger scrollTrigger

	if trigger.Visible(0, 0) {
		t.Fatal("an empty list has no sentinel")
	}

	if trigger.Visible(-1, 0) {
		t.Fatal("header selection on an empty list must not fire")
	}
}

func TestTriggerReset(t *testing.T) {
	var trigger scrollTrigger

	if !trigger.Visible(11, 12) {
		t.Fatal("expected initial fire")
	}

	trigger.Reset()

	if !trigger.Visible(11, 12) {
		t.Fatal("after a reset the same position fires again")
	}
}

func TestTriggerShortList(t *testing.T) {
	var trigger scrollTrigger

	// With fewer rows than the threshold every row is in the zone.
	if !trigger.Visible(0, 2) {
		t.Fatal("short lists fire immediately")
	}
}
