package debugger

import "testing"

func TestBreakpointManager_AddIsIdempotentPerAddress(t *testing.T) {
	bm := NewBreakpointManager()
	first := bm.Add(0x100)
	second := bm.Add(0x100)
	if first.ID != second.ID {
		t.Fatalf("adding the same address twice should return the same breakpoint, got IDs %d and %d", first.ID, second.ID)
	}
	if len(bm.All()) != 1 {
		t.Fatalf("want 1 breakpoint, got %d", len(bm.All()))
	}
}

func TestBreakpointManager_HitTracksCount(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Add(0x200)

	if _, hit := bm.Hit(0x100); hit {
		t.Fatal("unset address should not hit")
	}

	bp, hit := bm.Hit(0x200)
	if !hit {
		t.Fatal("want hit at 0x200")
	}
	if bp.HitCount != 1 {
		t.Fatalf("want HitCount 1, got %d", bp.HitCount)
	}

	bm.Hit(0x200)
	if bp.HitCount != 2 {
		t.Fatalf("want HitCount 2 after second hit, got %d", bp.HitCount)
	}
}

func TestBreakpointManager_DeleteAt(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Add(0x300)

	if err := bm.DeleteAt(0x300); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bm.DeleteAt(0x300); err == nil {
		t.Fatal("deleting a missing breakpoint should error")
	}
	if _, hit := bm.Hit(0x300); hit {
		t.Fatal("deleted breakpoint should not hit")
	}
}

func TestBreakpointManager_Clear(t *testing.T) {
	bm := NewBreakpointManager()
	bm.Add(0x10)
	bm.Add(0x20)
	bm.Clear()
	if len(bm.All()) != 0 {
		t.Fatalf("want 0 breakpoints after Clear, got %d", len(bm.All()))
	}
}
