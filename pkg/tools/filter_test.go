package tools

import "testing"

func TestFilterDescriptors(t *testing.T) {
	descs := []Descriptor{
		{Name: "search"},
		{Name: "fetch"},
		{Name: "delete"},
	}

	t.Run("empty allow-list keeps everything", func(t *testing.T) {
		got := FilterDescriptors(descs, nil)
		if len(got) != 3 {
			t.Errorf("got %d descriptors, want 3", len(got))
		}
	})

	t.Run("allow-list filters and preserves order", func(t *testing.T) {
		got := FilterDescriptors(descs, []string{"delete", "search"})
		if len(got) != 2 {
			t.Fatalf("got %d descriptors, want 2", len(got))
		}
		if got[0].Name != "search" || got[1].Name != "delete" {
			t.Errorf("order not preserved: %v", got)
		}
	})

	t.Run("unknown names filter to empty", func(t *testing.T) {
		got := FilterDescriptors(descs, []string{"unknown"})
		if len(got) != 0 {
			t.Errorf("got %d descriptors, want 0", len(got))
		}
	})
}

func TestAllowed(t *testing.T) {
	if !Allowed("anything", nil) {
		t.Error("empty allow-list must allow everything")
	}
	if !Allowed("search", []string{"search", "fetch"}) {
		t.Error("listed name must be allowed")
	}
	if Allowed("delete", []string{"search", "fetch"}) {
		t.Error("unlisted name must be rejected")
	}
}
