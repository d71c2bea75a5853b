package playlist_test

import (
	"reflect"
	"testing"

	"playlink/internal/library"
	"playlink/internal/playlist"
)

func TestAssemblePreservesOrderAndDropsUnresolved(t *testing.T) {
	ix := library.Build([]string{
		"/music/A/One.mp3",
		"/music/B/Two.flac",
	})
	refs := []string{
		"old/B/Two.flac",
		"old/Missing.mp3",
		"old/A/One.mp3",
		"",
	}

	pl := playlist.Assemble(ix, "mix", refs)

	if pl.Name != "mix" {
		t.Fatalf("unexpected name %q", pl.Name)
	}
	want := []string{"/music/B/Two.flac", "/music/A/One.mp3"}
	if !reflect.DeepEqual(pl.Songs, want) {
		t.Fatalf("got %v, want %v", pl.Songs, want)
	}
}

func TestAssembleAllowsDuplicateTargets(t *testing.T) {
	ix := library.Build([]string{"/music/A/One.mp3"})
	refs := []string{"x/One.mp3", "y/One.mp3"}

	pl := playlist.Assemble(ix, "dup", refs)

	if len(pl.Songs) != 2 || pl.Songs[0] != pl.Songs[1] {
		t.Fatalf("expected both references to resolve to the same file, got %v", pl.Songs)
	}
}

func TestAssembleEmptyReferences(t *testing.T) {
	ix := library.Build([]string{"/music/A/One.mp3"})

	pl := playlist.Assemble(ix, "empty", nil)
	if len(pl.Songs) != 0 {
		t.Fatalf("expected no songs, got %v", pl.Songs)
	}
}
