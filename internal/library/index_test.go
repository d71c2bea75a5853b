package library_test

import (
	"testing"

	"playlink/internal/library"
)

func TestBuildGroupsByStem(t *testing.T) {
	ix := library.Build([]string{
		"/music/A/Track.mp3",
		"/music/B/Track.flac",
		"/music/C/Song.ogg",
	})

	if ix.Len() != 3 {
		t.Fatalf("expected 3 indexed files, got %d", ix.Len())
	}

	candidates := ix.Candidates("Track")
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates for Track, got %d", len(candidates))
	}
	if ix.Path(candidates[0]) != "/music/A/Track.mp3" || ix.Path(candidates[1]) != "/music/B/Track.flac" {
		t.Fatalf("candidate order not preserved: %q, %q", ix.Path(candidates[0]), ix.Path(candidates[1]))
	}

	if got := ix.Candidates("Missing"); got != nil {
		t.Fatalf("expected no candidates for unknown stem, got %v", got)
	}
}

func TestBuildSkipsFilesWithoutStem(t *testing.T) {
	ix := library.Build([]string{"/music/.mp3", "/music/Track.mp3"})

	if ix.Len() != 1 {
		t.Fatalf("expected the stemless file to be skipped, got %d entries", ix.Len())
	}
	if len(ix.Candidates("Track")) != 1 {
		t.Fatal("expected Track to be indexed")
	}
}

func TestStem(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/music/Artist/Track.mp3", "Track"},
		{"Track.mp3", "Track"},
		{"Track", "Track"},
		{"/a/b.tar.gz", "b.tar"},
		{".mp3", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := library.Stem(tc.path); got != tc.want {
			t.Errorf("Stem(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestExtension(t *testing.T) {
	if got := library.Extension("/a/Track.mp3"); got != ".mp3" {
		t.Fatalf("Extension = %q, want .mp3", got)
	}
	if got := library.Extension("/a/Track"); got != "" {
		t.Fatalf("Extension = %q, want empty", got)
	}
}
