package library_test

import (
	"context"
	"testing"

	"playlink/internal/library"
)

func openTestCatalog(t *testing.T) *library.Catalog {
	t.Helper()
	catalog, err := library.OpenCatalog(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = catalog.Close()
	})
	return catalog
}

func TestCatalogReplaceScanAndStats(t *testing.T) {
	catalog := openTestCatalog(t)
	ctx := context.Background()

	music := []string{"/music/A/Track.mp3", "/music/B/Track.flac", "/music/C/Song.ogg"}
	playlists := []string{"/music/favorites.m3u"}
	if err := catalog.ReplaceScan(ctx, music, playlists); err != nil {
		t.Fatal(err)
	}

	stats, err := catalog.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.MusicFiles != 3 {
		t.Fatalf("expected 3 music files, got %d", stats.MusicFiles)
	}
	if stats.PlaylistFiles != 1 {
		t.Fatalf("expected 1 playlist file, got %d", stats.PlaylistFiles)
	}
	if stats.DistinctStems != 2 {
		t.Fatalf("expected 2 distinct stems, got %d", stats.DistinctStems)
	}
	if stats.LastScannedAt == "" {
		t.Fatal("expected a scan timestamp")
	}
}

func TestCatalogReplaceScanReplacesPreviousContents(t *testing.T) {
	catalog := openTestCatalog(t)
	ctx := context.Background()

	if err := catalog.ReplaceScan(ctx, []string{"/music/Old.mp3"}, nil); err != nil {
		t.Fatal(err)
	}
	if err := catalog.ReplaceScan(ctx, []string{"/music/New.mp3"}, nil); err != nil {
		t.Fatal(err)
	}

	if paths, err := catalog.Lookup(ctx, "Old"); err != nil || len(paths) != 0 {
		t.Fatalf("expected old scan to be gone, got %v err=%v", paths, err)
	}
	paths, err := catalog.Lookup(ctx, "New")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || paths[0] != "/music/New.mp3" {
		t.Fatalf("unexpected lookup result %v", paths)
	}
}

func TestCatalogLookupPreservesInsertionOrder(t *testing.T) {
	catalog := openTestCatalog(t)
	ctx := context.Background()

	music := []string{"/music/B/Track.flac", "/music/A/Track.mp3"}
	if err := catalog.ReplaceScan(ctx, music, nil); err != nil {
		t.Fatal(err)
	}

	paths, err := catalog.Lookup(ctx, "Track")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 || paths[0] != "/music/B/Track.flac" || paths[1] != "/music/A/Track.mp3" {
		t.Fatalf("unexpected order %v", paths)
	}
}

func TestCatalogEmptyStats(t *testing.T) {
	catalog := openTestCatalog(t)

	stats, err := catalog.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.MusicFiles != 0 || stats.PlaylistFiles != 0 || stats.DistinctStems != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
