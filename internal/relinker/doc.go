// Package relinker drives a full run: scan the music root, build the stem
// index, resolve each discovered playlist's references, and write the
// relinked playlists into the output directory.
//
// The pipeline is sequential; per-playlist failures are recorded and logged
// without aborting the remaining playlists. Only a failed scan of the music
// root ends a run early.
package relinker
