package player

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"video-player/internal/catalog"
	"video-player/internal/metrics"
	"video-player/internal/playback"
)

func newTestController(t *testing.T, opts ...Option) *Controller {
	t.Helper()

	cat, err := catalog.New(
		catalog.Video{ID: "amazing_cats_video_id", Title: "Amazing Cats", Tags: []string{"#cat", "#animal"}},
		catalog.Video{ID: "another_cat_video_id", Title: "Another Cat Video", Tags: []string{"#cat", "#animal"}},
		catalog.Video{ID: "funny_dogs_video_id", Title: "Funny Dogs", Tags: []string{"#dog", "#animal"}},
		catalog.Video{ID: "life_at_google_video_id", Title: "Life at Google", Tags: []string{"#google", "#career"}},
		catalog.Video{ID: "nothing_video_id", Title: "Video about nothing"},
	)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return New(cat, opts...)
}

func ids(videos []catalog.Video) []string {
	out := make([]string, len(videos))
	for i, v := range videos {
		out[i] = v.ID
	}
	return out
}

func wantKind(t *testing.T, err error, sentinel error, kind Kind) {
	t.Helper()

	if !errors.Is(err, sentinel) {
		t.Fatalf("error = %v, want %v", err, sentinel)
	}
	if got := KindOf(err); got != kind {
		t.Errorf("KindOf() = %v, want %v", got, kind)
	}
}

func TestPlay(t *testing.T) {
	t.Parallel()

	c := newTestController(t)

	res, err := c.Play("amazing_cats_video_id")
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if res.Stopped != nil {
		t.Errorf("Stopped = %+v, want nil", res.Stopped)
	}
	if res.Playing.Title != "Amazing Cats" {
		t.Errorf("Playing.Title = %q, want Amazing Cats", res.Playing.Title)
	}

	now, ok := c.ShowPlaying()
	if !ok || now.Video.ID != "amazing_cats_video_id" || now.Paused {
		t.Errorf("ShowPlaying() = (%+v, %v)", now, ok)
	}
}

func TestPlayImplicitlyStops(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	if _, err := c.Play("amazing_cats_video_id"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Pause(); err != nil {
		t.Fatal(err)
	}

	res, err := c.Play("funny_dogs_video_id")
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if res.Stopped == nil || res.Stopped.ID != "amazing_cats_video_id" {
		t.Errorf("Stopped = %+v, want amazing_cats_video_id", res.Stopped)
	}
	if c.Status() != playback.Playing {
		t.Errorf("Status() = %v, want playing", c.Status())
	}

	// Replaying the active video also restarts it.
	res, err = c.Play("funny_dogs_video_id")
	if err != nil {
		t.Fatal(err)
	}
	if res.Stopped == nil || res.Stopped.ID != "funny_dogs_video_id" {
		t.Errorf("Stopped = %+v, want funny_dogs_video_id", res.Stopped)
	}
}

func TestPlayErrors(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	if _, err := c.Play("funny_dogs_video_id"); err != nil {
		t.Fatal(err)
	}

	_, err := c.Play("does_not_exist")
	wantKind(t, err, ErrNoSuchVideo, KindNotFound)

	// A failed play leaves the active video alone.
	if now, ok := c.ShowPlaying(); !ok || now.Video.ID != "funny_dogs_video_id" {
		t.Errorf("ShowPlaying() = (%+v, %v), want funny_dogs_video_id", now, ok)
	}

	if _, err := c.Flag("amazing_cats_video_id", "dont_like_cats"); err != nil {
		t.Fatal(err)
	}
	_, err = c.Play("amazing_cats_video_id")
	wantKind(t, err, ErrVideoFlagged, KindFlagged)

	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("error %T is not *Error", err)
	}
	if pe.Reason != "dont_like_cats" || pe.Op != "play" || pe.VideoID != "amazing_cats_video_id" {
		t.Errorf("Error = %+v", pe)
	}
	if got, want := pe.Error(), "play: video is currently flagged (reason: dont_like_cats)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestStopPauseContinue(t *testing.T) {
	t.Parallel()

	c := newTestController(t)

	_, err := c.Stop()
	wantKind(t, err, ErrNothingPlaying, KindInvalidState)
	_, err = c.Pause()
	wantKind(t, err, ErrNothingPlaying, KindInvalidState)
	_, err = c.Continue()
	wantKind(t, err, ErrNothingPlaying, KindInvalidState)

	if _, err := c.Play("life_at_google_video_id"); err != nil {
		t.Fatal(err)
	}

	_, err = c.Continue()
	wantKind(t, err, ErrNotPaused, KindInvalidState)

	v, err := c.Pause()
	if err != nil || v.ID != "life_at_google_video_id" {
		t.Fatalf("Pause() = (%+v, %v)", v, err)
	}
	if now, _ := c.ShowPlaying(); !now.Paused {
		t.Error("Expected paused")
	}

	_, err = c.Pause()
	wantKind(t, err, ErrAlreadyPaused, KindConflict)
	var pe *Error
	if errors.As(err, &pe) && pe.VideoID != "life_at_google_video_id" {
		t.Errorf("VideoID = %q, want life_at_google_video_id", pe.VideoID)
	}

	if v, err := c.Continue(); err != nil || v.ID != "life_at_google_video_id" {
		t.Fatalf("Continue() = (%+v, %v)", v, err)
	}

	v, err = c.Stop()
	if err != nil || v.ID != "life_at_google_video_id" {
		t.Fatalf("Stop() = (%+v, %v)", v, err)
	}
	if _, ok := c.ShowPlaying(); ok {
		t.Error("Expected nothing playing after Stop()")
	}
	if c.Status() != playback.Stopped {
		t.Errorf("Status() = %v, want stopped", c.Status())
	}
}

func TestPlayRandom(t *testing.T) {
	t.Parallel()

	var gotN int
	c := newTestController(t, WithRandom(func(n int) int {
		gotN = n
		return n - 1
	}))

	for _, id := range []string{"amazing_cats_video_id", "another_cat_video_id", "funny_dogs_video_id"} {
		if _, err := c.Flag(id, ""); err != nil {
			t.Fatal(err)
		}
	}

	res, err := c.PlayRandom()
	if err != nil {
		t.Fatalf("PlayRandom() error = %v", err)
	}
	if gotN != 2 {
		t.Errorf("random source called with n = %d, want 2 unflagged videos", gotN)
	}
	if res.Playing.ID != "nothing_video_id" {
		t.Errorf("Playing = %q, want nothing_video_id", res.Playing.ID)
	}
}

func TestPlayRandomNeverPicksFlagged(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	if _, err := c.Flag("funny_dogs_video_id", "x"); err != nil {
		t.Fatal(err)
	}

	for range 200 {
		res, err := c.PlayRandom()
		if err != nil {
			t.Fatal(err)
		}
		if res.Playing.ID == "funny_dogs_video_id" {
			t.Fatal("PlayRandom() played a flagged video")
		}
	}
}

func TestPlayRandomAllFlagged(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	for _, v := range c.Catalog().All() {
		if _, err := c.Flag(v.ID, ""); err != nil {
			t.Fatal(err)
		}
	}

	_, err := c.PlayRandom()
	wantKind(t, err, ErrCatalogEmpty, KindNotFound)

	empty, err := catalog.New()
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(empty).PlayRandom()
	wantKind(t, err, ErrCatalogEmpty, KindNotFound)
}

func TestFlag(t *testing.T) {
	t.Parallel()

	c := newTestController(t)

	res, err := c.Flag("funny_dogs_video_id", "")
	if err != nil {
		t.Fatalf("Flag() error = %v", err)
	}
	if res.Stopped {
		t.Error("Stopped = true for an inactive video")
	}
	if reason, ok := c.FlagReason("funny_dogs_video_id"); !ok || reason != "" {
		t.Errorf("FlagReason() = (%q, %v), want (\"\", true)", reason, ok)
	}

	_, err = c.Flag("funny_dogs_video_id", "again")
	wantKind(t, err, ErrAlreadyFlagged, KindConflict)
	if reason, _ := c.FlagReason("funny_dogs_video_id"); reason != "" {
		t.Errorf("reason changed to %q by a failed Flag()", reason)
	}

	_, err = c.Flag("nope", "")
	wantKind(t, err, ErrNoSuchVideo, KindNotFound)
}

func TestFlagStopsActiveVideo(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	if _, err := c.Play("amazing_cats_video_id"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Pause(); err != nil {
		t.Fatal(err)
	}

	res, err := c.Flag("amazing_cats_video_id", "spam")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Stopped {
		t.Error("Stopped = false, want true")
	}
	if _, ok := c.ShowPlaying(); ok {
		t.Error("Flagged video is still active")
	}

	// Flagging another video leaves playback alone.
	if _, err := c.Play("funny_dogs_video_id"); err != nil {
		t.Fatal(err)
	}
	if res, err := c.Flag("life_at_google_video_id", ""); err != nil || res.Stopped {
		t.Fatalf("Flag() = (%+v, %v)", res, err)
	}
	if now, ok := c.ShowPlaying(); !ok || now.Video.ID != "funny_dogs_video_id" {
		t.Errorf("ShowPlaying() = (%+v, %v), want funny_dogs_video_id", now, ok)
	}
}

func TestAllow(t *testing.T) {
	t.Parallel()

	c := newTestController(t)

	_, err := c.Allow("funny_dogs_video_id")
	wantKind(t, err, ErrNotFlagged, KindConflict)
	_, err = c.Allow("nope")
	wantKind(t, err, ErrNoSuchVideo, KindNotFound)

	if _, err := c.Flag("funny_dogs_video_id", "x"); err != nil {
		t.Fatal(err)
	}
	if v, err := c.Allow("funny_dogs_video_id"); err != nil || v.Title != "Funny Dogs" {
		t.Fatalf("Allow() = (%+v, %v)", v, err)
	}
	if _, ok := c.FlagReason("funny_dogs_video_id"); ok {
		t.Error("Video still flagged after Allow()")
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	c := newTestController(t)

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"case insensitive", "CAT", []string{"amazing_cats_video_id", "another_cat_video_id"}},
		{"sorted by title", "video", []string{"another_cat_video_id", "nothing_video_id"}},
		{"surrounding space", "  google ", []string{"life_at_google_video_id"}},
		{"no match", "blah", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(c.Search(tt.term))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.term, diff)
			}
		})
	}
}

func TestSearchEmptyTermListsUnflagged(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	if _, err := c.Flag("funny_dogs_video_id", "dont_like_dogs"); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"amazing_cats_video_id",
		"another_cat_video_id",
		"life_at_google_video_id",
		"nothing_video_id",
	}
	for _, term := range []string{"", "   "} {
		if diff := cmp.Diff(want, ids(c.Search(term))); diff != "" {
			t.Errorf("Search(%q) mismatch (-want +got):\n%s", term, diff)
		}
	}
}

func TestSearchByTag(t *testing.T) {
	t.Parallel()

	c := newTestController(t)

	tests := []struct {
		tag  string
		want []string
	}{
		{"#cat", []string{"amazing_cats_video_id", "another_cat_video_id"}},
		{"#ANIMAL", []string{"amazing_cats_video_id", "another_cat_video_id", "funny_dogs_video_id"}},
		{"#ca", []string{}},
		{"cat", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got := ids(c.SearchByTag(tt.tag))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SearchByTag(%q) mismatch (-want +got):\n%s", tt.tag, diff)
			}
		})
	}
}

func TestSearchExcludesFlagged(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	if _, err := c.Flag("amazing_cats_video_id", ""); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"another_cat_video_id"}, ids(c.Search("cat"))); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"another_cat_video_id"}, ids(c.SearchByTag("#cat"))); diff != "" {
		t.Errorf("SearchByTag() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlayFromMatches(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	matches := c.Search("cat")

	for _, idx := range []int{-1, len(matches)} {
		_, err := c.PlayFromMatches(matches, idx)
		wantKind(t, err, ErrInvalidSelection, KindNotFound)
	}

	res, err := c.PlayFromMatches(matches, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Playing.ID != "another_cat_video_id" {
		t.Errorf("Playing = %q, want another_cat_video_id", res.Playing.ID)
	}

	// Matches are re-checked, so a stale list cannot play a flagged video.
	if _, err := c.Flag("amazing_cats_video_id", "late"); err != nil {
		t.Fatal(err)
	}
	_, err = c.PlayFromMatches(matches, 0)
	wantKind(t, err, ErrVideoFlagged, KindFlagged)
}

func TestPlaylists(t *testing.T) {
	t.Parallel()

	c := newTestController(t)

	p, err := c.CreatePlaylist("my_COOL_playlist")
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	if p.Name != "my_COOL_playlist" || len(p.Videos) != 0 {
		t.Errorf("CreatePlaylist() = %+v", p)
	}

	_, err = c.CreatePlaylist("MY_cool_PLAYLIST")
	wantKind(t, err, ErrDuplicateName, KindConflict)

	if _, err := c.AddToPlaylist("my_cool_playlist", "amazing_cats_video_id"); err != nil {
		t.Fatal(err)
	}
	if v, err := c.AddToPlaylist("MY_COOL_PLAYLIST", "funny_dogs_video_id"); err != nil || v.Title != "Funny Dogs" {
		t.Fatalf("AddToPlaylist() = (%+v, %v)", v, err)
	}

	_, err = c.AddToPlaylist("my_cool_playlist", "amazing_cats_video_id")
	wantKind(t, err, ErrDuplicateMember, KindConflict)
	_, err = c.AddToPlaylist("another_playlist", "amazing_cats_video_id")
	wantKind(t, err, ErrNoSuchPlaylist, KindNotFound)
	_, err = c.AddToPlaylist("my_cool_playlist", "nope")
	wantKind(t, err, ErrNoSuchVideo, KindNotFound)

	view, err := c.Playlist("my_cool_PLAYLIST")
	if err != nil {
		t.Fatal(err)
	}
	if view.Name != "my_COOL_playlist" {
		t.Errorf("Name = %q, want display casing", view.Name)
	}
	var members []string
	for _, v := range view.Videos {
		members = append(members, v.ID)
	}
	if diff := cmp.Diff([]string{"amazing_cats_video_id", "funny_dogs_video_id"}, members); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}

	if _, err := c.RemoveFromPlaylist("my_cool_playlist", "amazing_cats_video_id"); err != nil {
		t.Fatal(err)
	}
	_, err = c.RemoveFromPlaylist("my_cool_playlist", "amazing_cats_video_id")
	wantKind(t, err, ErrNotAMember, KindNotFound)
	_, err = c.RemoveFromPlaylist("nope", "amazing_cats_video_id")
	wantKind(t, err, ErrNoSuchPlaylist, KindNotFound)

	if err := c.ClearPlaylist("my_cool_playlist"); err != nil {
		t.Fatal(err)
	}
	if view, _ := c.Playlist("my_cool_playlist"); len(view.Videos) != 0 {
		t.Errorf("Videos after Clear = %+v", view.Videos)
	}
	wantKind(t, c.ClearPlaylist("nope"), ErrNoSuchPlaylist, KindNotFound)

	if err := c.DeletePlaylist("My_Cool_Playlist"); err != nil {
		t.Fatal(err)
	}
	wantKind(t, c.DeletePlaylist("my_cool_playlist"), ErrNoSuchPlaylist, KindNotFound)
	_, err = c.Playlist("my_cool_playlist")
	wantKind(t, err, ErrNoSuchPlaylist, KindNotFound)
}

func TestPlaylistsAndFlags(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	if _, err := c.CreatePlaylist("mix"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddToPlaylist("mix", "funny_dogs_video_id"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Flag("funny_dogs_video_id", "barking"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Flag("amazing_cats_video_id", "meowing"); err != nil {
		t.Fatal(err)
	}

	_, err := c.AddToPlaylist("mix", "amazing_cats_video_id")
	wantKind(t, err, ErrVideoFlagged, KindFlagged)
	var pe *Error
	if errors.As(err, &pe) && pe.Reason != "meowing" {
		t.Errorf("Reason = %q, want meowing", pe.Reason)
	}

	// Existing members stay and are reported as flagged.
	view, err := c.Playlist("mix")
	if err != nil {
		t.Fatal(err)
	}
	want := []VideoInfo{{
		Video:      catalog.Video{ID: "funny_dogs_video_id", Title: "Funny Dogs", Tags: []string{"#dog", "#animal"}},
		Flagged:    true,
		FlagReason: "barking",
	}}
	if diff := cmp.Diff(want, view.Videos); diff != "" {
		t.Errorf("Videos mismatch (-want +got):\n%s", diff)
	}

	// A flagged member can still be removed.
	if _, err := c.RemoveFromPlaylist("mix", "funny_dogs_video_id"); err != nil {
		t.Errorf("RemoveFromPlaylist() error = %v", err)
	}
}

func TestReadViews(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	if c.VideoCount() != 5 {
		t.Errorf("VideoCount() = %d, want 5", c.VideoCount())
	}
	if _, err := c.Flag("nothing_video_id", ""); err != nil {
		t.Fatal(err)
	}

	var titles []string
	for _, v := range c.Videos() {
		titles = append(titles, v.Title)
		if v.Flagged != (v.ID == "nothing_video_id") {
			t.Errorf("%s Flagged = %v", v.ID, v.Flagged)
		}
	}
	want := []string{"Amazing Cats", "Another Cat Video", "Funny Dogs", "Life at Google", "Video about nothing"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("Videos() order mismatch (-want +got):\n%s", diff)
	}

	for _, name := range []string{"zeta", "Alpha", "beta"} {
		if _, err := c.CreatePlaylist(name); err != nil {
			t.Fatal(err)
		}
	}
	var names []string
	for _, p := range c.Playlists() {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"Alpha", "beta", "zeta"}, names); diff != "" {
		t.Errorf("Playlists() order mismatch (-want +got):\n%s", diff)
	}

	if _, err := c.Video("nope"); !errors.Is(err, ErrNoSuchVideo) {
		t.Errorf("Video() error = %v, want ErrNoSuchVideo", err)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	c := newTestController(t)
	if _, err := c.CreatePlaylist("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.AddToPlaylist("a", "funny_dogs_video_id"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Flag("nothing_video_id", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Play("funny_dogs_video_id"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Pause(); err != nil {
		t.Fatal(err)
	}

	want := metrics.Stats{TotalVideos: 5, FlaggedVideos: 1, Playlists: 1, PlaylistEntries: 1, State: 2}
	if diff := cmp.Diff(want, c.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"foreign", errors.New("boom"), KindNone},
		{"controller", fail("stop", ErrNothingPlaying, ""), KindInvalidState},
		{"load", &catalog.LoadError{Source: "videos.txt", Line: 3, Err: catalog.ErrMissingID}, KindLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandMetrics(t *testing.T) {
	c := newTestController(t)

	success := metrics.CommandsTotal.WithLabelValues("stop", "success")
	invalid := metrics.CommandsTotal.WithLabelValues("stop", "invalid_state")
	beforeSuccess, beforeInvalid := testutil.ToFloat64(success), testutil.ToFloat64(invalid)

	_, _ = c.Stop()
	if _, err := c.Play("funny_dogs_video_id"); err != nil {
		t.Fatal(err)
	}
	_, _ = c.Stop()

	if got := testutil.ToFloat64(success) - beforeSuccess; got != 1 {
		t.Errorf("stop success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(invalid) - beforeInvalid; got != 1 {
		t.Errorf("stop invalid_state delta = %v, want 1", got)
	}
}

func TestFlagAndAllowEndToEnd(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New(
		catalog.Video{ID: "cat1", Title: "Amazing Cats", Tags: []string{"animal", "funny"}},
		catalog.Video{ID: "bore1", Title: "Boring"},
	)
	if err != nil {
		t.Fatal(err)
	}
	c := New(cat)

	if _, err := c.Play("cat1"); err != nil {
		t.Fatal(err)
	}
	if c.Status() != playback.Playing {
		t.Fatalf("Status() = %v, want playing", c.Status())
	}

	if _, err := c.Flag("cat1", "spam"); err != nil {
		t.Fatal(err)
	}
	if c.Status() != playback.Stopped {
		t.Errorf("Status() = %v, want stopped", c.Status())
	}
	if reason, ok := c.FlagReason("cat1"); !ok || reason != "spam" {
		t.Errorf("FlagReason() = (%q, %v), want (spam, true)", reason, ok)
	}

	_, err = c.Play("cat1")
	wantKind(t, err, ErrVideoFlagged, KindFlagged)
	var pe *Error
	if !errors.As(err, &pe) || pe.Reason != "spam" {
		t.Errorf("error = %v, want reason spam", err)
	}

	if _, err := c.Allow("cat1"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Play("cat1"); err != nil {
		t.Fatal(err)
	}
	if now, ok := c.ShowPlaying(); !ok || now.Video.ID != "cat1" {
		t.Errorf("ShowPlaying() = (%+v, %v), want cat1", now, ok)
	}
}
