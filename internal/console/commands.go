package console

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"video-player/internal/catalog"
	"video-player/internal/playlist"
	"video-player/internal/player"
)

type command struct {
	usage   string
	help    string
	minArgs int
	// maxArgs is -1 for commands that take the rest of the line.
	maxArgs int
	run     func(c *Console, args []string)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"NUMBER_OF_VIDEOS":       {"NUMBER_OF_VIDEOS", "Shows how many videos are in the library.", 0, 0, (*Console).numberOfVideos},
		"SHOW_ALL_VIDEOS":        {"SHOW_ALL_VIDEOS", "Lists all videos from the library.", 0, 0, (*Console).showAllVideos},
		"PLAY":                   {"PLAY <video_id>", "Plays specified video.", 1, 1, (*Console).play},
		"PLAY_RANDOM":            {"PLAY_RANDOM", "Plays a random video from the library.", 0, 0, (*Console).playRandom},
		"STOP":                   {"STOP", "Stop the current video.", 0, 0, (*Console).stop},
		"PAUSE":                  {"PAUSE", "Pause the current video.", 0, 0, (*Console).pause},
		"CONTINUE":               {"CONTINUE", "Resume the current paused video.", 0, 0, (*Console).resume},
		"SHOW_PLAYING":           {"SHOW_PLAYING", "Displays the title, id and tags of the current video.", 0, 0, (*Console).showPlaying},
		"CREATE_PLAYLIST":        {"CREATE_PLAYLIST <playlist_name>", "Creates a new (empty) playlist with the provided name.", 1, 1, (*Console).createPlaylist},
		"ADD_TO_PLAYLIST":        {"ADD_TO_PLAYLIST <playlist_name> <video_id>", "Adds the requested video to the playlist.", 2, 2, (*Console).addToPlaylist},
		"REMOVE_FROM_PLAYLIST":   {"REMOVE_FROM_PLAYLIST <playlist_name> <video_id>", "Removes the specified video from the specified playlist.", 2, 2, (*Console).removeFromPlaylist},
		"CLEAR_PLAYLIST":         {"CLEAR_PLAYLIST <playlist_name>", "Removes all the videos from the playlist.", 1, 1, (*Console).clearPlaylist},
		"DELETE_PLAYLIST":        {"DELETE_PLAYLIST <playlist_name>", "Deletes the playlist.", 1, 1, (*Console).deletePlaylist},
		"SHOW_PLAYLIST":          {"SHOW_PLAYLIST <playlist_name>", "List all the videos in this playlist.", 1, 1, (*Console).showPlaylist},
		"SHOW_ALL_PLAYLISTS":     {"SHOW_ALL_PLAYLISTS", "Display all the available playlists.", 0, 0, (*Console).showAllPlaylists},
		"EXPORT_PLAYLIST":        {"EXPORT_PLAYLIST <playlist_name> [file]", "Writes the playlist to a Windows Media Player (.wpl) file.", 1, 2, (*Console).exportPlaylist},
		"IMPORT_PLAYLIST":        {"IMPORT_PLAYLIST <file> [playlist_name]", "Creates a playlist from a Windows Media Player (.wpl) file.", 1, 2, (*Console).importPlaylist},
		"SEARCH_VIDEOS":          {"SEARCH_VIDEOS <search_term>", "Display all the videos whose titles contain the search_term.", 1, 1, (*Console).searchVideos},
		"SEARCH_VIDEOS_WITH_TAG": {"SEARCH_VIDEOS_WITH_TAG <tag_name>", "Display all videos whose tags contains the provided tag.", 1, 1, (*Console).searchVideosWithTag},
		"FLAG_VIDEO":             {"FLAG_VIDEO <video_id> [flag_reason]", "Mark a video as flagged.", 1, -1, (*Console).flagVideo},
		"ALLOW_VIDEO":            {"ALLOW_VIDEO <video_id>", "Removes a flag from a video.", 1, 1, (*Console).allowVideo},
		"HELP":                   {"HELP", "Displays help.", 0, 0, (*Console).help},
	}
}

func (c *Console) help(_ []string) {
	names := make([]string, 0, len(commands)+1)
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	c.println("Available commands:")
	for _, name := range names {
		cmd := commands[name]
		c.printf("    %s - %s\n", cmd.usage, cmd.help)
	}
	c.println("    EXIT - Terminates the program execution.")
}

func (c *Console) numberOfVideos(_ []string) {
	c.printf("%d videos in the library\n", c.player.VideoCount())
}

func (c *Console) showAllVideos(_ []string) {
	c.println("Here's a list of all available videos:")
	for _, v := range c.player.Videos() {
		c.println("  " + describeInfo(v))
	}
}

func (c *Console) play(args []string) {
	res, err := c.player.Play(args[0])
	if err != nil {
		c.fail("Cannot play video", err)
		return
	}
	c.printPlay(res)
}

func (c *Console) playRandom(_ []string) {
	res, err := c.player.PlayRandom()
	if err != nil {
		if player.KindOf(err) == player.KindNotFound {
			c.println("No videos available")
			return
		}
		c.fail("Cannot play video", err)
		return
	}
	c.printPlay(res)
}

func (c *Console) printPlay(res player.PlayResult) {
	if res.Stopped != nil {
		c.println("Stopping video: " + res.Stopped.Title)
	}
	c.println("Playing video: " + res.Playing.Title)
}

func (c *Console) stop(_ []string) {
	v, err := c.player.Stop()
	if err != nil {
		c.fail("Cannot stop video", err)
		return
	}
	c.println("Stopping video: " + v.Title)
}

func (c *Console) pause(_ []string) {
	v, err := c.player.Pause()
	if err != nil {
		if errors.Is(err, player.ErrAlreadyPaused) {
			active, _ := c.player.ShowPlaying()
			c.println("Video already paused: " + active.Video.Title)
			return
		}
		c.fail("Cannot pause video", err)
		return
	}
	c.println("Pausing video: " + v.Title)
}

func (c *Console) resume(_ []string) {
	v, err := c.player.Continue()
	if err != nil {
		c.fail("Cannot continue video", err)
		return
	}
	c.println("Continuing video: " + v.Title)
}

func (c *Console) showPlaying(_ []string) {
	now, ok := c.player.ShowPlaying()
	if !ok {
		c.println("No video is currently playing")
		return
	}
	line := "Currently playing: " + describe(now.Video)
	if now.Paused {
		line += " - PAUSED"
	}
	c.println(line)
}

func (c *Console) createPlaylist(args []string) {
	if _, err := c.player.CreatePlaylist(args[0]); err != nil {
		c.fail("Cannot create playlist", err)
		return
	}
	c.println("Successfully created new playlist: " + args[0])
}

func (c *Console) addToPlaylist(args []string) {
	name, id := args[0], args[1]
	v, err := c.player.AddToPlaylist(name, id)
	if err != nil {
		c.fail("Cannot add video to "+name, err)
		return
	}
	c.printf("Added video to %s: %s\n", name, v.Title)
}

func (c *Console) removeFromPlaylist(args []string) {
	name, id := args[0], args[1]
	v, err := c.player.RemoveFromPlaylist(name, id)
	if err != nil {
		c.fail("Cannot remove video from "+name, err)
		return
	}
	c.printf("Removed video from %s: %s\n", name, v.Title)
}

func (c *Console) clearPlaylist(args []string) {
	if err := c.player.ClearPlaylist(args[0]); err != nil {
		c.fail("Cannot clear playlist "+args[0], err)
		return
	}
	c.println("Successfully removed all videos from " + args[0])
}

func (c *Console) deletePlaylist(args []string) {
	if err := c.player.DeletePlaylist(args[0]); err != nil {
		c.fail("Cannot delete playlist "+args[0], err)
		return
	}
	c.println("Deleted playlist: " + args[0])
}

func (c *Console) showPlaylist(args []string) {
	view, err := c.player.Playlist(args[0])
	if err != nil {
		c.fail("Cannot show playlist "+args[0], err)
		return
	}
	c.println("Showing playlist: " + args[0])
	if len(view.Videos) == 0 {
		c.println("  No videos here yet")
		return
	}
	for _, v := range view.Videos {
		c.println("  " + describeInfo(v))
	}
}

func (c *Console) showAllPlaylists(_ []string) {
	all := c.player.Playlists()
	if len(all) == 0 {
		c.println("No playlists exist yet")
		return
	}
	c.println("Showing all playlists:")
	for _, p := range all {
		c.println("  " + p.Name)
	}
}

func (c *Console) exportPlaylist(args []string) {
	view, err := c.player.Playlist(args[0])
	if err != nil {
		c.fail("Cannot export playlist "+args[0], err)
		return
	}

	var path string
	switch {
	case len(args) == 2:
		path = args[1]
	case isFileName(view.Name):
		path = filepath.Join(c.exportDir, view.Name+".wpl")
	default:
		c.printf("Cannot export playlist %s: name cannot be used as a file name, give a file to write to\n", args[0])
		return
	}

	items := make([]playlist.Item, len(view.Videos))
	for i, v := range view.Videos {
		items[i] = playlist.Item{Src: v.ID, Title: v.Title}
	}

	if err := writeWPL(path, view.Name, items); err != nil {
		c.printf("Cannot export playlist %s: %v\n", args[0], err)
		return
	}
	c.printf("Exported playlist %s to %s\n", args[0], path)
}

// isFileName reports whether name stays inside the directory it is
// joined to.
func isFileName(name string) bool {
	return name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// importPlaylist creates a playlist from a WPL file. The playlist is named
// after the file's title unless a name is given; media entries are added
// by id and entries that cannot be added are reported and skipped.
func (c *Console) importPlaylist(args []string) {
	file := args[0]
	title, items, err := readWPL(file)
	if err != nil {
		c.printf("Cannot import playlist from %s: %v\n", file, err)
		return
	}

	name := strings.Join(strings.Fields(title), "_")
	if len(args) == 2 {
		name = args[1]
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}

	p, err := c.player.CreatePlaylist(name)
	if err != nil {
		c.fail("Cannot import playlist "+name, err)
		return
	}

	added := 0
	for _, item := range items {
		if _, err := c.player.AddToPlaylist(p.Name, item.Src); err != nil {
			c.printf("  Skipped %s: %s\n", item.Src, message(err))
			continue
		}
		added++
	}
	c.printf("Imported %d of %d videos into %s from %s\n", added, len(items), p.Name, file)
}

func readWPL(path string) (string, []playlist.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	return playlist.DecodeWPL(f)
}

func writeWPL(path, title string, items []playlist.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := playlist.EncodeWPL(f, title, items); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *Console) searchVideos(args []string) {
	c.offerMatches(args[0], c.player.Search(args[0]))
}

func (c *Console) searchVideosWithTag(args []string) {
	c.offerMatches(args[0], c.player.SearchByTag(args[0]))
}

// offerMatches lists matches and reads the next line as a 1-based
// selection. Anything that is not a valid number is taken as a no.
func (c *Console) offerMatches(term string, matches []catalog.Video) {
	if len(matches) == 0 {
		c.println("No search results for " + term)
		return
	}

	c.printf("Here are the results for %s:\n", term)
	for i, v := range matches {
		c.printf("  %d) %s\n", i+1, describe(v))
	}
	c.println("Would you like to play any of the above? If yes, specify the number of the video.")
	c.println("If your answer is not a valid number, we will assume it's a no.")

	line, ok := c.readLine()
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(matches) {
		return
	}

	res, err := c.player.PlayFromMatches(matches, n-1)
	if err != nil {
		c.fail("Cannot play video", err)
		return
	}
	c.printPlay(res)
}

func (c *Console) flagVideo(args []string) {
	reason := strings.Join(args[1:], " ")
	res, err := c.player.Flag(args[0], reason)
	if err != nil {
		c.fail("Cannot flag video", err)
		return
	}
	if res.Stopped {
		c.println("Stopping video: " + res.Video.Title)
	}
	c.printf("Successfully flagged video: %s (reason: %s)\n", res.Video.Title, reasonText(res.Reason))
}

func (c *Console) allowVideo(args []string) {
	v, err := c.player.Allow(args[0])
	if err != nil {
		c.fail("Cannot remove flag from video", err)
		return
	}
	c.println("Successfully removed flag from video: " + v.Title)
}

// describe formats a video as "title (id) [tags]".
func describe(v catalog.Video) string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, strings.Join(v.Tags, " "))
}

func describeInfo(v player.VideoInfo) string {
	s := describe(v.Video)
	if v.Flagged {
		s += " - FLAGGED (reason: " + reasonText(v.FlagReason) + ")"
	}
	return s
}

func reasonText(reason string) string {
	if reason == "" {
		return noReason
	}
	return reason
}
