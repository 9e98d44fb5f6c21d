package commands

import "strings"

// Command describes one console command
type Command struct {
	Name        string
	Args        string
	Description string
	MinArgs     int
	// MaxArgs of -1 accepts any number of trailing words
	MaxArgs int
}

// Usage renders the command with its argument placeholders
func (c Command) Usage() string {
	if c.Args == "" {
		return c.Name
	}
	return c.Name + " " + c.Args
}

// Accepts reports whether n arguments are valid for the command
func (c Command) Accepts(n int) bool {
	if n < c.MinArgs {
		return false
	}
	return c.MaxArgs < 0 || n <= c.MaxArgs
}

// GetCommands returns all command definitions in help order
func GetCommands() []Command {
	return []Command{
		// Catalog commands
		{Name: "NUM_VIDEOS", Description: "Shows how many videos are in the library."},
		{Name: "SHOW_ALL_VIDEOS", Description: "Lists all videos in the library."},

		// Playback commands
		{Name: "PLAY", Args: "<video_id>", MinArgs: 1, MaxArgs: 1, Description: "Plays specified video."},
		{Name: "PLAY_RANDOM", Description: "Plays a random video from the library."},
		{Name: "STOP", Description: "Stop the current video."},
		{Name: "PAUSE", Description: "Pause the current video."},
		{Name: "CONTINUE", Description: "Resume the current paused video."},
		{Name: "SHOW_PLAYING", Description: "Displays the title, video_id, video tags and paused status of the video that is currently playing (or paused)."},

		// Playlist commands
		{Name: "CREATE_PLAYLIST", Args: "<playlist_name>", MinArgs: 1, MaxArgs: 1, Description: "Creates a new (empty) playlist with the provided name."},
		{Name: "ADD_TO_PLAYLIST", Args: "<playlist_name> <video_id>", MinArgs: 2, MaxArgs: 2, Description: "Adds the requested video to the playlist."},
		{Name: "REMOVE_FROM_PLAYLIST", Args: "<playlist_name> <video_id>", MinArgs: 2, MaxArgs: 2, Description: "Removes the specified video from the specified playlist."},
		{Name: "CLEAR_PLAYLIST", Args: "<playlist_name>", MinArgs: 1, MaxArgs: 1, Description: "Removes all the videos from the playlist."},
		{Name: "DELETE_PLAYLIST", Args: "<playlist_name>", MinArgs: 1, MaxArgs: 1, Description: "Deletes the playlist."},
		{Name: "SHOW_PLAYLIST", Args: "<playlist_name>", MinArgs: 1, MaxArgs: 1, Description: "List all the videos in this playlist."},
		{Name: "SHOW_ALL_PLAYLISTS", Description: "Display all the available playlists."},

		// Search commands
		{Name: "SEARCH_VIDEOS", Args: "<search_term>", MinArgs: 1, MaxArgs: 1, Description: "Display all the videos whose titles contain the search_term."},
		{Name: "SEARCH_VIDEOS_WITH_TAG", Args: "<tag_name>", MinArgs: 1, MaxArgs: 1, Description: "Display all videos whose tags contains the provided tag."},

		// Moderation commands
		{Name: "FLAG_VIDEO", Args: "<video_id> [flag_reason]", MinArgs: 1, MaxArgs: -1, Description: "Mark a video as flagged."},
		{Name: "ALLOW_VIDEO", Args: "<video_id>", MinArgs: 1, MaxArgs: 1, Description: "Removes a flag from a video."},

		// Utility commands
		{Name: "HELP", Description: "Displays help."},
		{Name: "EXIT", Description: "Terminates the program execution."},
	}
}

// lookupCommand finds a command by name, ignoring case
func lookupCommand(name string) (Command, bool) {
	name = strings.ToUpper(name)
	for _, cmd := range GetCommands() {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return Command{}, false
}
