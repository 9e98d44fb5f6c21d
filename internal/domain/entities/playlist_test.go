package entities_test

import (
	"reflect"
	"testing"

	"github.com/vuongmanhnghia/video-player/internal/domain/entities"
)

func TestPlaylistCreation(t *testing.T) {
	playlist := entities.NewPlaylist("My_Mix")

	if playlist.Name() != "My_Mix" {
		t.Errorf("Expected name My_Mix, got %s", playlist.Name())
	}

	if playlist.Len() != 0 {
		t.Error("New playlist should be empty")
	}
}

func TestPlaylistAddIsSetLike(t *testing.T) {
	playlist := entities.NewPlaylist("mix")

	if !playlist.Add("amazing_cats_video_id") {
		t.Fatal("First add should succeed")
	}

	if playlist.Add("amazing_cats_video_id") {
		t.Error("Second add of the same id should return false")
	}

	if playlist.Len() != 1 {
		t.Errorf("Expected exactly one occurrence, got %d", playlist.Len())
	}
}

func TestPlaylistKeepsInsertionOrder(t *testing.T) {
	playlist := entities.NewPlaylist("mix")
	playlist.Add("c")
	playlist.Add("a")
	playlist.Add("b")

	expected := []string{"c", "a", "b"}
	if got := playlist.Videos(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPlaylistRemove(t *testing.T) {
	playlist := entities.NewPlaylist("mix")
	playlist.Add("a")
	playlist.Add("b")
	playlist.Add("c")

	if playlist.Remove("missing") {
		t.Error("Removing an absent id should return false")
	}
	if playlist.Len() != 3 {
		t.Errorf("Failed remove should leave playlist unchanged, got %d videos", playlist.Len())
	}

	if !playlist.Remove("b") {
		t.Fatal("Removing a present id should return true")
	}

	expected := []string{"a", "c"}
	if got := playlist.Videos(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v after removal, got %v", expected, got)
	}

	if playlist.Remove("b") {
		t.Error("Removing an absent id should return false")
	}
}

func TestPlaylistClear(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
	}{
		{name: "empty", ids: nil},
		{name: "one video", ids: []string{"a"}},
		{name: "many videos", ids: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			playlist := entities.NewPlaylist("mix")
			for _, id := range tt.ids {
				playlist.Add(id)
			}

			playlist.Clear()

			if got := playlist.Videos(); len(got) != 0 {
				t.Errorf("Expected empty playlist after clear, got %v", got)
			}
		})
	}
}

func TestPlaylistVideosReturnsCopy(t *testing.T) {
	playlist := entities.NewPlaylist("mix")
	playlist.Add("a")

	ids := playlist.Videos()
	ids[0] = "mutated"

	if got := playlist.Videos(); got[0] != "a" {
		t.Errorf("Mutating the returned slice must not change the playlist, got %v", got)
	}
}
