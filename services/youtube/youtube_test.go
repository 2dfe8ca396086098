package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	for _, tc := range []struct {
		name string
		link string
		id   string
	}{
		{"short link", "https://youtu.be/abc12345678", "abc12345678"},
		{"watch link", "https://www.youtube.com/watch?v=abc12345678", "abc12345678"},
		{"watch link with extra params", "https://www.youtube.com/watch?v=abc12345678&t=42", "abc12345678"},
		{"embed url", "https://www.youtube.com/embed/abc12345678", "abc12345678"},
		{"embed url with query", "https://www.youtube.com/embed/abc12345678?rel=0", "abc12345678"},
		{"watch id of wrong length", "https://www.youtube.com/watch?v=short", ""},
		{"plain file link", "https://example.com/video.mp4", ""},
		{"empty", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.id, ExtractVideoID(tc.link))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("youtube link gets a thumbnail and watch url", func(t *testing.T) {
		d := Classify("https://youtu.be/abc12345678")
		assert.Equal(t, KindLink, d.Kind)
		assert.Equal(t, "abc12345678", d.VideoID)
		assert.Equal(t, "https://img.youtube.com/vi/abc12345678/mqdefault.jpg", d.Thumbnail)
		assert.Equal(t, "https://youtube.com/watch?v=abc12345678", d.WatchURL)
	})

	t.Run("plain link stays a bare link", func(t *testing.T) {
		d := Classify("https://example.com/video.mp4")
		assert.Equal(t, KindLink, d.Kind)
		assert.Empty(t, d.VideoID)
		assert.Empty(t, d.Thumbnail)
	})

	t.Run("embed markup with an id points at youtube", func(t *testing.T) {
		d := Classify(`<iframe src="https://www.youtube.com/embed/abc12345678?rel=0"></iframe>`)
		assert.Equal(t, KindEmbedWatch, d.Kind)
		assert.Equal(t, "abc12345678", d.VideoID)
		assert.Equal(t, "https://youtube.com/watch?v=abc12345678", d.WatchURL)
	})

	t.Run("opaque embed markup falls back to a badge", func(t *testing.T) {
		d := Classify(`<iframe src="https://player.example.com/x"></iframe>`)
		assert.Equal(t, KindEmbedBadge, d.Kind)
		assert.Empty(t, d.VideoID)
	})
}

func TestIsEmbed(t *testing.T) {
	assert.True(t, IsEmbed(`<iframe src="x"></iframe>`))
	assert.False(t, IsEmbed("https://youtu.be/abc12345678"))
}
