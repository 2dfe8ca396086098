package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	embedRe = regexp.MustCompile(`embed/([^?]+)`)
	watchRe = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)
)

// ExtractVideoID pulls a YouTube video id out of an embed, short or
// watch URL. Standard ids are 11 characters; anything else is rejected
// except in the embed/<id> form. Returns "" when no id can be found.
func ExtractVideoID(link string) string {
	if m := embedRe.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	if m := watchRe.FindStringSubmatch(link); m != nil && len(m[2]) == 11 {
		return m[2]
	}
	return ""
}

// IsEmbed sniffs whether a stored link is raw embed markup rather than a
// URL. The dialog's link/embed toggle is advisory only, so display code
// relies on this check instead.
func IsEmbed(link string) bool {
	return strings.Contains(link, "<iframe")
}

func IsYouTubeURL(link string) bool {
	return strings.Contains(link, "youtube.com") || strings.Contains(link, "youtu.be")
}

func WatchURL(id string) string {
	return "https://youtube.com/watch?v=" + id
}

func thumbnailURL(id string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%v/mqdefault.jpg", id)
}

type DisplayKind int

const (
	// KindLink renders an open-link action, with a thumbnail when a
	// video id could be extracted.
	KindLink DisplayKind = iota
	// KindEmbedWatch renders an open-externally action for embed markup
	// with an extractable video id.
	KindEmbedWatch
	// KindEmbedBadge renders a generic badge for opaque embed markup.
	KindEmbedBadge
)

type Display struct {
	Kind      DisplayKind
	VideoID   string
	Thumbnail string
	WatchURL  string
}

func (d Display) IsLink() bool       { return d.Kind == KindLink }
func (d Display) IsEmbedWatch() bool { return d.Kind == KindEmbedWatch }
func (d Display) IsEmbedBadge() bool { return d.Kind == KindEmbedBadge }

// Classify derives how a stored episode link should be presented. It is
// recomputed from the link alone on every render; nothing is stored.
func Classify(link string) Display {
	if IsEmbed(link) {
		if id := ExtractVideoID(link); id != "" {
			return Display{
				Kind:     KindEmbedWatch,
				VideoID:  id,
				WatchURL: WatchURL(id),
			}
		}
		return Display{
			Kind: KindEmbedBadge,
		}
	}
	d := Display{
		Kind: KindLink,
	}
	if id := ExtractVideoID(link); id != "" {
		d.VideoID = id
		d.Thumbnail = thumbnailURL(id)
		d.WatchURL = WatchURL(id)
	}
	return d
}
