package admin

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/youtube"
)

// LinkType is the dialog's advisory link/embed toggle. Storage does not
// enforce it; display code sniffs the stored value instead.
type LinkType string

const (
	LinkTypeURL   LinkType = "link"
	LinkTypeEmbed LinkType = "embed"
)

// EpisodeForm is the episode draft as edited in the dialog. The episode
// number stays a string until validation has proven it numeric.
type EpisodeForm struct {
	ID          int64
	NumEpisode  string
	LinkEpisode string
	Type        LinkType
}

func formFromEpisode(ep catalog.Episode) EpisodeForm {
	t := LinkTypeURL
	if youtube.IsEmbed(ep.LinkEpisode) {
		t = LinkTypeEmbed
	}
	return EpisodeForm{
		ID:          ep.ID,
		NumEpisode:  strconv.Itoa(ep.NumEpisode),
		LinkEpisode: ep.LinkEpisode,
		Type:        t,
	}
}

// episodeFromForm assumes the form already validated.
func episodeFromForm(f *EpisodeForm, videoID int64) *catalog.Episode {
	num, _ := strconv.Atoi(strings.TrimSpace(f.NumEpisode))
	return &catalog.Episode{
		ID:          f.ID,
		NumEpisode:  num,
		LinkEpisode: f.LinkEpisode,
		Video: &catalog.VideoRef{
			ID: videoID,
		},
	}
}

// ValidateEpisode applies the dialog rules: the episode number must
// parse as a non-negative integer and the link must be present. URL
// syntax is only checked when the declared type is "link"; embed
// payloads are markup, not URLs.
func ValidateEpisode(f *EpisodeForm) map[string]string {
	fields := map[string]string{}
	num := strings.TrimSpace(f.NumEpisode)
	if num == "" {
		fields["numEpisode"] = "episode number is required"
	} else if v, err := strconv.Atoi(num); err != nil {
		fields["numEpisode"] = "episode number must be a number"
	} else if v < 0 {
		fields["numEpisode"] = "episode number must not be negative"
	}
	if strings.TrimSpace(f.LinkEpisode) == "" {
		fields["linkEpisode"] = "episode link is required"
	} else if f.Type != LinkTypeEmbed && !validURL(f.LinkEpisode) {
		fields["linkEpisode"] = "episode link is not a valid URL"
	}
	return fields
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
