package catalog

import (
	"context"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const episodesPath = "/api/episodes"

type Episodes struct {
	api *Api
}

func NewEpisodes(api *Api) *Episodes {
	return &Episodes{
		api: api,
	}
}

// ListByVideo returns the episodes owned by one video. Same degrade
// policy as the video listing: failures are logged and an empty list is
// returned.
func (s *Episodes) ListByVideo(ctx context.Context, videoID int64) []Episode {
	var out []Episode
	if err := s.api.do(ctx, http.MethodGet, fmt.Sprintf("%v/video/%v", episodesPath, videoID), nil, &out); err != nil {
		log.WithError(err).WithField("video_id", videoID).Error("failed to list episodes")
		return nil
	}
	return out
}

func (s *Episodes) Create(ctx context.Context, payload *Episode) (*Episode, error) {
	out := &Episode{}
	if err := s.api.do(ctx, http.MethodPost, episodesPath, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Episodes) Update(ctx context.Context, id int64, payload *Episode) (*Episode, error) {
	out := &Episode{}
	if err := s.api.do(ctx, http.MethodPut, fmt.Sprintf("%v/%v", episodesPath, id), payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Episodes) Delete(ctx context.Context, id int64) error {
	return s.api.do(ctx, http.MethodDelete, fmt.Sprintf("%v/%v", episodesPath, id), nil, nil)
}
