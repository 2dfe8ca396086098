package catalog

import (
	"context"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const videosPath = "/api/videos"

type Videos struct {
	api *Api
}

func NewVideos(api *Api) *Videos {
	return &Videos{
		api: api,
	}
}

// List degrades to an empty collection when the catalog fails, so list
// views stay render-safe. The failure is logged, not returned.
func (s *Videos) List(ctx context.Context) []Video {
	var out []Video
	if err := s.api.do(ctx, http.MethodGet, videosPath, nil, &out); err != nil {
		log.WithError(err).Error("failed to list videos")
		return nil
	}
	return out
}

func (s *Videos) Get(ctx context.Context, id int64) (*Video, error) {
	out := &Video{}
	if err := s.api.do(ctx, http.MethodGet, fmt.Sprintf("%v/%v", videosPath, id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Videos) Create(ctx context.Context, payload *Video) (*Video, error) {
	out := &Video{}
	if err := s.api.do(ctx, http.MethodPost, videosPath, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Videos) Update(ctx context.Context, id int64, payload *Video) (*Video, error) {
	out := &Video{}
	if err := s.api.do(ctx, http.MethodPut, fmt.Sprintf("%v/%v", videosPath, id), payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Videos) Delete(ctx context.Context, id int64) error {
	return s.api.do(ctx, http.MethodDelete, fmt.Sprintf("%v/%v", videosPath, id), nil, nil)
}
