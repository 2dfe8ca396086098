package admin

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/anime-v1/web-ui/services/catalog"
)

// EpisodeClient is the slice of the catalog episode client the
// coordinator drives.
type EpisodeClient interface {
	ListByVideo(ctx context.Context, videoID int64) []catalog.Episode
	Create(ctx context.Context, payload *catalog.Episode) (*catalog.Episode, error)
	Update(ctx context.Context, id int64, payload *catalog.Episode) (*catalog.Episode, error)
	Delete(ctx context.Context, id int64) error
}

// VideoGetter fetches one video, used for the selected parent's title.
type VideoGetter interface {
	Get(ctx context.Context, id int64) (*catalog.Video, error)
}

// Coordinator ties the episode list to the currently selected video.
// Selection flows one way only: picking a parent refreshes the child
// list, never the reverse.
type Coordinator struct {
	mu       sync.Mutex
	selected *int64
	title    string

	vm     *ViewModel[EpisodeForm]
	videos VideoGetter
}

func NewCoordinator(eps EpisodeClient, videos VideoGetter) *Coordinator {
	co := &Coordinator{
		videos: videos,
	}
	co.vm = NewViewModel[EpisodeForm](&episodeStore{eps: eps, co: co}, Config[EpisodeForm]{
		ID: func(f *EpisodeForm) int64 {
			return f.ID
		},
		Fresh: func() *EpisodeForm {
			return &EpisodeForm{Type: LinkTypeURL}
		},
		Validate: ValidateEpisode,
	})
	return co
}

// Episodes exposes the child view-model the coordinator owns.
func (s *Coordinator) Episodes() *ViewModel[EpisodeForm] {
	return s.vm
}

// Selection returns the selected video id and its display title.
func (s *Coordinator) Selection() (*int64, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.title
}

// Select switches the parent video. Any open episode dialog or pending
// delete is discarded: a draft written against one video must not be
// submitted against another. Selecting nothing clears the child list
// locally without a network call; a real selection replaces the list
// with the parent's episodes and fetches its title.
func (s *Coordinator) Select(ctx context.Context, id *int64) error {
	s.mu.Lock()
	if sameSelection(s.selected, id) {
		s.mu.Unlock()
		return nil
	}
	s.selected = id
	s.title = ""
	s.mu.Unlock()

	s.vm.CloseDialog()
	s.vm.CancelDelete()
	s.vm.Clear()

	if id == nil {
		return nil
	}

	if v, err := s.videos.Get(ctx, *id); err != nil {
		log.WithError(err).WithField("video_id", *id).Error("failed to fetch video title")
	} else if v != nil {
		s.mu.Lock()
		s.title = v.Title
		s.mu.Unlock()
	}

	return s.vm.Refresh(ctx)
}

func sameSelection(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// episodeStore scopes the episode client to the coordinator's current
// selection and translates between dialog forms and catalog episodes.
type episodeStore struct {
	eps EpisodeClient
	co  *Coordinator
}

func (s *episodeStore) List(ctx context.Context) ([]EpisodeForm, error) {
	id, _ := s.co.Selection()
	if id == nil {
		return nil, nil
	}
	eps := s.eps.ListByVideo(ctx, *id)
	forms := make([]EpisodeForm, 0, len(eps))
	for _, ep := range eps {
		forms = append(forms, formFromEpisode(ep))
	}
	return forms, nil
}

func (s *episodeStore) Create(ctx context.Context, draft *EpisodeForm) error {
	id, _ := s.co.Selection()
	if id == nil {
		return errors.New("no video selected")
	}
	_, err := s.eps.Create(ctx, episodeFromForm(draft, *id))
	return err
}

func (s *episodeStore) Update(ctx context.Context, epID int64, draft *EpisodeForm) error {
	id, _ := s.co.Selection()
	if id == nil {
		return errors.New("no video selected")
	}
	_, err := s.eps.Update(ctx, epID, episodeFromForm(draft, *id))
	return err
}

func (s *episodeStore) Delete(ctx context.Context, epID int64) error {
	return s.eps.Delete(ctx, epID)
}
