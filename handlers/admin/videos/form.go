package videos

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/anime-v1/web-ui/services/admin"
	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/web"
)

const indexPath = "/admin/videos"

func (s *Handler) beginCreate(c *gin.Context) {
	s.vm.BeginCreate()
	c.Redirect(http.StatusFound, indexPath)
}

func (s *Handler) beginEdit(c *gin.Context) {
	id, err := strconv.ParseInt(c.PostForm("id"), 10, 64)
	if err != nil {
		web.RedirectWithError(c, errors.New("bad video id"))
		return
	}
	if !s.vm.BeginEdit(id) {
		web.RedirectWithError(c, errors.New("video not found"))
		return
	}
	c.Redirect(http.StatusFound, indexPath)
}

func (s *Handler) closeDialog(c *gin.Context) {
	s.vm.CloseDialog()
	c.Redirect(http.StatusFound, indexPath)
}

// save copies the submitted fields into the draft, snapshotting the
// selected categories as id+name pairs. Renaming a category later does
// not touch videos saved with this snapshot.
func (s *Handler) save(c *gin.Context) {
	ctx := c.Request.Context()

	snapshot, err := s.categorySnapshot(c)
	if err != nil {
		web.RedirectWithError(c, err)
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	image := c.PostForm("image")
	s.vm.UpdateDraft("title", func(v *catalog.Video) {
		v.Title = title
	})
	s.vm.UpdateDraft("description", func(v *catalog.Video) {
		v.Description = description
	})
	s.vm.UpdateDraft("image", func(v *catalog.Video) {
		v.Image = image
	})
	s.vm.UpdateDraft("categories", func(v *catalog.Video) {
		v.Categories = snapshot
	})

	err = s.vm.Save(ctx)
	if err != nil {
		var verr *admin.ValidationError
		if errors.As(err, &verr) {
			c.Redirect(http.StatusFound, indexPath)
			return
		}
		web.RedirectWithError(c, err)
		return
	}
	web.RedirectWithSuccessAndMessage(c, "Video saved")
}

// categorySnapshot resolves the submitted category ids against the
// current category list.
func (s *Handler) categorySnapshot(c *gin.Context) ([]catalog.Category, error) {
	ids := c.PostFormArray("categories")
	if len(ids) == 0 {
		return nil, nil
	}
	all, err := s.categories.List(c.Request.Context())
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]catalog.Category, len(all))
	for _, cat := range all {
		byID[cat.ID] = cat
	}
	var snapshot []catalog.Category
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("bad category id")
		}
		cat, ok := byID[id]
		if !ok {
			return nil, errors.Errorf("unknown category %v", id)
		}
		snapshot = append(snapshot, catalog.Category{
			ID:   cat.ID,
			Name: cat.Name,
		})
	}
	return snapshot, nil
}
