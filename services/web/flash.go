package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/anime-v1/web-ui/services/catalog"
)

// Flash is one auto-dismissing notification. Every save/delete outcome
// produces exactly one; they stack but are never queued beyond that.
type Flash struct {
	Kind    string
	Message string
}

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// RedirectWithError sends the user back where they came from with a
// one-shot error message.
func RedirectWithError(c *gin.Context, err error) {
	log.WithError(err).Error("request failed")
	addFlash(c, FlashError, userMessage(err))
	c.Redirect(http.StatusFound, backURL(c))
}

// RedirectWithSuccessAndMessage sends the user back where they came from
// with a one-shot success message.
func RedirectWithSuccessAndMessage(c *gin.Context, message string) {
	addFlash(c, FlashSuccess, message)
	c.Redirect(http.StatusFound, backURL(c))
}

func backURL(c *gin.Context) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return "/"
}

// userMessage prefers what the catalog said over how we wrapped it.
func userMessage(err error) string {
	var re *catalog.RemoteError
	if errors.As(err, &re) {
		return re.Message
	}
	return err.Error()
}

func addFlash(c *gin.Context, kind string, message string) {
	s := sessions.Default(c)
	s.AddFlash(kind + "|" + message)
	if err := s.Save(); err != nil {
		log.WithError(err).Error("failed to save flash")
	}
}

func popFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save()
	flashes := make([]Flash, 0, len(raw))
	for _, r := range raw {
		v, ok := r.(string)
		if !ok {
			continue
		}
		kind, message, found := strings.Cut(v, "|")
		if !found {
			kind, message = FlashSuccess, v
		}
		flashes = append(flashes, Flash{
			Kind:    kind,
			Message: message,
		})
	}
	return flashes
}
