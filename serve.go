package main

import (
	"context"
	"net/http"

	wad "github.com/anime-v1/web-ui/handlers/admin"
	wac "github.com/anime-v1/web-ui/handlers/admin/categories"
	wae "github.com/anime-v1/web-ui/handlers/admin/episodes"
	wav "github.com/anime-v1/web-ui/handlers/admin/videos"
	wau "github.com/anime-v1/web-ui/handlers/auth"
	wh "github.com/anime-v1/web-ui/handlers/home"
	sess "github.com/anime-v1/web-ui/handlers/session"
	sta "github.com/anime-v1/web-ui/handlers/static"
	"github.com/anime-v1/web-ui/services/catalog"
	"github.com/anime-v1/web-ui/services/common"
	"github.com/anime-v1/web-ui/services/template"
	"github.com/anime-v1/web-ui/services/uploads"
	w "github.com/anime-v1/web-ui/services/web"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = catalog.RegisterFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = common.RegisterFlags(c.Flags)
	c.Flags = template.RegisterFlags(c.Flags)
	c.Flags = sta.RegisterFlags(c.Flags)
	c.Flags = uploads.RegisterFlags(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting template renderer
	re := multitemplate.NewRenderer()

	// Setting TemplateManager
	tm := template.NewManager[*w.Context](c, re).
		WithHelper(w.NewHelper(c))

	var servers []cs.Servable
	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Gin
	r := gin.Default()
	r.RedirectTrailingSlash = false
	r.HTMLRender = re

	// Setting Web
	web, err := w.New(c, r)
	if err != nil {
		return err
	}
	servers = append(servers, web)
	defer web.Close()

	// Setting Session
	err = sess.RegisterHandler(c, r)
	if err != nil {
		return err
	}

	// Setting Catalog Api
	api := catalog.New(c, cl)
	categories := catalog.NewCategories(api)
	videos := catalog.NewVideos(api)
	episodes := catalog.NewEpisodes(api)

	// Setting Static
	err = sta.RegisterHandler(c, r)
	if err != nil {
		return err
	}

	// Setting Uploads
	up, err := uploads.New(context.Background(), c)
	if err != nil {
		return err
	}

	// Setting AuthHandler
	wau.RegisterHandler(r, tm, api)

	// Setting HomeHandler
	wh.RegisterHandler(r, tm, categories, videos)

	// Setting AdminHandlers
	wad.RegisterHandler(r, tm)
	wac.RegisterHandler(r, tm, categories)
	wav.RegisterHandler(r, tm, categories, videos, up)
	wae.RegisterHandler(r, tm, videos, episodes)

	// Render templates
	err = tm.Init()
	if err != nil {
		return err
	}

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}
