package template

import (
	"html/template"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const (
	templatesPathFlag = "templates-path"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   templatesPathFlag,
			Usage:  "templates path",
			Value:  "./templates",
			EnvVar: "TEMPLATES_PATH",
		},
	)
}

// Context is what views render against. It carries the gin context so a
// built view can write itself out.
type Context interface {
	RenderContext() *gin.Context
}

// Helper contributes functions to every template.
type Helper interface {
	FuncMap() template.FuncMap
}

type registration struct {
	pattern string
	layout  string
}

// Manager collects view registrations from handlers and parses them all
// at once in Init, after every handler had its say.
type Manager[C Context] struct {
	re    multitemplate.Renderer
	path  string
	funcs template.FuncMap
	regs  []*registration
}

func NewManager[C Context](c *cli.Context, re multitemplate.Renderer) *Manager[C] {
	return &Manager[C]{
		re:    re,
		path:  c.String(templatesPathFlag),
		funcs: template.FuncMap{},
	}
}

func (m *Manager[C]) WithHelper(h Helper) *Manager[C] {
	for k, v := range h.FuncMap() {
		m.funcs[k] = v
	}
	return m
}

// MustRegisterViews queues every view matching pattern (relative to the
// views dir, without extension) for parsing.
func (m *Manager[C]) MustRegisterViews(pattern string) *Builder[C] {
	r := &registration{
		pattern: pattern,
	}
	m.regs = append(m.regs, r)
	return &Builder[C]{
		m:   m,
		reg: r,
	}
}

func (m *Manager[C]) Init() error {
	for _, reg := range m.regs {
		files, err := filepath.Glob(filepath.Join(m.path, "views", reg.pattern+".html"))
		if err != nil {
			return errors.Wrap(err, "failed to glob views")
		}
		if len(files) == 0 {
			return errors.Errorf("no views match %v", reg.pattern)
		}
		for _, f := range files {
			name, err := m.viewName(f)
			if err != nil {
				return err
			}
			tpls := []string{f}
			if reg.layout != "" {
				tpls = append([]string{filepath.Join(m.path, "layouts", reg.layout+".html")}, tpls...)
			}
			m.re.AddFromFilesFuncs(templateKey(reg.layout, name), m.funcs, tpls...)
		}
	}
	return nil
}

func (m *Manager[C]) viewName(file string) (string, error) {
	rel, err := filepath.Rel(filepath.Join(m.path, "views"), file)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve view name")
	}
	return strings.TrimSuffix(filepath.ToSlash(rel), ".html"), nil
}

func templateKey(layout string, name string) string {
	if layout == "" {
		return name
	}
	return layout + ":" + name
}

// Builder binds a layout to a set of registered views.
type Builder[C Context] struct {
	m   *Manager[C]
	reg *registration
}

func (b *Builder[C]) WithLayout(name string) *Builder[C] {
	b.reg.layout = name
	return b
}

func (b *Builder[C]) Build(name string) *View[C] {
	return &View[C]{
		key: templateKey(b.reg.layout, name),
	}
}

type View[C Context] struct {
	key string
}

func (v *View[C]) HTML(code int, ctx C) {
	ctx.RenderContext().HTML(code, v.key, ctx)
}
