package catalog

import (
	"context"
	"fmt"
	"net/http"
)

const categoriesPath = "/api/categories"

type Categories struct {
	api *Api
}

func NewCategories(api *Api) *Categories {
	return &Categories{
		api: api,
	}
}

// List returns all categories. Unlike the video and episode listings the
// failure is propagated to the caller.
func (s *Categories) List(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := s.api.do(ctx, http.MethodGet, categoriesPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Categories) Get(ctx context.Context, id int64) (*Category, error) {
	out := &Category{}
	if err := s.api.do(ctx, http.MethodGet, fmt.Sprintf("%v/%v", categoriesPath, id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Categories) Create(ctx context.Context, payload *Category) (*Category, error) {
	out := &Category{}
	if err := s.api.do(ctx, http.MethodPost, categoriesPath, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Categories) Update(ctx context.Context, id int64, payload *Category) (*Category, error) {
	out := &Category{}
	if err := s.api.do(ctx, http.MethodPut, fmt.Sprintf("%v/%v", categoriesPath, id), payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Categories) Delete(ctx context.Context, id int64) error {
	return s.api.do(ctx, http.MethodDelete, fmt.Sprintf("%v/%v", categoriesPath, id), nil, nil)
}
