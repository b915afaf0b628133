package services

import (
	"github.com/hectorDev2/macao-comanda/entity"
	"github.com/hectorDev2/macao-comanda/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuCategoryOut struct {
	Category string        `json:"category"`
	Items    []entity.Menu `json:"items"`
}

// ListGrouped returns active menu items bucketed by category, preserving
// the repository's category/name ordering.
func (s *MenuService) ListGrouped() ([]MenuCategoryOut, error) {
	items, err := s.Repo.ListActive()
	if err != nil {
		return nil, err
	}

	out := make([]MenuCategoryOut, 0)
	for _, m := range items {
		if n := len(out); n > 0 && out[n-1].Category == m.Category {
			out[n-1].Items = append(out[n-1].Items, m)
			continue
		}
		out = append(out, MenuCategoryOut{Category: m.Category, Items: []entity.Menu{m}})
	}
	return out, nil
}
