package request

import (
	"math"

	"pricing-cms/pkg/utils"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100

	// MaxPage keeps (page-1)*MaxPerPage inside a Postgres integer OFFSET
	MaxPage = math.MaxInt32 / MaxPerPage
)

type PaginatedRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// CurrentPage is Page clamped to [1, MaxPage]
func (p PaginatedRequest) CurrentPage() int {
	if p.Page < 1 {
		return 1
	}
	if p.Page > MaxPage {
		return MaxPage
	}
	return p.Page
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.CurrentPage(), p.Limit())
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		return MaxPerPage
	}
	return p.PerPage
}
