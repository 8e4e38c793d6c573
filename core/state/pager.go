// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import (
	"slices"

	"github.com/toeirei/fxconsole/core/model"
)

// Pager owns page number and size of the currency list. Only the pager
// changes them; the list store writes back what the server confirmed.
type Pager struct {
	PageNumber   int
	PageSize     int
	Total        int
	AllowedSizes []int
}

func NewPager(pageSize int, allowed []int) Pager {
	if !slices.Contains(allowed, pageSize) && len(allowed) > 0 {
		pageSize = allowed[0]
	}
	return Pager{PageNumber: 1, PageSize: pageSize, AllowedSizes: allowed}
}

// Request is the page the list is currently showing.
func (p Pager) Request() model.PageRequest {
	return model.PageRequest{PageNumber: p.PageNumber, PageSize: p.PageSize}
}

// SetPageNumber moves to n. Pages past the estimated end are requested
// anyway; the server decides what the last page is.
func (p Pager) SetPageNumber(n int) (Pager, model.PageRequest) {
	p.PageNumber = max(n, 1)
	return p, p.Request()
}

// SetPageSize changes density and starts over at page 1. Sizes outside the
// allowed set are refused.
func (p Pager) SetPageSize(n int) (Pager, model.PageRequest, bool) {
	if !p.IsAllowedSize(n) {
		return p, p.Request(), false
	}
	p.PageSize = n
	p.PageNumber = 1
	return p, p.Request(), true
}

func (p Pager) IsAllowedSize(n int) bool {
	return slices.Contains(p.AllowedSizes, n)
}

// StepSize returns the allowed size step positions away from the current
// one, clamped to the ends of the set.
func (p Pager) StepSize(step int) int {
	i := slices.Index(p.AllowedSizes, p.PageSize)
	if i < 0 {
		return p.PageSize
	}
	i = min(max(i+step, 0), len(p.AllowedSizes)-1)
	return p.AllowedSizes[i]
}

// TotalPages is a client-side estimate used to enable prev/next only.
func (p Pager) TotalPages() int {
	if p.PageSize <= 0 {
		return 1
	}
	return max(1, (p.Total+p.PageSize-1)/p.PageSize)
}

func (p Pager) HasPrev() bool { return p.PageNumber > 1 }

func (p Pager) HasNext() bool { return p.PageNumber < p.TotalPages() }
