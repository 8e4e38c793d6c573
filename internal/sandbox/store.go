// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package sandbox

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	CodeMaxLen     = 3
	SignMaxLen     = 3
	FullNameMinLen = 3
	FullNameMaxLen = 40

	// inverse rates are rounded to this many places
	inversePlaces = 6
)

// APIError carries the status and the message written as {"message": ...}.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return fmt.Sprintf("%d %s", e.Status, e.Message) }

func badRequest(msg string) error { return &APIError{Status: http.StatusBadRequest, Message: msg} }
func notFound(msg string) error   { return &APIError{Status: http.StatusNotFound, Message: msg} }
func conflict(msg string) error   { return &APIError{Status: http.StatusConflict, Message: msg} }

type Currency struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	FullName string `json:"fullName"`
	Sign     string `json:"sign"`
}

type Rate struct {
	ID             int64           `json:"id"`
	BaseCurrency   Currency        `json:"baseCurrency"`
	TargetCurrency Currency        `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
}

type Conversion struct {
	ExchangeRate  Rate            `json:"exchangeRate"`
	Amount        decimal.Decimal `json:"amount"`
	ConvertAmount decimal.Decimal `json:"convertAmount"`
}

type Page struct {
	Items      []Currency `json:"items"`
	PageNumber int        `json:"pageNumber"`
	PageSize   int        `json:"pageSize"`
	Total      int        `json:"total"`
}

type pair struct{ base, target int64 }

// Store keeps currencies in insertion order and rates by currency pair.
type Store struct {
	mu         sync.RWMutex
	currencies []Currency
	rates      map[pair]Rate
	nextID     int64
	nextRateID int64
}

func NewStore() *Store {
	return &Store{rates: make(map[pair]Rate)}
}

// NewSeededStore returns a store with a handful of currencies and rates.
func NewSeededStore() *Store {
	s := NewStore()
	for _, c := range [][3]string{
		{"USD", "US Dollar", "$"},
		{"EUR", "Euro", "€"},
		{"GBP", "Pound Sterling", "£"},
		{"JPY", "Japanese Yen", "¥"},
		{"CHF", "Swiss Franc", "Fr"},
		{"PLN", "Polish Zloty", "zł"},
		{"CZK", "Czech Koruna", "Kč"},
	} {
		if _, err := s.CreateCurrency(c[0], c[1], c[2]); err != nil {
			panic(err)
		}
	}
	for _, r := range [][3]string{
		{"USD", "EUR", "0.923"},
		{"USD", "GBP", "0.79"},
		{"EUR", "JPY", "162.5"},
		{"EUR", "CHF", "0.96"},
		{"EUR", "PLN", "4.31"},
	} {
		if _, err := s.CreateRate(r[0], r[1], decimal.RequireFromString(r[2])); err != nil {
			panic(err)
		}
	}
	return s
}

func (s *Store) CreateCurrency(code, fullName, sign string) (Currency, error) {
	if code == "" || utf8.RuneCountInString(code) > CodeMaxLen {
		return Currency{}, badRequest("invalid currency code")
	}
	if sign == "" || utf8.RuneCountInString(sign) > SignMaxLen {
		return Currency{}, badRequest("invalid currency sign")
	}
	if n := utf8.RuneCountInString(fullName); n < FullNameMinLen || n > FullNameMaxLen {
		return Currency{}, badRequest("invalid currency full name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byCode(code); ok {
		return Currency{}, conflict("currency already exists")
	}
	s.nextID++
	c := Currency{ID: s.nextID, Code: code, FullName: fullName, Sign: sign}
	s.currencies = append(s.currencies, c)
	return c, nil
}

func (s *Store) Page(pageNumber, pageSize int) (Page, error) {
	if pageNumber < 1 || pageSize < 1 {
		return Page{}, badRequest("pageNumber and pageSize must be greater than zero")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	total := len(s.currencies)
	// offsets past the end would overflow for huge page numbers
	start := total
	if total > 0 && pageNumber-1 <= (total-1)/pageSize {
		start = (pageNumber - 1) * pageSize
	}
	end := start + min(pageSize, total-start)
	items := make([]Currency, end-start)
	copy(items, s.currencies[start:end])
	return Page{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		Total:      total,
	}, nil
}

func (s *Store) CreateRate(baseCode, targetCode string, rate decimal.Decimal) (Rate, error) {
	if !rate.IsPositive() {
		return Rate{}, badRequest("rate must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	base, target, err := s.pair(baseCode, targetCode)
	if err != nil {
		return Rate{}, err
	}
	key := pair{base.ID, target.ID}
	if _, ok := s.rates[key]; ok {
		return Rate{}, conflict("exchange rate already exists")
	}
	s.nextRateID++
	r := Rate{ID: s.nextRateID, BaseCurrency: base, TargetCurrency: target, Rate: rate}
	s.rates[key] = r
	return r, nil
}

// Exchange converts with the direct rate, or with the inverse of the
// reverse rate when only that one is known.
func (s *Store) Exchange(baseCode, targetCode string, amount decimal.Decimal) (Conversion, error) {
	if baseCode == "" || targetCode == "" {
		return Conversion{}, badRequest("currency codes are required")
	}
	if !amount.IsPositive() {
		return Conversion{}, badRequest("amount must be greater than zero")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	base, target, err := s.pair(baseCode, targetCode)
	if err != nil {
		return Conversion{}, err
	}

	rate, ok := s.rates[pair{base.ID, target.ID}]
	if !ok {
		reverse, ok := s.rates[pair{target.ID, base.ID}]
		if !ok {
			return Conversion{}, notFound("exchange rate not found")
		}
		rate = Rate{
			ID:             reverse.ID,
			BaseCurrency:   base,
			TargetCurrency: target,
			Rate:           decimal.NewFromInt(1).DivRound(reverse.Rate, inversePlaces),
		}
	}
	return Conversion{
		ExchangeRate:  rate,
		Amount:        amount,
		ConvertAmount: amount.Mul(rate.Rate),
	}, nil
}

func (s *Store) pair(baseCode, targetCode string) (Currency, Currency, error) {
	base, ok := s.byCode(baseCode)
	if !ok {
		return Currency{}, Currency{}, notFound("base currency not found")
	}
	target, ok := s.byCode(targetCode)
	if !ok {
		return Currency{}, Currency{}, notFound("target currency not found")
	}
	return base, target, nil
}

func (s *Store) byCode(code string) (Currency, bool) {
	i := slices.IndexFunc(s.currencies, func(c Currency) bool { return c.Code == code })
	if i < 0 {
		return Currency{}, false
	}
	return s.currencies[i], true
}

// statusOf maps store errors to HTTP. Anything unexpected is a 500.
func statusOf(err error) (int, string) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Message
	}
	return http.StatusInternalServerError, "internal error"
}
