// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package sandbox

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/toeirei/fxconsole/internal/logging"
)

const requestIDHeader = "X-Request-Id"

const (
	defaultPageNumber = 1
	defaultPageSize   = 20
)

type Server struct {
	store  *Store
	engine *gin.Engine
}

func New(store *Store) *Server {
	s := &Server{store: store, engine: gin.New()}
	s.engine.Use(gin.Recovery(), requestLogger())

	s.engine.GET("/currencies", s.listCurrencies)
	s.engine.POST("/currencies", s.createCurrency)
	s.engine.POST("/rates", s.createRate)
	s.engine.GET("/exchange", s.exchange)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Serve blocks until ctx is done, then shuts the listener down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// requestLogger echoes or assigns a request id and logs each call at debug.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		c.Next()

		logging.Debugf("sandbox %s %s %d %s id=%s", c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(), time.Since(start), id)
	}
}

func writeError(c *gin.Context, err error) {
	status, msg := statusOf(err)
	c.JSON(status, gin.H{"message": msg})
}

func (s *Server) listCurrencies(c *gin.Context) {
	pageNumber, pageSize, err := parsePage(c)
	if err != nil {
		writeError(c, badRequest("invalid pagination"))
		return
	}
	page, err := s.store.Page(pageNumber, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// parsePage defaults only when both parameters are absent.
func parsePage(c *gin.Context) (int, int, error) {
	numberText, sizeText := c.Query("pageNumber"), c.Query("pageSize")
	if numberText == "" && sizeText == "" {
		return defaultPageNumber, defaultPageSize, nil
	}
	number, err := strconv.Atoi(numberText)
	if err != nil {
		return 0, 0, err
	}
	size, err := strconv.Atoi(sizeText)
	if err != nil {
		return 0, 0, err
	}
	return number, size, nil
}

type createCurrencyRequest struct {
	Code     string `json:"code"`
	FullName string `json:"fullName"`
	Sign     string `json:"sign"`
}

func (s *Server) createCurrency(c *gin.Context) {
	var req createCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest("invalid request"))
		return
	}
	currency, err := s.store.CreateCurrency(req.Code, req.FullName, req.Sign)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, currency)
}

type createRateRequest struct {
	BaseCode   string          `json:"baseCode"`
	TargetCode string          `json:"targetCode"`
	Rate       decimal.Decimal `json:"rate"`
}

func (s *Server) createRate(c *gin.Context) {
	var req createRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest("invalid request"))
		return
	}
	rate, err := s.store.CreateRate(req.BaseCode, req.TargetCode, req.Rate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rate)
}

func (s *Server) exchange(c *gin.Context) {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		writeError(c, badRequest("invalid amount"))
		return
	}
	result, err := s.store.Exchange(c.Query("base"), c.Query("target"), amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
