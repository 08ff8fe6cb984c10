package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/linsolve/gaussjordan"
	"github.com/katalvlaran/linsolve/internal/codec"
	"github.com/katalvlaran/linsolve/matrix"
)

// Error kinds reported in addition to the solver's own.
const (
	kindBadRequest       = "bad_request"
	kindUnsupportedMedia = "unsupported_media_type"
	kindTooLarge         = "too_large"
	kindNonFinite        = "non_finite"
	kindInternal         = "internal"
)

// Body size budget per matrix entry, and fixed overhead.
const (
	bytesPerEntry = 32
	bodySlack     = 4 << 10
)

// errorDetail is the "error" object of every non-2xx response.
type errorDetail struct {
	Kind      string   `json:"kind"`
	Message   string   `json:"message"`
	RequestID string   `json:"request_id,omitempty"`
	Operand   string   `json:"operand,omitempty"`
	Dim       string   `json:"dim,omitempty"`
	Expected  *int     `json:"expected,omitempty"`
	Actual    *int     `json:"actual,omitempty"`
	Column    *int     `json:"column,omitempty"`
	Pivot     *float64 `json:"pivot,omitempty"`
	Limit     int      `json:"limit,omitempty"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

func (s *Server) solve(c *gin.Context) {
	f, err := codec.FormatFromContentType(c.ContentType())
	if err != nil {
		s.fail(c, http.StatusUnsupportedMediaType, errorDetail{Kind: kindUnsupportedMedia, Message: err.Error()})
		return
	}

	if limit := s.maxBodyBytes(); limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}
	sys, err := codec.DecodeSystem(c.Request.Body, f)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.fail(c, http.StatusRequestEntityTooLarge, errorDetail{
				Kind:    kindTooLarge,
				Message: fmt.Sprintf("request body exceeds %d bytes", tooBig.Limit),
				Limit:   s.cfg.MaxDimension,
			})
			return
		}
		if gaussjordan.KindOf(err) != 0 {
			s.metrics.RecordSolve(0, err, 0)
			s.failSolve(c, err)
			return
		}
		s.fail(c, http.StatusBadRequest, errorDetail{Kind: kindBadRequest, Message: err.Error()})
		return
	}

	n := max(len(sys.A), len(sys.B))
	if s.cfg.MaxDimension > 0 && n > s.cfg.MaxDimension {
		s.fail(c, http.StatusRequestEntityTooLarge, errorDetail{
			Kind:    kindTooLarge,
			Message: fmt.Sprintf("system dimension %d exceeds limit %d", n, s.cfg.MaxDimension),
			Limit:   s.cfg.MaxDimension,
		})
		return
	}

	start := time.Now()
	x, err := s.solver.Solve(sys.A, sys.B)
	elapsed := time.Since(start)

	var sol codec.Solution
	if err == nil {
		// overflow of finite input surfaces here, not in Solve
		sol, err = codec.NewSolution(sys, x)
	}
	s.metrics.RecordSolve(len(sys.A), err, elapsed)
	if err != nil {
		s.failSolve(c, err)
		return
	}

	body, err := sonic.Marshal(sol)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, errorDetail{Kind: kindInternal, Message: err.Error()})
		return
	}
	c.Data(http.StatusOK, codec.JSON.ContentType(), body)
}

// maxBodyBytes bounds a System document of the largest allowed dimension:
// n·(n+1) numbers at bytesPerEntry each plus bodySlack for keys and layout.
// 0 means unlimited.
func (s *Server) maxBodyBytes() int64 {
	n := int64(s.cfg.MaxDimension)
	if n <= 0 {
		return 0
	}

	return n*(n+1)*bytesPerEntry + bodySlack
}

// failSolve maps solver failures to 422 with their structured context.
func (s *Server) failSolve(c *gin.Context, err error) {
	var ge *gaussjordan.Error
	switch {
	case errors.As(err, &ge):
		d := errorDetail{Kind: ge.Kind.String(), Message: err.Error()}
		switch ge.Kind {
		case gaussjordan.KindDimensionMismatch:
			d.Operand, d.Dim = ge.Operand, ge.Dim
			d.Expected, d.Actual = &ge.Expected, &ge.Actual
		case gaussjordan.KindSingularSystem:
			d.Column = &ge.Column
			if !math.IsNaN(ge.Pivot) && !math.IsInf(ge.Pivot, 0) {
				d.Pivot = &ge.Pivot
			}
		}
		s.fail(c, http.StatusUnprocessableEntity, d)
	case errors.Is(err, matrix.ErrNaNInf):
		s.fail(c, http.StatusUnprocessableEntity, errorDetail{Kind: kindNonFinite, Message: err.Error()})
	default:
		s.log.Error("solve failed", zap.Error(err), zap.String("request_id", c.GetString(ctxRequestID)))
		s.fail(c, http.StatusInternalServerError, errorDetail{Kind: kindInternal, Message: err.Error()})
	}
}

func (s *Server) fail(c *gin.Context, status int, d errorDetail) {
	d.RequestID = c.GetString(ctxRequestID)
	c.AbortWithStatusJSON(status, errorBody{Error: d})
}
