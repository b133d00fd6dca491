package http

import (
	"net/http"
	"time"

	"github.com/groomday/groomday-backend-go/internal/domain/revenue"
	"github.com/groomday/groomday-backend-go/internal/handler/http/middleware"
	"github.com/groomday/groomday-backend-go/internal/handler/http/response"
)

type RevenueHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type RevenueHandlerImpl struct {
	revenueService revenue.RevenueService
}

func NewRevenueHandler(revenueService revenue.RevenueService) RevenueHandler {
	return &RevenueHandlerImpl{revenueService: revenueService}
}

// Summary implements RevenueHandler. Defaults to the current month when no
// range is given.
func (h *RevenueHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, -1)

	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		parsed, err := time.Parse("2006-01-02", fromParam)
		if err != nil {
			response.BadRequest(w, "from must be in YYYY-MM-DD format", nil)
			return
		}
		from = parsed
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		parsed, err := time.Parse("2006-01-02", toParam)
		if err != nil {
			response.BadRequest(w, "to must be in YYYY-MM-DD format", nil)
			return
		}
		to = parsed
	}
	if to.Before(from) {
		response.BadRequest(w, "to must not be before from", nil)
		return
	}

	summary, err := h.revenueService.GetSummary(r.Context(), middleware.ShopID(r), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
