package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/ideawheel/internal/app"
	"github.com/randomtoy/ideawheel/internal/domain"
)

const maxTitleLen = 200

type Handler struct {
	board *app.Board
}

func NewHandler(board *app.Board) *Handler {
	return &Handler{board: board}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	v1 := e.Group("/v1")
	v1.GET("/ideas", h.ListIdeas)
	v1.POST("/ideas", h.AddIdea)
	v1.PUT("/ideas/order", h.ReorderIdeas)
	v1.PATCH("/ideas/:id", h.UpdateIdea)
	v1.DELETE("/ideas/:id", h.DeleteIdea)
	v1.POST("/ideas/:id/archive", h.ArchiveIdea)
	v1.POST("/ideas/:id/restore", h.RestoreIdea)

	v1.GET("/wheel", h.GetWheel)
	v1.POST("/wheel/spin", h.Spin)
	v1.GET("/wheel/history", h.History)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListIdeas(c echo.Context) error {
	filter := app.FilterAll
	if raw := c.QueryParam("archived"); raw != "" {
		archived, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "archived must be true or false"})
		}
		filter = app.FilterActive
		if archived {
			filter = app.FilterArchived
		}
	}

	ideas, err := h.board.ListIdeas(c.Request().Context(), filter)
	if err != nil {
		return mapError(c, err)
	}
	out := make([]IdeaResponse, len(ideas))
	for i, idea := range ideas {
		out[i] = toIdea(idea)
	}
	return c.JSON(http.StatusOK, IdeaListResponse{Ideas: out})
}

func (h *Handler) AddIdea(c echo.Context) error {
	req, msg := bindIdea(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	}
	idea, err := h.board.AddIdea(c.Request().Context(), req.Title, req.Note)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toIdea(idea))
}

func (h *Handler) UpdateIdea(c echo.Context) error {
	req, msg := bindIdea(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
	}
	idea, err := h.board.UpdateIdea(c.Request().Context(), c.Param("id"), req.Title, req.Note)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toIdea(idea))
}

func (h *Handler) DeleteIdea(c echo.Context) error {
	if err := h.board.DeleteIdea(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ArchiveIdea(c echo.Context) error {
	idea, err := h.board.ArchiveIdea(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toIdea(idea))
}

func (h *Handler) RestoreIdea(c echo.Context) error {
	idea, err := h.board.RestoreIdea(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toIdea(idea))
}

func (h *Handler) ReorderIdeas(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	if err := h.board.ReorderIdeas(c.Request().Context(), req.IDs); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetWheel(c echo.Context) error {
	w := h.board.Wheel()
	return c.JSON(http.StatusOK, toWheel(w.State(), w.Sections()))
}

// Spin starts a spin and returns immediately; clients poll GET /v1/wheel
// for the outcome.
func (h *Handler) Spin(c echo.Context) error {
	if err := h.board.Spin(c.Request().Context()); err != nil {
		return mapError(c, err)
	}
	w := h.board.Wheel()
	return c.JSON(http.StatusAccepted, toWheel(w.State(), w.Sections()))
}

func (h *Handler) History(c echo.Context) error {
	return c.JSON(http.StatusOK, toHistory(h.board.History()))
}

// bindIdea returns a non-empty message when the body is rejected.
func bindIdea(c echo.Context) (IdeaRequest, string) {
	var req IdeaRequest
	if err := c.Bind(&req); err != nil {
		return req, "invalid JSON body"
	}
	if utf8.RuneCountInString(req.Title) > maxTitleLen {
		return req, fmt.Sprintf("title must be at most %d characters", maxTitleLen)
	}
	return req, ""
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrIdeaNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidIdea), errors.Is(err, domain.ErrInvalidOrder):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSpinInProgress):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNoItems):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
