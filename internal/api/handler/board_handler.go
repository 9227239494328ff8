package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanbanhq/board-api/internal/core/ports"
)

// BoardHandler handles HTTP requests for board operations.
type BoardHandler struct {
	service ports.BoardService
}

func NewBoardHandler(service ports.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

// List returns every board the caller owns or belongs to, with counters.
//
// @Summary      List my boards
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   boardSummaryResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/boards [get]
func (h *BoardHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	summaries, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	out := make([]boardSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toBoardSummaryResponse(s))
	}
	return c.JSON(http.StatusOK, out)
}

// Create creates a board owned by the caller.
//
// @Summary      Create a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBoardRequest  true  "Board details"
// @Success      201   {object}  boardSummaryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/boards [post]
func (h *BoardHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createBoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	board, err := h.service.Create(c.Request().Context(), actor, ports.CreateBoardInput{
		Title:     req.Title,
		MemberIDs: req.Members,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, boardSummaryResponse{
		ID:          board.ID,
		Title:       board.Title,
		OwnerID:     board.OwnerID,
		MemberCount: len(board.MemberIDs),
	})
}

// Get returns a single board with hydrated members and tasks.
//
// @Summary      Get a board
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        board_id  path      string  true  "Board ID"
// @Success      200       {object}  boardDetailResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/boards/{board_id} [get]
func (h *BoardHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), actor, c.Param("board_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBoardDetailResponse(detail))
}

// Update patches a board's title or member set. Owner only.
//
// @Summary      Update a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        board_id  path      string              true  "Board ID"
// @Param        body      body      updateBoardRequest  true  "Fields to update"
// @Success      200       {object}  boardDetailResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/boards/{board_id} [patch]
func (h *BoardHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateBoardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	detail, err := h.service.Update(c.Request().Context(), actor, c.Param("board_id"), ports.UpdateBoardInput{
		Title:   req.Title,
		Members: req.Members,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBoardDetailResponse(detail))
}

// Delete removes a board together with its tasks and comments. Owner only.
//
// @Summary      Delete a board
// @Tags         boards
// @Security     BearerAuth
// @Param        board_id  path  string  true  "Board ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/boards/{board_id} [delete]
func (h *BoardHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("board_id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Members lists the board's members.
//
// @Summary      List board members
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        board_id  path      string  true  "Board ID"
// @Success      200       {array}   userResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/boards/{board_id}/members [get]
func (h *BoardHandler) Members(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	members, err := h.service.Members(c.Request().Context(), actor, c.Param("board_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponses(members))
}
