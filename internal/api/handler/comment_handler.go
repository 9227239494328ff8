package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanbanhq/board-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for task comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// List returns a task's comments, oldest first.
//
// @Summary      List task comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        task_id  path      string  true  "Task ID"
// @Success      200      {array}   commentResponse
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/tasks/{task_id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), actor, c.Param("task_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCommentResponses(views))
}

// Create adds a comment to a task.
//
// @Summary      Comment on a task
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        task_id  path      string                true  "Task ID"
// @Param        body     body      createCommentRequest  true  "Comment body"
// @Success      201      {object}  commentResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Router       /v1/tasks/{task_id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), actor, c.Param("task_id"), req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCommentResponse(*view))
}

// Delete removes a comment. Author only; the board owner cannot remove
// someone else's comment.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        task_id     path  string  true  "Task ID"
// @Param        comment_id  path  string  true  "Comment ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tasks/{task_id}/comments/{comment_id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("task_id"), c.Param("comment_id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
