package http

import (
	"io"
	"net/http"

	"linkup/internal/entity"
	"linkup/internal/realtime"
	"linkup/internal/usecase"
	"linkup/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	source         realtime.Source
	profiles       realtime.ProfileResolver
	logger         *logger.Logger
}

func NewCommentHandler(
	commentUseCase usecase.CommentUseCase,
	source realtime.Source,
	profiles realtime.ProfileResolver,
	logger *logger.Logger,
) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		source:         source,
		profiles:       profiles,
		logger:         logger,
	}
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateComment godoc
// @Summary      Comment on a post
// @Description  Insert a comment. The insert is pushed to the post's realtime channel and, when the commenter is not the owner, queued as a notification.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body CreateCommentRequest true "Comment payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment := &entity.Comment{
		PostID: c.Param("id"),
		UserID: c.GetString("user_id"),
		Text:   req.Text,
	}

	created, err := h.commentUseCase.Create(c.Request.Context(), comment)
	if err != nil {
		respondError(c, statusFor(err), err.Error())
		return
	}

	respondOK(c, http.StatusCreated, created)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.commentUseCase.Remove(commentID, userID); err != nil {
		respondError(c, statusFor(err), err.Error())
		return
	}

	respondOK(c, http.StatusOK, gin.H{"commentId": commentID})
}

// StreamComments godoc
// @Summary      Stream new comments on a post
// @Description  Server-sent events; each event is a comment enriched with its author profile. One subscription per connection, torn down when the client disconnects.
// @Tags         comments
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Router       /posts/{id}/comments/stream [get]
func (h *CommentHandler) StreamComments(c *gin.Context) {
	postID := c.Param("id")

	listener := realtime.NewListener(h.source, h.profiles, h.logger)
	comments := make(chan entity.Comment, 16)

	err := listener.Subscribe(c.Request.Context(), postID, func(comment entity.Comment) {
		select {
		case comments <- comment:
		default:
			h.logger.Warn("Dropping comment event for slow stream on post %s", postID)
		}
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "could not subscribe to comments")
		return
	}
	defer listener.Unsubscribe()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case comment := <-comments:
			c.SSEvent("comment", comment)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
