package http

import (
	"net/http"
	"strconv"

	"linkup/internal/entity"
	"linkup/internal/usecase"
	"linkup/pkg/logger"

	"github.com/gin-gonic/gin"
)

const defaultFeedLimit = 10

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{postUseCase: postUseCase, logger: logger}
}

type UpsertPostRequest struct {
	ID   string        `json:"id"`
	Body string        `json:"body"`
	File *entity.Media `json:"file"`
}

// UpsertPost godoc
// @Summary      Create or update a post
// @Description  Insert when no id is given, update the addressed post otherwise. A local media handle in file is uploaded before anything is persisted.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpsertPostRequest true "Post payload"
// @Success      200  {object}  map[string]interface{}
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /posts [post]
func (h *PostHandler) UpsertPost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpsertPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Body == "" && req.File == nil {
		respondError(c, http.StatusBadRequest, "Please add a post body or choose a file")
		return
	}

	post := &entity.Post{
		ID:     req.ID,
		UserID: userID,
		Body:   req.Body,
		File:   req.File,
	}

	updating := post.ID != ""
	saved, err := h.postUseCase.CreateOrUpdate(post)
	if err != nil {
		h.logger.Error("Failed to save post: %v", err)
		respondError(c, statusFor(err), err.Error())
		return
	}

	status := http.StatusCreated
	if updating {
		status = http.StatusOK
	}
	respondOK(c, status, saved)
}

// ListPosts godoc
// @Summary      Fetch the feed
// @Description  Posts newest-first with owner profile, like rows and comment counts. Pass userId to see one author's posts; grow limit to fetch more.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max posts to return"
// @Param        userId query string false "Filter to one author"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultFeedLimit)))
	if err != nil || limit < 1 {
		respondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}
	ownerID := c.Query("userId")

	posts, err := h.postUseCase.List(limit, ownerID)
	if err != nil {
		respondError(c, statusFor(err), err.Error())
		return
	}

	respondOK(c, http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Fetch one post with its comment thread
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetDetail(c.Param("id"))
	if err != nil {
		respondError(c, statusFor(err), err.Error())
		return
	}

	respondOK(c, http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.postUseCase.Remove(postID, userID); err != nil {
		respondError(c, statusFor(err), err.Error())
		return
	}

	respondOK(c, http.StatusOK, gin.H{"postId": postID})
}

// LikePost godoc
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      201  {object}  map[string]interface{}
// @Router       /posts/{id}/likes [post]
func (h *PostHandler) LikePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.postUseCase.Like(userID, postID); err != nil {
		respondError(c, statusFor(err), err.Error())
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"postId": postID, "userId": userID})
}

// UnlikePost godoc
// @Summary      Remove a like
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts/{id}/likes [delete]
func (h *PostHandler) UnlikePost(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.postUseCase.Unlike(postID, userID); err != nil {
		respondError(c, statusFor(err), err.Error())
		return
	}

	respondOK(c, http.StatusOK, gin.H{"postId": postID, "userId": userID})
}
