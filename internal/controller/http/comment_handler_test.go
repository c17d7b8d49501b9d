package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"linkup/internal/entity"
	"linkup/internal/repo/persistent"
	"linkup/internal/usecase"
	"linkup/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) Create(ctx context.Context, comment *entity.Comment) (*entity.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Remove(commentID, userID string) error {
	args := m.Called(commentID, userID)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

type fakeCommentSource struct {
	events chan []byte
}

func newFakeCommentSource() *fakeCommentSource {
	return &fakeCommentSource{events: make(chan []byte, 8)}
}

func (f *fakeCommentSource) Subscribe(ctx context.Context, postID string) (<-chan []byte, func() error, error) {
	return f.events, func() error { return nil }, nil
}

type fakeProfileResolver struct{}

func (fakeProfileResolver) GetByID(id string) (*entity.Profile, error) {
	return &entity.Profile{ID: id, Name: "Resolved " + id}, nil
}

func TestCreateComment_Success(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, newFakeCommentSource(), fakeProfileResolver{}, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/comments", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CreateComment(c)
	})

	mockUseCase.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Comment) bool {
		return c.PostID == "post-1" && c.UserID == "user-123" && c.Text == "nice one"
	})).Return(&entity.Comment{ID: "comment-1", PostID: "post-1", UserID: "user-123", Text: "nice one"}, nil)

	body, _ := json.Marshal(map[string]string{"text": "nice one"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "comment-1")
	mockUseCase.AssertExpectations(t)
}

func TestCreateComment_MissingText(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, newFakeCommentSource(), fakeProfileResolver{}, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/comments", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CreateComment(c)
	})

	body, _ := json.Marshal(map[string]string{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/post-1/comments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteComment_Success(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, newFakeCommentSource(), fakeProfileResolver{}, logger.New())

	router := setupTestRouter()
	router.DELETE("/comments/:id", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.DeleteComment(c)
	})

	mockUseCase.On("Remove", "comment-1", "user-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/comments/comment-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "comment-1")
	mockUseCase.AssertExpectations(t)
}

func TestDeleteComment_NotFound(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase, newFakeCommentSource(), fakeProfileResolver{}, logger.New())

	router := setupTestRouter()
	router.DELETE("/comments/:id", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.DeleteComment(c)
	})

	mockUseCase.On("Remove", "missing", "user-123").Return(persistent.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/comments/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamComments_DeliversEnrichedEvents(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	source := newFakeCommentSource()
	handler := NewCommentHandler(mockUseCase, source, fakeProfileResolver{}, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id/comments/stream", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.StreamComments(c)
	})

	server := httptest.NewServer(router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, "GET", server.URL+"/posts/post-1/comments/stream", nil)
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	source.events <- []byte(`{"id":"c9","postId":"post-1","userId":"u2","text":"hey"}`)

	reader := bufio.NewReader(resp.Body)
	var data string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("Stream ended before an event arrived: %v", err)
		}
		if strings.HasPrefix(line, "data:") {
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			break
		}
	}

	var comment entity.Comment
	assert.NoError(t, json.Unmarshal([]byte(data), &comment))
	assert.Equal(t, "c9", comment.ID)
	assert.Equal(t, "hey", comment.Text)
	assert.NotNil(t, comment.User)
	assert.Equal(t, "Resolved u2", comment.User.Name)

	cancel()
}
