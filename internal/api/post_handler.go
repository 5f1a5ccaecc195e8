package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/quill-api/internal/api/shared"
	"github.com/phrazzld/quill-api/internal/platform/logger"
	"github.com/phrazzld/quill-api/internal/service"
)

// PostHandler handles the blog post endpoints. Every route it serves sits
// behind AuthMiddleware.
type PostHandler struct {
	postService service.PostService
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostService, logger *slog.Logger) *PostHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostHandler{
		postService: postService,
		logger:      logger.With(slog.String("component", "post_handler")),
	}
}

// CreatePost handles POST /create.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreatePostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	post, err := h.postService.CreatePost(r.Context(), userID, *req.Title, *req.Content)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPost) {
			shared.RespondWithMessageAndLog(w, r, StatusInvalidInput, MsgInvalidInput, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgCreateFailed, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PostIDResponse{Msg: MsgPostCreated, ID: post.ID})
}

// UpdatePost handles PUT /update. An id that matches no post owned by the
// caller is reported as a generic server error.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	postID, err := uuid.Parse(req.ID)
	if err != nil {
		shared.RespondWithMessageAndLog(w, r, StatusInvalidInput, MsgInvalidInput, err)
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), userID, postID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPost) {
			shared.RespondWithMessageAndLog(w, r, StatusInvalidInput, MsgInvalidInput, err)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgUpdateFailed, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PostIDResponse{Msg: MsgPostUpdated, ID: post.ID})
}

// ListPosts handles GET /bulk.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgListFailed, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("listed posts", slog.Int("count", len(posts)))
	shared.RespondWithJSON(w, r, http.StatusOK, PostListResponse{
		Msg:   MsgPostsListed,
		Blogs: postsToResponse(posts),
	})
}

// GetPost handles GET /{id}. A well-formed id with no post answers 200 with
// a null Blog.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	postID, err := getPathUUID(r, "id")
	if err != nil {
		shared.LogError(r, StatusInvalidInput, MsgPostFetchErr, err)
		shared.RespondWithJSON(w, r, StatusInvalidInput, FetchErrorResponse{Error: MsgPostFetchErr})
		return
	}

	post, err := h.postService.GetPost(r.Context(), postID)
	if err != nil {
		shared.LogError(r, StatusInvalidInput, MsgPostFetchErr, err, shared.WithElevatedLogLevel())
		shared.RespondWithJSON(w, r, StatusInvalidInput, FetchErrorResponse{Error: MsgPostFetchErr})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SinglePostResponse{
		Msg:  MsgPostFetched,
		Blog: postToResponse(post),
	})
}
