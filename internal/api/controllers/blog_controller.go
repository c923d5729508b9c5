package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/request_models"
	"trekzaa/internal/services"
	"trekzaa/pkg/utils"
)

type BlogController struct {
	blogService services.BlogServiceInterface
	authService services.AuthServiceInterface
}

func NewBlogController(blogService services.BlogServiceInterface, authService services.AuthServiceInterface) *BlogController {
	return &BlogController{
		blogService: blogService,
		authService: authService,
	}
}

// ListPosts godoc
// @Summary List blog posts, newest first
// @Tags Blog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /blog [get]
func (b *BlogController) ListPosts(c *gin.Context) {
	posts, err := b.blogService.ListPosts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "")
}

// GetPost godoc
// @Summary Get a blog post by id
// @Tags Blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /blog/{id} [get]
func (b *BlogController) GetPost(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	post, err := b.blogService.GetPost(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "")
}

// CreatePost godoc
// @Summary Create a blog post (admin only)
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /blog [post]
func (b *BlogController) CreatePost(c *gin.Context) {
	actor, ok := b.actor(c)
	if !ok {
		return
	}

	var req request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := b.blogService.CreatePost(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, post, "Post created")
}

// UpdatePost godoc
// @Summary Update a blog post (admin only)
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body request_models.UpdatePostRequest true "Post payload"
// @Success 200 {object} utils.APIResponse
// @Router /blog/{id} [put]
func (b *BlogController) UpdatePost(c *gin.Context) {
	actor, ok := b.actor(c)
	if !ok {
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	var req request_models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := b.blogService.UpdatePost(c.Request.Context(), actor, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post updated")
}

// DeletePost godoc
// @Summary Delete a blog post (admin only)
// @Tags Blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Router /blog/{id} [delete]
func (b *BlogController) DeletePost(c *gin.Context) {
	actor, ok := b.actor(c)
	if !ok {
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	if err := b.blogService.DeletePost(c.Request.Context(), actor, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted")
}

// ListComments godoc
// @Summary List comments on a post, oldest first
// @Tags Blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Router /blog/{id}/comments [get]
func (b *BlogController) ListComments(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	comments, err := b.blogService.ListComments(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "")
}

// CreateComment godoc
// @Summary Comment on a blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body request_models.CreateCommentRequest true "Comment payload"
// @Success 201 {object} utils.APIResponse
// @Router /blog/{id}/comments [post]
func (b *BlogController) CreateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := pathUUID(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid post id")
		return
	}

	var req request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comment, err := b.blogService.CreateComment(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, comment, "Comment created")
}

// actor fetches the caller's current user row so role checks reflect the
// database, not stale token claims.
func (b *BlogController) actor(c *gin.Context) (*db_models.User, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	user, err := b.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return nil, false
	}
	return user, true
}
