package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumni/internal/app/models/dto"
	"github.com/yigit/alumni/internal/app/services"
	"github.com/yigit/alumni/internal/middleware"
	"github.com/yigit/alumni/internal/pkg/helpers"
	"github.com/yigit/alumni/internal/pkg/identifier"
)

// UserController handles user endpoints
type UserController struct {
	userService services.UserService
	opts        Options
}

// NewUserController creates a new user controller
func NewUserController(userService services.UserService, opts Options) *UserController {
	return &UserController{userService: userService, opts: opts}
}

// Create registers a user
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User"
// @Success 201 {object} dto.APIResponse{data=models.User} "User created"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 409 {object} dto.ErrorResponse "Email or enrollment number already registered"
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	body, ok := readObject(ctx)
	if !ok {
		return
	}

	req, err := dto.BindCreateUser(body, c.opts.StrictPayloads)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, user)
}

// FindAll lists users one page at a time
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.UserListResponse} "Users retrieved"
// @Router /users [get]
func (c *UserController) FindAll(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx, c.opts.pageSize())

	resp, err := c.userService.FindAll(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, resp)
}

// FindOne retrieves a user by id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID (64-bit integer)"
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) FindOne(ctx *gin.Context) {
	id, err := identifier.ParseUserID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.FindOne(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, user)
}

// Update applies a partial update to a user
// @Summary Update a user
// @Description Profile links and approval flags can only be set here. The password cannot be changed through this endpoint.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (64-bit integer)"
// @Success 200 {object} dto.APIResponse{data=models.User} "User updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID or payload"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Email or enrollment number already registered"
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	id, err := identifier.ParseUserID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	body, ok := readObject(ctx)
	if !ok {
		return
	}

	update, err := dto.BindUpdateUser(body, c.opts.StrictPayloads)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.Update(ctx, id, update)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, user)
}

// Remove deletes a user
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID (64-bit integer)"
// @Success 200 {object} dto.APIResponse{data=models.User} "Deleted user"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (c *UserController) Remove(ctx *gin.Context) {
	id, err := identifier.ParseUserID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.Remove(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondOK(ctx, user)
}
