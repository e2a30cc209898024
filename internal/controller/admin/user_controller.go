package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Axolotls/internal/controller"
	"github.com/lshigami/Axolotls/internal/dto"
	"github.com/lshigami/Axolotls/internal/model"
	"github.com/lshigami/Axolotls/internal/service"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// CreateStudent godoc
// @Summary (Admin/Mediator) Create a student account
// @Tags Management - Users
// @Accept json
// @Produce json
// @Param user body dto.UserCreateDTO true "Account data"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or email taken"
// @Failure 500 {object} dto.ErrorResponse
// @Router /manage/students [post]
func (c *UserController) CreateStudent(ctx *gin.Context) {
	c.createWithRole(ctx, model.RoleStudent)
}

// CreateMediator godoc
// @Summary (Admin) Create a mediator account
// @Tags Admin - Users
// @Accept json
// @Produce json
// @Param user body dto.UserCreateDTO true "Account data"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or email taken"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/mediators [post]
func (c *UserController) CreateMediator(ctx *gin.Context) {
	c.createWithRole(ctx, model.RoleMediator)
}

func (c *UserController) createWithRole(ctx *gin.Context, role string) {
	var req dto.UserCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.userService.CreateUser(role, req)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Str("role", role).Msg("CreateUser failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// BulkCreateStudents godoc
// @Summary (Admin/Mediator) Create many student accounts at once
// @Description The whole batch commits or none of it does.
// @Tags Management - Users
// @Accept json
// @Produce json
// @Param users body dto.UserBulkCreateDTO true "Accounts to insert"
// @Success 201 {array} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate email"
// @Failure 500 {object} dto.ErrorResponse
// @Router /manage/students/bulk [post]
func (c *UserController) BulkCreateStudents(ctx *gin.Context) {
	var req dto.UserBulkCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.userService.BulkCreateStudents(req)
	if err != nil {
		log.Warn().Err(err).Int("count", len(req.Users)).Msg("BulkCreateStudents failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListStudents godoc
// @Summary (Admin/Mediator) List student accounts
// @Tags Management - Users
// @Produce json
// @Success 200 {array} dto.UserResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /manage/students [get]
func (c *UserController) ListStudents(ctx *gin.Context) {
	resp, err := c.userService.ListUsers(model.RoleStudent)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteUser godoc
// @Summary (Admin) Delete a user
// @Description Removes the account, the exams it created and their questions.
// @Tags Admin - Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID format"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/users/{user_id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format"})
		return
	}

	if err := c.userService.DeleteUser(uint(userID)); err != nil {
		log.Warn().Err(err).Uint64("userID", userID).Msg("DeleteUser failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}
