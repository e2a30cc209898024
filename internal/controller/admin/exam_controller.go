package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Axolotls/internal/controller"
	"github.com/lshigami/Axolotls/internal/dto"
	"github.com/lshigami/Axolotls/internal/middleware"
	"github.com/lshigami/Axolotls/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	examService        service.AdminExamService
	leaderboardService service.LeaderboardService
}

func NewExamController(examService service.AdminExamService, leaderboardService service.LeaderboardService) *ExamController {
	return &ExamController{examService: examService, leaderboardService: leaderboardService}
}

// CreateExam godoc
// @Summary (Admin/Mediator) Create an exam with its questions
// @Description Creates the exam and the full question set in one transaction. Every question's answer must equal one of its four options.
// @Tags Management - Exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateDTO true "Exam with questions"
// @Success 201 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse
// @Router /manage/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	actorID, _ := middleware.Actor(ctx)
	resp, err := c.examService.CreateExam(actorID, req)
	if err != nil {
		log.Warn().Err(err).Str("title", req.Title).Msg("CreateExam failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListExams godoc
// @Summary (Admin/Mediator) List exams
// @Description Admin sees every exam, a mediator only the ones they created.
// @Tags Management - Exams
// @Produce json
// @Success 200 {array} dto.ExamSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /manage/exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	actorID, role := middleware.Actor(ctx)
	resp, err := c.examService.ListExams(actorID, role)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetExam godoc
// @Summary (Admin/Mediator) Get an exam with its questions and answers
// @Tags Management - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Exam ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /manage/exams/{exam_id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}

	resp, err := c.examService.GetExam(examID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateExam godoc
// @Summary (Admin/Mediator) Update exam metadata
// @Description Updates title, duration and attempts allowed. Only the creator (or an admin) may edit.
// @Tags Management - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param exam body dto.ExamUpdateDTO true "Fields to change"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /manage/exams/{exam_id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ExamUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	actorID, role := middleware.Actor(ctx)
	resp, err := c.examService.UpdateExam(actorID, role, examID, req)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Msg("UpdateExam failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteExam godoc
// @Summary (Admin/Mediator) Delete an exam and its questions
// @Tags Management - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Exam ID format"
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /manage/exams/{exam_id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}

	actorID, role := middleware.Actor(ctx)
	if err := c.examService.DeleteExam(actorID, role, examID); err != nil {
		log.Warn().Err(err).Uint("examID", examID).Msg("DeleteExam failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Exam deleted"})
}

// Leaderboard godoc
// @Summary (Admin/Mediator) Ranked leaderboard of submissions
// @Description Ordered by score descending, time taken ascending (missing time last), submission time ascending.
// @Tags Management - Leaderboard
// @Produce json
// @Param exam_id query int false "Restrict to one exam"
// @Success 200 {array} dto.LeaderboardRowDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Exam ID format"
// @Failure 500 {object} dto.ErrorResponse
// @Router /manage/leaderboard [get]
func (c *ExamController) Leaderboard(ctx *gin.Context) {
	var examID *uint
	if q := ctx.Query("exam_id"); q != "" {
		val, err := strconv.ParseUint(q, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Exam ID format in query"})
			return
		}
		id := uint(val)
		examID = &id
	}

	resp, err := c.leaderboardService.Rank(examID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func examIDParam(ctx *gin.Context) (uint, bool) {
	examID, err := strconv.ParseUint(ctx.Param("exam_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Exam ID format"})
		return 0, false
	}
	return uint(examID), true
}
