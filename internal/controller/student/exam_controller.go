package student

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
	studentExamService service.StudentExamService
	sessionService     service.ExamSessionService
}

func NewExamController(studentExamService service.StudentExamService, sessionService service.ExamSessionService) *ExamController {
	return &ExamController{studentExamService: studentExamService, sessionService: sessionService}
}

// ListExams godoc
// @Summary (Student) List exams with attempt usage
// @Tags Student - Exams
// @Produce json
// @Success 200 {array} dto.StudentExamDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /student/exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	studentID, _ := middleware.Actor(ctx)
	resp, err := c.studentExamService.ListExams(studentID)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// EnterExam godoc
// @Summary (Student) Enter an exam
// @Description Admits the student if attempts remain and returns the question set without answers.
// @Tags Student - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.EnterExamDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Exam ID format"
// @Failure 403 {object} dto.ErrorResponse "No attempts left"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /student/exams/{exam_id} [get]
func (c *ExamController) EnterExam(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}

	studentID, _ := middleware.Actor(ctx)
	resp, err := c.sessionService.EnterExam(examID, studentID)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Uint("studentID", studentID).Msg("EnterExam denied")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitExam godoc
// @Summary (Student) Submit answers for an exam
// @Description Grades the answers, assigns the next attempt number and stores the submission atomically. Questions missing from the answers map count as unanswered.
// @Tags Student - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param submission body dto.SubmitExamDTO true "Answers keyed by question id, elapsed seconds, tab switches"
// @Success 200 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "No attempts left or overdue"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /student/exams/{exam_id}/submit [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}

	var req dto.SubmitExamDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	studentID, _ := middleware.Actor(ctx)
	resp, err := c.sessionService.SubmitExam(examID, studentID, req)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Uint("studentID", studentID).Msg("SubmitExam failed")
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// MyAttempts godoc
// @Summary (Student) List own attempts for an exam
// @Tags Student - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} dto.SubmissionSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Exam ID format"
// @Failure 500 {object} dto.ErrorResponse
// @Router /student/exams/{exam_id}/my-attempts [get]
func (c *ExamController) MyAttempts(ctx *gin.Context) {
	examID, ok := examIDParam(ctx)
	if !ok {
		return
	}

	studentID, _ := middleware.Actor(ctx)
	resp, err := c.sessionService.GetStudentAttempts(examID, studentID)
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
