package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workspace-listing-api/internal/domain"
	"workspace-listing-api/internal/dto"
	"workspace-listing-api/internal/response"
	"workspace-listing-api/internal/service"
)

// CommentHandler serves the comment endpoints for one subject kind
type CommentHandler struct {
	engagementService service.EngagementService
	subjectType       domain.SubjectType
	identity          identityAdapter
}

// NewCommentHandler creates a new CommentHandler for a subject kind
func NewCommentHandler(
	engagementService service.EngagementService,
	subjectType domain.SubjectType,
	cookieName string,
	cookieMaxAge time.Duration,
) *CommentHandler {
	return &CommentHandler{
		engagementService: engagementService,
		subjectType:       subjectType,
		identity:          newIdentityAdapter(cookieName, cookieMaxAge),
	}
}

// GetComments godoc
// @Summary      댓글 목록 조회
// @Description  Subject의 모든 댓글을 최신순으로 조회합니다
// @Tags         comments
// @Produce      json
// @Param        subjectId path string true "Subject ID (UUID)"
// @Success      200 {object} dto.CommentListResponse
// @Failure      400 {object} response.ErrorResponse "잘못된 Subject ID"
// @Failure      404 {object} response.ErrorResponse "Subject를 찾을 수 없음"
// @Router       /comments/workspaces/{subjectId} [get]
func (h *CommentHandler) GetComments(c *gin.Context) {
	subjectID, ok := h.parseSubjectID(c)
	if !ok {
		return
	}

	result, err := h.engagementService.GetComments(c.Request.Context(), h.subjectType, subjectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateComment godoc
// @Summary      댓글 작성
// @Description  Subject에 익명 댓글을 작성합니다 (1~1000자)
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        subjectId path string true "Subject ID (UUID)"
// @Param        request body dto.CreateCommentRequest true "댓글 내용"
// @Success      201 {object} response.SuccessResponse{data=dto.CommentResponse}
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "Subject를 찾을 수 없음"
// @Router       /comments/workspaces/{subjectId} [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	subjectID, ok := h.parseSubjectID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	visitorID := h.identity.resolveForWrite(c, subjectID.String())

	result, err := h.engagementService.CreateComment(c.Request.Context(), h.subjectType, subjectID, visitorID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

func (h *CommentHandler) parseSubjectID(c *gin.Context) (uuid.UUID, bool) {
	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid subject ID")
		return uuid.Nil, false
	}
	return subjectID, true
}
