package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workspace-listing-api/internal/domain"
	"workspace-listing-api/internal/response"
	"workspace-listing-api/internal/service"
)

// EngagementHandler serves the like endpoints for one subject kind. Both
// kinds share the handler; the router registers one instance per kind.
type EngagementHandler struct {
	engagementService service.EngagementService
	subjectType       domain.SubjectType
	identity          identityAdapter
}

// NewEngagementHandler creates a new EngagementHandler for a subject kind
func NewEngagementHandler(
	engagementService service.EngagementService,
	subjectType domain.SubjectType,
	cookieName string,
	cookieMaxAge time.Duration,
) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
		subjectType:       subjectType,
		identity:          newIdentityAdapter(cookieName, cookieMaxAge),
	}
}

// GetStatus godoc
// @Summary      좋아요 상태 조회
// @Description  방문자의 좋아요 여부와 현재 좋아요 수를 조회합니다
// @Tags         engagement
// @Produce      json
// @Param        subjectId path string true "Subject ID (UUID)"
// @Success      200 {object} dto.EngagementStatusResponse
// @Failure      400 {object} response.ErrorResponse "잘못된 Subject ID"
// @Failure      404 {object} response.ErrorResponse "Subject를 찾을 수 없음"
// @Router       /engagement/workspaces/{subjectId} [get]
func (h *EngagementHandler) GetStatus(c *gin.Context) {
	subjectID, ok := h.parseSubjectID(c)
	if !ok {
		return
	}

	// Reads never mint a token; anonymous visitors get the subject-scoped
	// fallback identity instead.
	visitorID := h.identity.resolveForRead(c, subjectID.String())

	result, err := h.engagementService.GetLikeStatus(c.Request.Context(), h.subjectType, subjectID, visitorID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Toggle godoc
// @Summary      좋아요 토글
// @Description  방문자의 좋아요 상태를 뒤집고 결과 상태를 반환합니다
// @Tags         engagement
// @Accept       json
// @Produce      json
// @Param        subjectId path string true "Subject ID (UUID)"
// @Success      200 {object} dto.EngagementStatusResponse
// @Failure      400 {object} response.ErrorResponse "잘못된 Subject ID"
// @Failure      404 {object} response.ErrorResponse "Subject를 찾을 수 없음"
// @Router       /engagement/workspaces/{subjectId} [post]
func (h *EngagementHandler) Toggle(c *gin.Context) {
	subjectID, ok := h.parseSubjectID(c)
	if !ok {
		return
	}

	// Writes need a durable identity, so the adapter may mint a token and
	// set the visitor cookie on this response.
	visitorID := h.identity.resolveForWrite(c, subjectID.String())

	result, err := h.engagementService.ToggleLike(c.Request.Context(), h.subjectType, subjectID, visitorID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *EngagementHandler) parseSubjectID(c *gin.Context) (uuid.UUID, bool) {
	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid subject ID")
		return uuid.Nil, false
	}
	return subjectID, true
}
