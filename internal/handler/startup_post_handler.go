package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workspace-listing-api/internal/service"
)

// StartupPostHandler serves the startup-board feed
type StartupPostHandler struct {
	listingService  service.ListingService
	defaultPageSize int
}

// NewStartupPostHandler creates a new StartupPostHandler
func NewStartupPostHandler(listingService service.ListingService, defaultPageSize int) *StartupPostHandler {
	return &StartupPostHandler{
		listingService:  listingService,
		defaultPageSize: defaultPageSize,
	}
}

// List godoc
// @Summary      스타트업 보드 목록 조회
// @Description  스타트업 보드 글을 최신순으로 조회합니다
// @Tags         startup-posts
// @Produce      json
// @Param        page query int false "페이지 (1부터)"
// @Param        limit query int false "페이지 크기"
// @Param        all query bool false "전체 반환 모드"
// @Success      200 {object} dto.StartupPostListResponse
// @Router       /startup-posts [get]
func (h *StartupPostHandler) List(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), h.defaultPageSize)
	all := c.Query("all") == "true"

	result, err := h.listingService.ListStartupPosts(c.Request.Context(), page, limit, all)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
