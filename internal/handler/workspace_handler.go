package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workspace-listing-api/internal/dto"
	"workspace-listing-api/internal/response"
	"workspace-listing-api/internal/service"
)

// WorkspaceHandler serves the ranked workspace listing
type WorkspaceHandler struct {
	listingService  service.ListingService
	defaultPageSize int
}

// NewWorkspaceHandler creates a new WorkspaceHandler
func NewWorkspaceHandler(listingService service.ListingService, defaultPageSize int) *WorkspaceHandler {
	return &WorkspaceHandler{
		listingService:  listingService,
		defaultPageSize: defaultPageSize,
	}
}

// ListByLocation godoc
// @Summary      지역별 워크스페이스 목록 조회
// @Description  필터링/랭킹/페이지네이션된 워크스페이스 목록을 조회합니다. categories는 콤마로 구분되며 AND 조건으로 적용됩니다
// @Tags         workspaces
// @Produce      json
// @Param        locationId path string true "Location ID (UUID)"
// @Param        categories query string false "콤마로 구분된 카테고리 키 (AND)"
// @Param        filterDropin query bool false "드랍인 가능 여부 필터"
// @Param        filterMultipleLocations query bool false "다지점 여부 필터"
// @Param        page query int false "페이지 (1부터)"
// @Param        limit query int false "페이지 크기"
// @Param        all query bool false "전체 반환 모드"
// @Success      200 {object} dto.WorkspaceListResponse
// @Failure      400 {object} response.ErrorResponse "잘못된 Location ID"
// @Failure      404 {object} response.ErrorResponse "Location을 찾을 수 없음"
// @Router       /locations/{locationId}/workspaces [get]
func (h *WorkspaceHandler) ListByLocation(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("locationId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid location ID")
		return
	}

	query := &dto.WorkspaceListQuery{
		Categories:        parseCategories(c.Query("categories")),
		DropIn:            parseTriStateBool(c.Query("filterDropin")),
		MultipleLocations: parseTriStateBool(c.Query("filterMultipleLocations")),
		Page:              parsePositiveInt(c.Query("page"), 1),
		Limit:             parsePositiveInt(c.Query("limit"), h.defaultPageSize),
		All:               c.Query("all") == "true",
	}

	result, err := h.listingService.ListWorkspaces(c.Request.Context(), locationID, query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseCategories splits the comma-separated category list, dropping empties
func parseCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	categories := make([]string, 0, len(parts))
	for _, part := range parts {
		if key := strings.TrimSpace(part); key != "" {
			categories = append(categories, key)
		}
	}
	return categories
}

// parseTriStateBool parses an optional boolean facet; empty means no constraint
func parseTriStateBool(raw string) *bool {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// parsePositiveInt parses a positive integer, clamping anything else to def
func parsePositiveInt(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
