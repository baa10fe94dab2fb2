package handler

import (
	"user-center/internal/service"
	"user-center/pkg/jwt"
	"user-center/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	users     *service.UserService
	favorites *service.FavoriteService
}

func NewDashboardHandler(users *service.UserService, favorites *service.FavoriteService) *DashboardHandler {
	return &DashboardHandler{users: users, favorites: favorites}
}

// Dashboard 工作台（需要JWT认证）
// 返回账号资料与收藏数量的汇总
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	userID := jwt.GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "账号未认证")
		return
	}

	user, err := h.users.GetProfile(userID)
	if err != nil {
		response.NotFound(c, "账号不存在")
		return
	}

	count, err := h.favorites.Count(userID)
	if err != nil {
		response.InternalError(c, "查询收藏数量失败")
		return
	}

	response.Success(c, &response.DashboardResponse{
		User:          response.FilterUserInfo(user),
		FavoriteCount: count,
	})
}
