package handler

import (
	"errors"
	"strconv"

	"user-center/internal/service"
	"user-center/pkg/jwt"
	"user-center/pkg/response"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	items     *service.ItemService
	favorites *service.FavoriteService
	users     *service.UserService
}

func NewItemHandler(items *service.ItemService, favorites *service.FavoriteService, users *service.UserService) *ItemHandler {
	return &ItemHandler{items: items, favorites: favorites, users: users}
}

// Create 录入商品（需要JWT认证，且账号须有is_staff权限）
func (h *ItemHandler) Create(c *gin.Context) {
	user, err := h.users.GetProfile(jwt.GetUserID(c))
	if err != nil {
		response.Unauthorized(c, "账号未认证")
		return
	}
	if !user.IsStaff {
		response.Forbidden(c, "仅限管理账号操作")
		return
	}

	type req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Price       int    `json:"price"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.items.Create(r.Name, r.Description, r.Price)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.SuccessWithMessage(c, "商品已录入", response.FilterItemInfo(item))
}

// List 商品列表（分页）
func (h *ItemHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	items, total, err := h.items.List(page, pageSize)
	if err != nil {
		response.InternalError(c, "查询商品列表失败")
		return
	}

	infos := make([]*response.ItemInfo, 0, len(items))
	for i := range items {
		infos = append(infos, response.FilterItemInfo(&items[i]))
	}
	response.Success(c, &response.ItemListResponse{
		Items:    infos,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Detail 商品详情
func (h *ItemHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "item_id格式不正确")
		return
	}

	item, err := h.items.Get(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "查询商品失败")
		return
	}
	response.Success(c, response.FilterItemInfo(item))
}

// Favorite 收藏商品（需要JWT认证）
func (h *ItemHandler) Favorite(c *gin.Context) {
	type req struct {
		ItemID uint `json:"item_id" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := jwt.GetUserID(c)
	if err := h.favorites.Favorite(userID, r.ItemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "收藏失败")
		return
	}
	response.SuccessWithMessage(c, "收藏成功", nil)
}

// Unfavorite 取消收藏（需要JWT认证）
func (h *ItemHandler) Unfavorite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "item_id格式不正确")
		return
	}

	userID := jwt.GetUserID(c)
	if err := h.favorites.Unfavorite(userID, uint(id)); err != nil {
		response.InternalError(c, "取消收藏失败")
		return
	}
	response.SuccessWithMessage(c, "已取消收藏", nil)
}

// ListFavorites 查询当前账号收藏的商品（需要JWT认证）
func (h *ItemHandler) ListFavorites(c *gin.Context) {
	userID := jwt.GetUserID(c)

	items, err := h.favorites.ListItems(userID)
	if err != nil {
		response.InternalError(c, "查询收藏列表失败")
		return
	}

	infos := make([]*response.ItemInfo, 0, len(items))
	for i := range items {
		infos = append(infos, response.FilterItemInfo(&items[i]))
	}
	response.Success(c, gin.H{
		"items": infos,
		"total": len(infos),
	})
}
