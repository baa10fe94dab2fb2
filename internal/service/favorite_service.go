package service

import (
	"user-center/internal/model"
)

// FavoriteStore 收藏存储接口
type FavoriteStore interface {
	Create(fav *model.UserFavoriteItem) error
	Delete(userID string, itemID uint) (int64, error)
	ListByUser(userID string) ([]model.UserFavoriteItem, error)
	CountByUser(userID string) (int64, error)
}

// FavoriteService 收藏服务
type FavoriteService struct {
	favs        FavoriteStore
	items       ItemStore
	isDuplicate DuplicateChecker
	isNotFound  ItemNotFoundChecker
}

func NewFavoriteService(favs FavoriteStore, items ItemStore, isDuplicate DuplicateChecker, isNotFound ItemNotFoundChecker) *FavoriteService {
	if isDuplicate == nil {
		isDuplicate = func(error) bool { return false }
	}
	if isNotFound == nil {
		isNotFound = func(error) bool { return false }
	}
	return &FavoriteService{favs: favs, items: items, isDuplicate: isDuplicate, isNotFound: isNotFound}
}

// Favorite 收藏商品
// 重复收藏是幂等操作：唯一索引冲突按成功处理
func (s *FavoriteService) Favorite(userID string, itemID uint) error {
	if _, err := s.items.GetByID(itemID); err != nil {
		if s.isNotFound(err) {
			return ErrItemNotFound
		}
		return err
	}

	fav := &model.UserFavoriteItem{UserID: userID, ItemID: itemID}
	if err := s.favs.Create(fav); err != nil {
		if s.isDuplicate(err) {
			return nil
		}
		return err
	}
	return nil
}

// Unfavorite 取消收藏
// 幂等：收藏关系不存在时同样视为成功
func (s *FavoriteService) Unfavorite(userID string, itemID uint) error {
	_, err := s.favs.Delete(userID, itemID)
	return err
}

// ListItems 查询用户收藏的商品列表，按收藏时间倒序
func (s *FavoriteService) ListItems(userID string) ([]model.Item, error) {
	favs, err := s.favs.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(favs) == 0 {
		return []model.Item{}, nil
	}

	ids := make([]uint, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ItemID)
	}
	items, err := s.items.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	// 按收藏顺序排列（GetByIDs不保证顺序）
	byID := make(map[uint]model.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	ordered := make([]model.Item, 0, len(favs))
	for _, f := range favs {
		if it, ok := byID[f.ItemID]; ok {
			ordered = append(ordered, it)
		}
	}
	return ordered, nil
}

// Count 统计用户收藏数量
func (s *FavoriteService) Count(userID string) (int64, error) {
	return s.favs.CountByUser(userID)
}
