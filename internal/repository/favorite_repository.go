package repository

import (
	"user-center/internal/model"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	orm *gorm.DB
}

func NewFavoriteRepository(orm *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{orm: orm}
}

func (r *FavoriteRepository) Create(fav *model.UserFavoriteItem) error {
	return r.orm.Create(fav).Error
}

// Delete 删除收藏关系，返回实际删除的行数
func (r *FavoriteRepository) Delete(userID string, itemID uint) (int64, error) {
	result := r.orm.Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&model.UserFavoriteItem{})
	return result.RowsAffected, result.Error
}

// ListByUser 查询用户的全部收藏，按收藏时间倒序
func (r *FavoriteRepository) ListByUser(userID string) ([]model.UserFavoriteItem, error) {
	var favs []model.UserFavoriteItem
	err := r.orm.Where("user_id = ?", userID).Order("created_at DESC").Find(&favs).Error
	if err != nil {
		return nil, err
	}
	return favs, nil
}

func (r *FavoriteRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.orm.Model(&model.UserFavoriteItem{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
