package repository

import (
	"user-center/internal/model"

	"gorm.io/gorm"
)

type ItemRepository struct {
	orm *gorm.DB
}

func NewItemRepository(orm *gorm.DB) *ItemRepository {
	return &ItemRepository{orm: orm}
}

func (r *ItemRepository) Create(item *model.Item) error {
	return r.orm.Create(item).Error
}

func (r *ItemRepository) GetByID(id uint) (*model.Item, error) {
	var item model.Item
	if err := r.orm.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List 分页查询商品，按ID倒序
func (r *ItemRepository) List(page, pageSize int) ([]model.Item, int64, error) {
	var items []model.Item
	var total int64

	if err := r.orm.Model(&model.Item{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.orm.Order("id DESC").Offset(offset).Limit(pageSize).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByIDs 按ID集合查询商品
func (r *ItemRepository) GetByIDs(ids []uint) ([]model.Item, error) {
	var items []model.Item
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.orm.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
