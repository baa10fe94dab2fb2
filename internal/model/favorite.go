package model

import (
	"time"
)

// UserFavoriteItem 用户收藏商品关系
// (UserID, ItemID) 组合唯一：同一商品同一用户只收藏一次

type UserFavoriteItem struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"type:char(32);not null;uniqueIndex:idx_user_item;comment:账号ID"`
	ItemID    uint      `gorm:"not null;uniqueIndex:idx_user_item;comment:商品ID"`
	CreatedAt time.Time `gorm:"comment:收藏时间"`
}

func (UserFavoriteItem) TableName() string { return "user_favorite_item" }
