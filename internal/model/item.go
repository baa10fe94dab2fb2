package model

import (
	"time"

	"gorm.io/gorm"
)

// Item 商品模型

type Item struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"type:varchar(128);not null;comment:名称"`
	Description string         `gorm:"type:varchar(512);comment:描述"`
	Price       int            `gorm:"default:0;comment:价格(分)"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Item) TableName() string { return "item" }
