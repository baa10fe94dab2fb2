package model

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"user-center/pkg/uid"
)

// User 账号模型
// 主键为32位字符ID（按创建时间可排序、不可枚举），创建时分配一次，之后不再变化
// 邮箱是登录标识：唯一索引，入库前统一规范化
// 密码仅存储哈希（PasswordHash），不存储明文
// IsActive 为软禁用标记：停用账号而非删除
// 表名固定为 auth_user

type User struct {
	ID           string    `gorm:"type:char(32);primaryKey;comment:账号ID"`
	Email        string    `gorm:"type:varchar(128);not null;uniqueIndex;comment:邮箱(登录标识)"`
	PasswordHash string    `gorm:"type:varchar(255);not null;comment:密码哈希"`
	FullName     string    `gorm:"type:varchar(150);comment:姓名"`
	Nickname     string    `gorm:"type:varchar(32);not null;comment:昵称"`
	Gender       int       `gorm:"default:0;comment:性别(0为未指定)"`
	IsStaff      bool      `gorm:"default:false;comment:是否可登录管理后台"`
	IsActive     bool      `gorm:"default:true;comment:是否启用"`
	IsSuperuser  bool      `gorm:"default:false;comment:是否超级管理员"`
	DateJoined   time.Time `gorm:"comment:注册时间"`
}

// TableName 指定表名
func (User) TableName() string { return "auth_user" }

// BeforeCreate 入库前补齐ID和注册时间（ID只分配一次，已有则不覆盖）
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uid.New()
	}
	if u.DateJoined.IsZero() {
		u.DateJoined = time.Now()
	}
	return nil
}

// Clean 校验前重新规范化邮箱（幂等，重复调用结果不变）
func (u *User) Clean() {
	u.Email = NormalizeEmail(u.Email)
}

// GetFullName 返回姓名
func (u *User) GetFullName() string { return u.FullName }

// GetShortName 返回姓名（未做缩写推导，与 GetFullName 一致）
func (u *User) GetShortName() string { return u.FullName }

// NormalizeEmail 规范化邮箱：去除首尾空白，域名部分转小写
// 本地部分大小写保留。幂等
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
