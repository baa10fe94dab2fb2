package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// IsDuplicateEntry 判断是否为唯一约束冲突
// 并发同邮箱注册时，数据库保证只有一条插入成功，失败方得到MySQL 1062
func IsDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mySQLErr *mysql.MySQLError
	if errors.As(err, &mySQLErr) {
		return mySQLErr.Number == 1062
	}
	return false
}

// IsNotFound 判断是否为记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
