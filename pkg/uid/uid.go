package uid

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Length 账号ID的固定长度（32个十六进制字符）
const Length = 32

// New 生成新的账号ID
// 基于UUIDv7：前48位为毫秒时间戳，按创建时间字典序递增；
// 其余为随机位，不可被枚举猜测。同一进程内保证单调递增。
// 生成永不失败：底层随机源异常时退化为UUIDv4
func New() string {
	u, err := uuid.NewV7()
	if err != nil {
		u = uuid.New()
	}
	return hex.EncodeToString(u[:])
}

// Validate 校验是否为合法的账号ID（32个小写十六进制字符）
func Validate(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
