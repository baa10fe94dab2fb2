package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"域名转小写", "User@EXAMPLE.COM", "User@example.com"},
		{"本地部分保留大小写", "MiXeD@Example.Com", "MiXeD@example.com"},
		{"去除首尾空白", "  a@example.com  ", "a@example.com"},
		{"无@原样返回", "not-an-email", "not-an-email"},
		{"空字符串", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeEmail(tc.in))
		})
	}
}

func TestNormalizeEmail_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"User@EXAMPLE.COM", " a@B.c ", "x@y.z"}
	for _, in := range inputs {
		once := NormalizeEmail(in)
		assert.Equal(t, once, NormalizeEmail(once))
	}
}

func TestUser_Clean(t *testing.T) {
	t.Parallel()

	u := &User{Email: " Alice@EXAMPLE.com "}
	u.Clean()
	assert.Equal(t, "Alice@example.com", u.Email)

	// 二次调用结果不变
	u.Clean()
	assert.Equal(t, "Alice@example.com", u.Email)
}

func TestUser_Names(t *testing.T) {
	t.Parallel()

	u := &User{FullName: "张 三"}
	assert.Equal(t, "张 三", u.GetFullName())
	assert.Equal(t, "张 三", u.GetShortName())

	// 未设置时两者均返回空字符串
	empty := &User{}
	assert.Equal(t, "", empty.GetFullName())
	assert.Equal(t, "", empty.GetShortName())
}
