package service

import (
	"context"
	"errors"
	"strings"

	"user-center/internal/model"
	"user-center/pkg/jwt"
	"user-center/pkg/password"
	"user-center/pkg/uid"
)

// 账号创建与登录的校验错误
// 这类错误在触库前返回，同样的参数重试不会成功
var (
	ErrEmailRequired      = errors.New("邮箱不能为空")
	ErrEmailInvalid       = errors.New("邮箱格式不正确")
	ErrPasswordRequired   = errors.New("密码不能为空")
	ErrNicknameRequired   = errors.New("昵称不能为空")
	ErrEmailTaken         = errors.New("邮箱已被注册")
	ErrSuperuserStaffFlag = errors.New("超级管理员必须设置is_staff=true")
	ErrSuperuserFlag      = errors.New("超级管理员必须设置is_superuser=true")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrAccountDisabled    = errors.New("账号已停用")
)

// UserStore 账号存储接口
// GetByEmail 匹配不区分大小写：存储保留本地部分的原始大小写，
// 但同一邮箱不同大小写写法指向同一账号
type UserStore interface {
	Create(user *model.User) error
	GetByID(id string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
}

// Mailer 邮件发送接口
type Mailer interface {
	Send(ctx context.Context, from string, to []string, subject, body string) error
}

// DuplicateChecker 判断存储层错误是否为唯一约束冲突
type DuplicateChecker func(err error) bool

// AccountFields 创建账号时的可选字段
// 布尔标志使用指针区分"未指定"与"显式传false"：
// CreateSuperuser 需要据此在触库前拦截显式关掉权限标志的调用
type AccountFields struct {
	FullName    string
	Nickname    string
	Gender      int
	IsStaff     *bool
	IsActive    *bool
	IsSuperuser *bool
}

// UserService 账号服务
// 账号实体的唯一合法构造入口：先校验、再规范化、后落库
type UserService struct {
	repo        UserStore
	jwtService  *jwt.JWTService
	mailer      Mailer
	isDuplicate DuplicateChecker
}

func NewUserService(repo UserStore, jwtService *jwt.JWTService, mailer Mailer, isDuplicate DuplicateChecker) *UserService {
	if isDuplicate == nil {
		isDuplicate = func(error) bool { return false }
	}
	return &UserService{repo: repo, jwtService: jwtService, mailer: mailer, isDuplicate: isDuplicate}
}

// CreateUser 创建普通账号
// is_staff、is_superuser 默认为false，除非extra显式指定
func (s *UserService) CreateUser(email, plainPassword string, extra AccountFields) (*model.User, error) {
	if extra.IsStaff == nil {
		extra.IsStaff = boolPtr(false)
	}
	if extra.IsSuperuser == nil {
		extra.IsSuperuser = boolPtr(false)
	}
	return s.createUser(email, plainPassword, extra)
}

// CreateSuperuser 创建超级管理员账号
// is_staff、is_superuser 默认为true
// 调用方显式传false时在触库前直接报错，防止悄悄创建缺少权限标志的管理员
func (s *UserService) CreateSuperuser(email, plainPassword string, extra AccountFields) (*model.User, error) {
	if extra.IsStaff == nil {
		extra.IsStaff = boolPtr(true)
	}
	if extra.IsSuperuser == nil {
		extra.IsSuperuser = boolPtr(true)
	}

	if !*extra.IsStaff {
		return nil, ErrSuperuserStaffFlag
	}
	if !*extra.IsSuperuser {
		return nil, ErrSuperuserFlag
	}

	return s.createUser(email, plainPassword, extra)
}

// createUser 公共创建流程：校验 → 规范化 → 哈希密码 → 单条INSERT
// 不存在可观察的中间状态：要么完整记录落库，要么什么都没有
func (s *UserService) createUser(email, plainPassword string, extra AccountFields) (*model.User, error) {
	email = model.NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if !isValidEmail(email) {
		return nil, ErrEmailInvalid
	}
	if plainPassword == "" {
		return nil, ErrPasswordRequired
	}
	if strings.TrimSpace(extra.Nickname) == "" {
		return nil, ErrNicknameRequired
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uid.New(),
		Email:        email,
		PasswordHash: hash,
		FullName:     extra.FullName,
		Nickname:     strings.TrimSpace(extra.Nickname),
		Gender:       extra.Gender,
		IsStaff:      *extra.IsStaff,
		IsActive:     true,
		IsSuperuser:  *extra.IsSuperuser,
	}
	if extra.IsActive != nil {
		user.IsActive = *extra.IsActive
	}

	if err := s.repo.Create(user); err != nil {
		if s.isDuplicate(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Register 注册：创建普通账号并签发token
func (s *UserService) Register(email, plainPassword, nickname string) (*model.User, string, error) {
	user, err := s.CreateUser(email, plainPassword, AccountFields{Nickname: nickname})
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(
		user.ID,
		map[string]interface{}{"nickname": user.Nickname},
	)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login 登录
// 停用账号(is_active=false)视为不可认证，不区分于密码错误之外单独提示
func (s *UserService) Login(email, plainPassword string) (*model.User, string, error) {
	email = model.NormalizeEmail(email)
	if email == "" || plainPassword == "" {
		return nil, "", ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, "", ErrAccountDisabled
	}
	if !password.Verify(plainPassword, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(
		u.ID,
		map[string]interface{}{"nickname": u.Nickname},
	)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetProfile 按ID查询账号
func (s *UserService) GetProfile(id string) (*model.User, error) {
	return s.repo.GetByID(id)
}

// EmailUser 向账号邮箱发送通知
// 发送失败原样返回给调用方，不重试
func (s *UserService) EmailUser(ctx context.Context, user *model.User, subject, body, from string) error {
	return s.mailer.Send(ctx, from, []string{user.Email}, subject, body)
}

// isValidEmail 基础格式检查：本地部分@域名部分，两侧非空
func isValidEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t\n")
}

func boolPtr(b bool) *bool { return &b }
