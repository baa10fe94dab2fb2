package service

import (
	"errors"

	"user-center/internal/model"
)

var (
	ErrItemNotFound     = errors.New("商品不存在")
	ErrItemNameRequired = errors.New("商品名称不能为空")
)

// ItemStore 商品存储接口
type ItemStore interface {
	Create(item *model.Item) error
	GetByID(id uint) (*model.Item, error)
	GetByIDs(ids []uint) ([]model.Item, error)
	List(page, pageSize int) ([]model.Item, int64, error)
}

// ItemNotFoundChecker 判断存储层错误是否为记录不存在
type ItemNotFoundChecker func(err error) bool

// ItemService 商品服务
type ItemService struct {
	repo       ItemStore
	isNotFound ItemNotFoundChecker
}

func NewItemService(repo ItemStore, isNotFound ItemNotFoundChecker) *ItemService {
	if isNotFound == nil {
		isNotFound = func(error) bool { return false }
	}
	return &ItemService{repo: repo, isNotFound: isNotFound}
}

// Create 录入商品（仅限is_staff账号，权限在handler层校验）
func (s *ItemService) Create(name, description string, price int) (*model.Item, error) {
	if name == "" {
		return nil, ErrItemNameRequired
	}
	item := &model.Item{Name: name, Description: description, Price: price}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// List 分页查询商品列表
func (s *ItemService) List(page, pageSize int) ([]model.Item, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return s.repo.List(page, pageSize)
}

// Get 查询商品详情
func (s *ItemService) Get(id uint) (*model.Item, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if s.isNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}
