package service

import (
	"errors"
	"testing"
	"time"

	"user-center/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeItemStore 内存商品存储
type fakeItemStore struct {
	items map[uint]model.Item
}

func newFakeItemStore(items ...model.Item) *fakeItemStore {
	s := &fakeItemStore{items: make(map[uint]model.Item)}
	for _, it := range items {
		s.items[it.ID] = it
	}
	return s
}

func (f *fakeItemStore) Create(item *model.Item) error {
	item.ID = uint(len(f.items) + 1)
	f.items[item.ID] = *item
	return nil
}

func (f *fakeItemStore) GetByID(id uint) (*model.Item, error) {
	if it, ok := f.items[id]; ok {
		return &it, nil
	}
	return nil, errNotFound
}

func (f *fakeItemStore) GetByIDs(ids []uint) ([]model.Item, error) {
	var out []model.Item
	for _, id := range ids {
		if it, ok := f.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemStore) List(page, pageSize int) ([]model.Item, int64, error) {
	var out []model.Item
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, int64(len(out)), nil
}

// fakeFavoriteStore 内存收藏存储，模拟(user_id, item_id)组合唯一约束
type fakeFavoriteStore struct {
	favs []model.UserFavoriteItem
}

func (f *fakeFavoriteStore) Create(fav *model.UserFavoriteItem) error {
	for _, existing := range f.favs {
		if existing.UserID == fav.UserID && existing.ItemID == fav.ItemID {
			return errDuplicate
		}
	}
	fav.CreatedAt = time.Now()
	f.favs = append(f.favs, *fav)
	return nil
}

func (f *fakeFavoriteStore) Delete(userID string, itemID uint) (int64, error) {
	for i, fav := range f.favs {
		if fav.UserID == userID && fav.ItemID == itemID {
			f.favs = append(f.favs[:i], f.favs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeFavoriteStore) ListByUser(userID string) ([]model.UserFavoriteItem, error) {
	var out []model.UserFavoriteItem
	// 按收藏时间倒序
	for i := len(f.favs) - 1; i >= 0; i-- {
		if f.favs[i].UserID == userID {
			out = append(out, f.favs[i])
		}
	}
	return out, nil
}

func (f *fakeFavoriteStore) CountByUser(userID string) (int64, error) {
	var n int64
	for _, fav := range f.favs {
		if fav.UserID == userID {
			n++
		}
	}
	return n, nil
}

func newTestFavoriteService(favs *fakeFavoriteStore, items *fakeItemStore) *FavoriteService {
	return NewFavoriteService(favs, items,
		func(err error) bool { return errors.Is(err, errDuplicate) },
		func(err error) bool { return errors.Is(err, errNotFound) },
	)
}

func TestFavorite(t *testing.T) {
	t.Parallel()

	items := newFakeItemStore(model.Item{ID: 1, Name: "商品A"})
	favs := &fakeFavoriteStore{}
	svc := newTestFavoriteService(favs, items)

	require.NoError(t, svc.Favorite("user-1", 1))

	count, err := svc.Count("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFavorite_DuplicateIsIdempotent(t *testing.T) {
	t.Parallel()

	items := newFakeItemStore(model.Item{ID: 1, Name: "商品A"})
	favs := &fakeFavoriteStore{}
	svc := newTestFavoriteService(favs, items)

	require.NoError(t, svc.Favorite("user-1", 1))
	require.NoError(t, svc.Favorite("user-1", 1), "重复收藏应当按成功处理")

	count, err := svc.Count("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "重复收藏不应产生第二条记录")
}

func TestFavorite_UnknownItem(t *testing.T) {
	t.Parallel()

	svc := newTestFavoriteService(&fakeFavoriteStore{}, newFakeItemStore())
	err := svc.Favorite("user-1", 999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUnfavorite_AbsentIsNoop(t *testing.T) {
	t.Parallel()

	items := newFakeItemStore(model.Item{ID: 1})
	favs := &fakeFavoriteStore{}
	svc := newTestFavoriteService(favs, items)

	assert.NoError(t, svc.Unfavorite("user-1", 1), "取消不存在的收藏应当视为成功")

	require.NoError(t, svc.Favorite("user-1", 1))
	require.NoError(t, svc.Unfavorite("user-1", 1))

	count, err := svc.Count("user-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListItems_OrderedByFavoriteTime(t *testing.T) {
	t.Parallel()

	items := newFakeItemStore(
		model.Item{ID: 1, Name: "商品A"},
		model.Item{ID: 2, Name: "商品B"},
		model.Item{ID: 3, Name: "商品C"},
	)
	favs := &fakeFavoriteStore{}
	svc := newTestFavoriteService(favs, items)

	require.NoError(t, svc.Favorite("user-1", 2))
	require.NoError(t, svc.Favorite("user-1", 3))
	require.NoError(t, svc.Favorite("user-1", 1))

	got, err := svc.ListItems("user-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	// 最近收藏的排在前面
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)
	assert.Equal(t, uint(2), got[2].ID)
}

func TestListItems_Empty(t *testing.T) {
	t.Parallel()

	svc := newTestFavoriteService(&fakeFavoriteStore{}, newFakeItemStore())
	got, err := svc.ListItems("user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
