package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"fridge-planner/internal/pkg/common"

	"go.etcd.io/bbolt"
)

const menuBucket = "menus"

// SavedMenu 保存された献立一式
type SavedMenu struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Days      []common.DayMenu `json:"days"`
	CreatedAt time.Time        `json:"created_at"`
}

// MenuStore 献立の永続化ストア
type MenuStore interface {
	// Save 献立を保存する（ID 未設定なら採番する）
	Save(menu *SavedMenu) error

	// Get ID で献立を取得する
	Get(id string) (*SavedMenu, error)

	// List 保存済みの献立を作成日時の新しい順で返す
	List() ([]*SavedMenu, error)

	// Delete 献立を削除する
	Delete(id string) error

	// Close ストアを閉じる
	Close() error
}

// BoltMenuStore bbolt による MenuStore 実装
type BoltMenuStore struct {
	db *bbolt.DB
}

// NewBoltMenuStore bbolt ファイルを開いてストアを生成する
func NewBoltMenuStore(path string) (*BoltMenuStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(menuBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltMenuStore{db: db}, nil
}

// Save 献立を保存する
func (s *BoltMenuStore) Save(menu *SavedMenu) error {
	if menu.ID == "" {
		menu.ID = common.GenerateUUID()
	}
	if menu.CreatedAt.IsZero() {
		menu.CreatedAt = time.Now()
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(menuBucket))
		data, err := json.Marshal(menu)
		if err != nil {
			return fmt.Errorf("marshaling menu: %w", err)
		}
		return bucket.Put([]byte(menu.ID), data)
	})
}

// Get ID で献立を取得する
func (s *BoltMenuStore) Get(id string) (*SavedMenu, error) {
	var menu *SavedMenu
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(menuBucket))
		data := bucket.Get([]byte(id))
		if data == nil {
			return common.ErrMenuNotFound
		}
		return json.Unmarshal(data, &menu)
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

// List 保存済みの献立を作成日時の新しい順で返す
func (s *BoltMenuStore) List() ([]*SavedMenu, error) {
	menus := make([]*SavedMenu, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(menuBucket))
		return bucket.ForEach(func(k, v []byte) error {
			var menu SavedMenu
			if err := json.Unmarshal(v, &menu); err != nil {
				return fmt.Errorf("unmarshaling menu: %w", err)
			}
			menus = append(menus, &menu)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(menus, func(i, j int) bool {
		return menus[i].CreatedAt.After(menus[j].CreatedAt)
	})

	return menus, nil
}

// Delete 献立を削除する
func (s *BoltMenuStore) Delete(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(menuBucket))
		if bucket.Get([]byte(id)) == nil {
			return common.ErrMenuNotFound
		}
		return bucket.Delete([]byte(id))
	})
}

// Close ストアを閉じる
func (s *BoltMenuStore) Close() error {
	return s.db.Close()
}
