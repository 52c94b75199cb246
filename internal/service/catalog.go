package service

import (
	"StockKeeper/internal/cache"
	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ItemInput — данные товара от хендлера.
type ItemInput struct {
	Name        string
	Description string
	Quantity    int64
	Price       decimal.Decimal
	CategoryID  *int64
}

// CatalogService — CRUD каталога. Каждая мутация товара пишет запись
// журнала в одной транзакции с самим изменением: неподтверждённых
// журналом изменений в базе не бывает.
type CatalogService struct {
	items  repo.ItemRepository
	cats   repo.CategoryRepository
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewCatalogService(items repo.ItemRepository, cats repo.CategoryRepository, c cache.Cache, ttl time.Duration, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{items: items, cats: cats, cache: c, ttl: ttl, logger: logger}
}

func listCacheKey(f repo.ItemFilter) string {
	cat := ""
	if f.CategoryID != nil {
		cat = fmt.Sprint(*f.CategoryID)
	}
	return fmt.Sprintf("items:search=%s:category=%s", f.Search, cat)
}

// ListItems возвращает товары по фильтру. Результат мемоизируется
// на окно TTL по ключу (поиск, категория); устаревание в пределах
// окна — принятый компромисс.
func (s *CatalogService) ListItems(ctx context.Context, f repo.ItemFilter) ([]model.Item, error) {
	key := listCacheKey(f)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached []model.Item
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// битое значение в кеше — идём в базу
		s.logger.Warnw("catalog: broken cache entry", "key", key)
	}

	items, err := s.items.List(ctx, f)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(items); err == nil {
		s.cache.Set(ctx, key, raw, s.ttl)
	}
	return items, nil
}

func (s *CatalogService) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return it, nil
}

// CreateItem создаёт товар от имени actorID.
func (s *CatalogService) CreateItem(ctx context.Context, actorID int64, in ItemInput) (*model.Item, error) {
	if in.CategoryID != nil {
		if _, err := s.cats.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, translateNotFound(err)
		}
	}

	it := &model.Item{
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
	}
	entry := &model.Log{
		UserID:      actorID,
		Action:      model.ActionCreate,
		Description: fmt.Sprintf("Создан товар «%s»", in.Name),
	}
	if err := s.items.CreateWithLog(ctx, it, entry); err != nil {
		return nil, err
	}
	return it, nil
}

// UpdateItem перезаписывает поля товара от имени actorID.
func (s *CatalogService) UpdateItem(ctx context.Context, actorID, id int64, in ItemInput) (*model.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if in.CategoryID != nil {
		if _, err := s.cats.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, translateNotFound(err)
		}
	}

	it.Name = in.Name
	it.Description = in.Description
	it.Quantity = in.Quantity
	it.Price = in.Price
	it.CategoryID = in.CategoryID
	it.Category = nil

	entry := &model.Log{
		UserID:      actorID,
		Action:      model.ActionUpdate,
		Description: fmt.Sprintf("Изменён товар «%s»", in.Name),
	}
	if err := s.items.UpdateWithLog(ctx, it, entry); err != nil {
		return nil, err
	}
	return it, nil
}

// DeleteItem удаляет товар; записи журнала о нём остаются с пустой ссылкой.
func (s *CatalogService) DeleteItem(ctx context.Context, actorID, id int64) error {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return translateNotFound(err)
	}

	entry := &model.Log{
		UserID:      actorID,
		Action:      model.ActionDelete,
		Description: fmt.Sprintf("Удалён товар «%s»", it.Name),
	}
	return translateNotFound(s.items.DeleteWithLog(ctx, id, entry))
}

// ListCategories возвращает все категории.
func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.cats.List(ctx)
}

// CreateCategory создаёт категорию с уникальным именем.
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if existing, err := s.cats.GetByName(ctx, name); err == nil && existing != nil {
		return nil, ErrNameTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.Category{Name: name}
	if err := s.cats.Create(ctx, c); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return c, nil
}

// UpdateCategory переименовывает категорию.
func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, name string) (*model.Category, error) {
	c, err := s.cats.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if existing, err := s.cats.GetByName(ctx, name); err == nil && existing != nil && existing.ID != id {
		return nil, ErrNameTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c.Name = name
	if err := s.cats.Update(ctx, c); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return c, nil
}

// DeleteCategory удаляет категорию, товары остаются без категории.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return translateNotFound(s.cats.Delete(ctx, id))
}
