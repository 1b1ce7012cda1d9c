package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storetrack/storetrack/internal/catalog/domain"
	inventory "github.com/storetrack/storetrack/internal/inventory/domain"
	"github.com/storetrack/storetrack/pkg/apperror"
)

// catalogState is the in-memory store behind the fake repositories.
type catalogState struct {
	products       map[uint]domain.Product
	categories     map[uint]domain.Category
	movements      []inventory.Movement
	nextProductID  uint
	nextCategoryID uint
}

func newCatalogState() *catalogState {
	return &catalogState{
		products:       make(map[uint]domain.Product),
		categories:     make(map[uint]domain.Category),
		nextProductID:  1,
		nextCategoryID: 1,
	}
}

func (s *catalogState) clone() *catalogState {
	out := &catalogState{
		products:       make(map[uint]domain.Product, len(s.products)),
		categories:     make(map[uint]domain.Category, len(s.categories)),
		nextProductID:  s.nextProductID,
		nextCategoryID: s.nextCategoryID,
	}
	for id, p := range s.products {
		out.products[id] = p
	}
	for id, c := range s.categories {
		out.categories[id] = c
	}
	out.movements = append([]inventory.Movement(nil), s.movements...)
	return out
}

func (s *catalogState) addCategory(name string) domain.Category {
	c := domain.Category{ID: s.nextCategoryID, Name: name}
	s.categories[c.ID] = c
	s.nextCategoryID++
	return c
}

func (s *catalogState) addProduct(p domain.Product) domain.Product {
	p.ID = s.nextProductID
	s.products[p.ID] = p
	s.nextProductID++
	return p
}

type fakeProducts struct{ state *catalogState }

func (r *fakeProducts) Create(ctx context.Context, product *domain.Product) error {
	product.ID = r.state.nextProductID
	r.state.nextProductID++
	r.state.products[product.ID] = *product
	return nil
}

func (r *fakeProducts) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	p, ok := r.state.products[id]
	if !ok {
		return nil, apperror.NotFound("Product with id=%d not found", id)
	}
	return &p, nil
}

func (r *fakeProducts) FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.state.products {
		if filter.CategoryID != 0 && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProducts) FindLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.state.products {
		if p.Quantity <= threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProducts) Update(ctx context.Context, product *domain.Product) error {
	if _, ok := r.state.products[product.ID]; !ok {
		return apperror.NotFound("Product with id=%d not found", product.ID)
	}
	r.state.products[product.ID] = *product
	return nil
}

func (r *fakeProducts) Delete(ctx context.Context, id uint) error {
	delete(r.state.products, id)
	return nil
}

func (r *fakeProducts) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	for _, p := range r.state.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type fakeCategories struct{ state *catalogState }

func (r *fakeCategories) Create(ctx context.Context, category *domain.Category) error {
	category.ID = r.state.nextCategoryID
	r.state.nextCategoryID++
	r.state.categories[category.ID] = *category
	return nil
}

func (r *fakeCategories) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	c, ok := r.state.categories[id]
	if !ok {
		return nil, apperror.NotFound("Category with id=%d not found", id)
	}
	return &c, nil
}

func (r *fakeCategories) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	for _, c := range r.state.categories {
		if c.Name == name {
			found := c
			return &found, nil
		}
	}
	return nil, apperror.NotFound("Category %q not found", name)
}

func (r *fakeCategories) FindAll(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range r.state.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategories) Update(ctx context.Context, category *domain.Category) error {
	r.state.categories[category.ID] = *category
	return nil
}

func (r *fakeCategories) Delete(ctx context.Context, id uint) error {
	delete(r.state.categories, id)
	return nil
}

type fakeLedger struct{ state *catalogState }

func (l *fakeLedger) ProductForUpdate(ctx context.Context, productID uint) (*domain.Product, error) {
	p, ok := l.state.products[productID]
	if !ok {
		return nil, apperror.NotFound("Product with id=%d not found", productID)
	}
	return &p, nil
}

func (l *fakeLedger) SetProductQuantity(ctx context.Context, productID uint, quantity int) error {
	p := l.state.products[productID]
	p.Quantity = quantity
	l.state.products[productID] = p
	return nil
}

func (l *fakeLedger) Append(ctx context.Context, movement *inventory.Movement) error {
	movement.ID = uint(len(l.state.movements) + 1)
	l.state.movements = append(l.state.movements, *movement)
	return nil
}

func (l *fakeLedger) DeleteByProduct(ctx context.Context, productID uint) error {
	kept := l.state.movements[:0]
	for _, m := range l.state.movements {
		if m.ProductID != productID {
			kept = append(kept, m)
		}
	}
	l.state.movements = kept
	return nil
}

type fakeTx struct{ state *catalogState }

func (t *fakeTx) Products() domain.ProductRepository    { return &fakeProducts{state: t.state} }
func (t *fakeTx) Categories() domain.CategoryRepository { return &fakeCategories{state: t.state} }
func (t *fakeTx) Ledger() inventory.Ledger              { return &fakeLedger{state: t.state} }

// fakeScope mimics transaction semantics: the function runs against a staged
// copy which replaces the live state only when it returns nil.
type fakeScope struct{ state *catalogState }

func (s *fakeScope) Execute(ctx context.Context, fn func(repos TxRepositories) error) error {
	staged := s.state.clone()
	if err := fn(&fakeTx{state: staged}); err != nil {
		return err
	}
	*s.state = *staged
	return nil
}

func TestCreateProductRecordsInitialStock(t *testing.T) {
	state := newCatalogState()
	category := state.addCategory("Electronics")
	handler := NewCreateProductHandler(&fakeScope{state: state})

	product, err := handler.Handle(context.Background(), CreateProductCommand{
		Name:       "Keyboard",
		Price:      49.90,
		Quantity:   10,
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, product.Quantity)
	assert.Equal(t, 10, state.products[product.ID].Quantity)

	require.Len(t, state.movements, 1)
	m := state.movements[0]
	assert.Equal(t, inventory.DirectionIn, m.Type)
	assert.Equal(t, 10, m.Quantity)
	assert.Equal(t, inventory.SourceInitialStock, m.SourceDocumentType)
	assert.Equal(t, "Initial stock on product creation", m.Note)
}

func TestCreateProductZeroQuantityWritesNoMovement(t *testing.T) {
	state := newCatalogState()
	category := state.addCategory("Electronics")
	handler := NewCreateProductHandler(&fakeScope{state: state})

	product, err := handler.Handle(context.Background(), CreateProductCommand{
		Name:       "Mouse",
		Price:      19.90,
		Quantity:   0,
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, product.Quantity)
	assert.Empty(t, state.movements)
}

func TestCreateProductValidation(t *testing.T) {
	state := newCatalogState()
	category := state.addCategory("Electronics")
	handler := NewCreateProductHandler(&fakeScope{state: state})

	cases := []CreateProductCommand{
		{Name: "", Price: 1, Quantity: 1, CategoryID: category.ID},
		{Name: "  ", Price: 1, Quantity: 1, CategoryID: category.ID},
		{Name: "X", Price: 1, Quantity: 1, CategoryID: 0},
		{Name: "X", Price: -1, Quantity: 1, CategoryID: category.ID},
		{Name: "X", Price: 1, Quantity: -1, CategoryID: category.ID},
	}
	for _, cmd := range cases {
		_, err := handler.Handle(context.Background(), cmd)
		require.Error(t, err, "%+v", cmd)
		assert.Equal(t, 400, apperror.StatusCode(err), "%+v", cmd)
	}
	assert.Empty(t, state.products)
}

func TestCreateProductUnknownCategoryRollsBack(t *testing.T) {
	state := newCatalogState()
	handler := NewCreateProductHandler(&fakeScope{state: state})

	_, err := handler.Handle(context.Background(), CreateProductCommand{
		Name:       "Keyboard",
		Price:      49.90,
		Quantity:   10,
		CategoryID: 42,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.StatusCode(err))
	assert.Empty(t, state.products)
	assert.Empty(t, state.movements)
}

func TestUpdateProductQuantityDecreaseWritesOutMovement(t *testing.T) {
	state := newCatalogState()
	category := state.addCategory("Electronics")
	product := state.addProduct(domain.Product{Name: "Keyboard", Price: 49.90, Quantity: 10, CategoryID: category.ID})
	handler := NewUpdateProductHandler(&fakeScope{state: state})

	newQty := 7
	updated, err := handler.Handle(context.Background(), UpdateProductCommand{
		ID:       product.ID,
		Quantity: &newQty,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	require.Len(t, state.movements, 1)
	m := state.movements[0]
	assert.Equal(t, inventory.DirectionOut, m.Type)
	assert.Equal(t, 3, m.Quantity)
	assert.Equal(t, inventory.SourceManualAdjustment, m.SourceDocumentType)
	assert.Equal(t, "Stock adjusted manually. Old quantity: 10, New quantity: 7", m.Note)
}

func TestUpdateProductQuantityIncreaseWritesInMovement(t *testing.T) {
	state := newCatalogState()
	category := state.addCategory("Electronics")
	product := state.addProduct(domain.Product{Name: "Keyboard", Price: 49.90, Quantity: 4, CategoryID: category.ID})
	handler := NewUpdateProductHandler(&fakeScope{state: state})

	newQty := 9
	_, err := handler.Handle(context.Background(), UpdateProductCommand{ID: product.ID, Quantity: &newQty})
	require.NoError(t, err)

	require.Len(t, state.movements, 1)
	assert.Equal(t, inventory.DirectionIn, state.movements[0].Type)
	assert.Equal(t, 5, state.movements[0].Quantity)
}

func TestUpdateProductSameQuantityWritesNoMovement(t *testing.T) {
	state := newCatalogState()
	category := state.addCategory("Electronics")
	product := state.addProduct(domain.Product{Name: "Keyboard", Price: 49.90, Quantity: 7, CategoryID: category.ID})
	handler := NewUpdateProductHandler(&fakeScope{state: state})

	sameQty := 7
	_, err := handler.Handle(context.Background(), UpdateProductCommand{ID: product.ID, Quantity: &sameQty})
	require.NoError(t, err)
	assert.Empty(t, state.movements)
}

func TestUpdateProductPriceOnly(t *testing.T) {
	state := newCatalogState()
	category := state.addCategory("Electronics")
	product := state.addProduct(domain.Product{Name: "Keyboard", Price: 49.90, Quantity: 7, CategoryID: category.ID})
	handler := NewUpdateProductHandler(&fakeScope{state: state})

	newPrice := 59.90
	updated, err := handler.Handle(context.Background(), UpdateProductCommand{ID: product.ID, Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 59.90, updated.Price)
	assert.Equal(t, 7, updated.Quantity)
	assert.Empty(t, state.movements)
}

func TestDeleteProductRemovesMovements(t *testing.T) {
	state := newCatalogState()
	category := state.addCategory("Electronics")
	product := state.addProduct(domain.Product{Name: "Keyboard", Price: 49.90, Quantity: 7, CategoryID: category.ID})
	other := state.addProduct(domain.Product{Name: "Mouse", Price: 19.90, Quantity: 3, CategoryID: category.ID})
	state.movements = []inventory.Movement{
		{ID: 1, ProductID: product.ID, Type: inventory.DirectionIn, Quantity: 7},
		{ID: 2, ProductID: other.ID, Type: inventory.DirectionIn, Quantity: 3},
	}
	handler := NewDeleteProductHandler(&fakeScope{state: state})

	require.NoError(t, handler.Handle(context.Background(), DeleteProductCommand{ID: product.ID}))

	_, exists := state.products[product.ID]
	assert.False(t, exists)
	require.Len(t, state.movements, 1)
	assert.Equal(t, other.ID, state.movements[0].ProductID)
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	state := newCatalogState()
	state.addCategory("Electronics")
	handler := NewCreateCategoryHandler(&fakeCategories{state: state})

	_, err := handler.Handle(context.Background(), CreateCategoryCommand{Name: "Electronics"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.StatusCode(err))
}

func TestCreateCategoryRejectsEmptyName(t *testing.T) {
	handler := NewCreateCategoryHandler(&fakeCategories{state: newCatalogState()})

	for _, name := range []string{"", "   "} {
		_, err := handler.Handle(context.Background(), CreateCategoryCommand{Name: name})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.StatusCode(err))
	}
}

func TestDeleteCategoryGuardedByProducts(t *testing.T) {
	state := newCatalogState()
	category := state.addCategory("Electronics")
	state.addProduct(domain.Product{Name: "Keyboard", CategoryID: category.ID})
	handler := NewDeleteCategoryHandler(&fakeCategories{state: state}, &fakeProducts{state: state})

	err := handler.Handle(context.Background(), DeleteCategoryCommand{ID: category.ID})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.StatusCode(err))
	assert.Equal(t, "Cannot delete category with existing products", apperror.UserMessage(err))

	_, exists := state.categories[category.ID]
	assert.True(t, exists)
}

func TestDeleteEmptyCategory(t *testing.T) {
	state := newCatalogState()
	category := state.addCategory("Empty")
	handler := NewDeleteCategoryHandler(&fakeCategories{state: state}, &fakeProducts{state: state})

	require.NoError(t, handler.Handle(context.Background(), DeleteCategoryCommand{ID: category.ID}))
	_, exists := state.categories[category.ID]
	assert.False(t, exists)
}
