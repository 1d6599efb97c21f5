package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-service/internal/model"
	"storefront-service/internal/repository"
)

// In-memory repository fakes shared by the service tests.

type fakeOrderRepo struct {
	orders map[string]*model.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*model.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *model.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	cp := *o
	f.orders[o.ID.Hex()] = &cp
	return nil
}

func (f *fakeOrderRepo) Save(_ context.Context, o *model.Order) error {
	if _, ok := f.orders[o.ID.Hex()]; !ok {
		return repository.ErrNotFound
	}
	cp := *o
	f.orders[o.ID.Hex()] = &cp
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) FindAll(_ context.Context) ([]*model.Order, error) {
	var out []*model.Order
	for _, o := range f.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOrderRepo) FindByStatus(_ context.Context, status string) ([]*model.Order, error) {
	var out []*model.Order
	for _, o := range f.orders {
		if o.Status == status {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]*model.Order, error) {
	var out []*model.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*model.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	f.products[p.ID.Hex()] = &cp
	return nil
}

func (f *fakeProductRepo) Save(_ context.Context, p *model.Product) error {
	if _, ok := f.products[p.ID.Hex()]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	f.products[p.ID.Hex()] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range f.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) FindByCategory(_ context.Context, categoryID primitive.ObjectID) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCartRepo struct {
	carts map[primitive.ObjectID]*model.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[primitive.ObjectID]*model.Cart)}
}

func (f *fakeCartRepo) Save(_ context.Context, cart *model.Cart) error {
	cp := *cart
	f.carts[cart.UserID] = &cp
	return nil
}

func (f *fakeCartRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) (*model.Cart, error) {
	cart, ok := f.carts[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *cart
	return &cp, nil
}

func (f *fakeCartRepo) DeleteByUserID(_ context.Context, userID primitive.ObjectID) error {
	delete(f.carts, userID)
	return nil
}

type fakeSettingsRepo struct {
	settings *model.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*model.Settings, error) {
	if f.settings == nil {
		return nil, repository.ErrNotFound
	}
	cp := *f.settings
	return &cp, nil
}

func (f *fakeSettingsRepo) Save(_ context.Context, s *model.Settings) error {
	cp := *s
	f.settings = &cp
	return nil
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	cp := *u
	f.users[u.ID.Hex()] = &cp
	return nil
}

func (f *fakeUserRepo) Save(_ context.Context, u *model.User) error {
	if _, ok := f.users[u.ID.Hex()]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	f.users[u.ID.Hex()] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByProvider(_ context.Context, provider, providerID string) (*model.User, error) {
	for _, u := range f.users {
		if u.Provider == provider && u.ProviderID == providerID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeCategoryRepo struct {
	categories map[string]*model.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, cat *model.Category) error {
	if cat.ID.IsZero() {
		cat.ID = primitive.NewObjectID()
	}
	cp := *cat
	f.categories[cat.ID.Hex()] = &cp
	return nil
}

func (f *fakeCategoryRepo) Save(_ context.Context, cat *model.Category) error {
	if _, ok := f.categories[cat.ID.Hex()]; !ok {
		return repository.ErrNotFound
	}
	cp := *cat
	f.categories[cat.ID.Hex()] = &cp
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id string) (*model.Category, error) {
	cat, ok := f.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *cat
	return &cp, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*model.Category, error) {
	var out []*model.Category
	for _, cat := range f.categories {
		cp := *cat
		out = append(out, &cp)
	}
	return out, nil
}

type fakeWishlistRepo struct {
	wishlists map[primitive.ObjectID]*model.Wishlist
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{wishlists: make(map[primitive.ObjectID]*model.Wishlist)}
}

func (f *fakeWishlistRepo) Save(_ context.Context, w *model.Wishlist) error {
	cp := *w
	f.wishlists[w.UserID] = &cp
	return nil
}

func (f *fakeWishlistRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) (*model.Wishlist, error) {
	w, ok := f.wishlists[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

type fakePublisher struct {
	placed []*model.Order
}

func (f *fakePublisher) OrderPlaced(_ context.Context, o *model.Order) error {
	f.placed = append(f.placed, o)
	return nil
}
