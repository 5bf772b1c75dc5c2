// Package mocks provides mock implementations of ports for testing.
package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// --- UserRepository Mock ---

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mu sync.RWMutex

	// Storage
	users   map[string]*model.User // by ID
	byEmail map[string]string      // email -> ID

	// Call tracking
	Calls struct {
		Create            int
		Update            int
		FindByID          int
		FindByIDAnyStatus int
		FindByEmail       int
		ExistsByEmail     int
		List              int
		Count             int
		Delete            int
	}

	// Error injection
	Errors struct {
		Create            error
		Update            error
		FindByID          error
		FindByIDAnyStatus error
		FindByEmail       error
		ExistsByEmail     error
		List              error
		Count             error
		Delete            error
	}
}

// NewUserRepository creates a new mock UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]*model.User),
		byEmail: make(map[string]string),
	}
}

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Create++

	if m.Errors.Create != nil {
		return m.Errors.Create
	}

	email := user.Email().String()
	if _, exists := m.byEmail[email]; exists {
		return repository.ErrConflict
	}

	id := user.ID().String()
	m.users[id] = user
	m.byEmail[email] = id

	return nil
}

func (m *UserRepository) Update(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Update++

	if m.Errors.Update != nil {
		return m.Errors.Update
	}

	id := user.ID().String()
	old, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}

	email := user.Email().String()
	if owner, exists := m.byEmail[email]; exists && owner != id {
		return repository.ErrConflict
	}

	delete(m.byEmail, old.Email().String())
	m.users[id] = user
	m.byEmail[email] = id

	return nil
}

func (m *UserRepository) FindByID(ctx context.Context, id types.ID) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByID++

	if m.Errors.FindByID != nil {
		return nil, m.Errors.FindByID
	}

	user, ok := m.users[id.String()]
	if !ok || !user.IsActive() {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) FindByIDAnyStatus(ctx context.Context, id types.ID) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByIDAnyStatus++

	if m.Errors.FindByIDAnyStatus != nil {
		return nil, m.Errors.FindByIDAnyStatus
	}

	user, ok := m.users[id.String()]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) FindByEmail(ctx context.Context, email types.Email) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByEmail++

	if m.Errors.FindByEmail != nil {
		return nil, m.Errors.FindByEmail
	}

	id, ok := m.byEmail[email.String()]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := m.users[id]
	if !user.IsActive() {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) ExistsByEmail(ctx context.Context, email types.Email) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.ExistsByEmail++

	if m.Errors.ExistsByEmail != nil {
		return false, m.Errors.ExistsByEmail
	}

	_, ok := m.byEmail[email.String()]
	return ok, nil
}

func (m *UserRepository) List(ctx context.Context, params repository.ListUsersParams) ([]*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.List++

	if m.Errors.List != nil {
		return nil, m.Errors.List
	}

	users := m.filtered(params)

	sort.Slice(users, func(i, j int) bool {
		before := users[i].CreatedAt().Time().Before(users[j].CreatedAt().Time())
		if params.SortOrder == repository.SortOrderAsc {
			return before
		}
		return !before
	})

	start := params.Offset
	if start > len(users) {
		start = len(users)
	}
	end := start + params.Limit
	if params.Limit <= 0 || end > len(users) {
		end = len(users)
	}
	return users[start:end], nil
}

func (m *UserRepository) Count(ctx context.Context, params repository.ListUsersParams) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.Count++

	if m.Errors.Count != nil {
		return 0, m.Errors.Count
	}

	return int64(len(m.filtered(params))), nil
}

func (m *UserRepository) Delete(ctx context.Context, id types.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Delete++

	if m.Errors.Delete != nil {
		return m.Errors.Delete
	}

	user, ok := m.users[id.String()]
	if !ok {
		return repository.ErrNotFound
	}
	delete(m.byEmail, user.Email().String())
	delete(m.users, id.String())
	return nil
}

func (m *UserRepository) filtered(params repository.ListUsersParams) []*model.User {
	var users []*model.User
	for _, user := range m.users {
		if params.Status != nil && user.Status() != *params.Status {
			continue
		}
		users = append(users, user)
	}
	return users
}

// --- CategoryRepository Mock ---

// CategoryRepository is a mock implementation of repository.CategoryRepository.
type CategoryRepository struct {
	mu sync.RWMutex

	categories map[string]*model.Category

	Calls struct {
		Create      int
		FindByID    int
		ListForUser int
		Delete      int
	}

	Errors struct {
		Create      error
		FindByID    error
		ListForUser error
		Delete      error
	}
}

// NewCategoryRepository creates a new mock CategoryRepository.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		categories: make(map[string]*model.Category),
	}
}

func (m *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Create++

	if m.Errors.Create != nil {
		return m.Errors.Create
	}

	m.categories[category.ID().String()] = category
	return nil
}

func (m *CategoryRepository) FindByID(ctx context.Context, id types.ID) (*model.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByID++

	if m.Errors.FindByID != nil {
		return nil, m.Errors.FindByID
	}

	category, ok := m.categories[id.String()]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return category, nil
}

func (m *CategoryRepository) ListForUser(ctx context.Context, userID types.ID) ([]*model.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.ListForUser++

	if m.Errors.ListForUser != nil {
		return nil, m.Errors.ListForUser
	}

	var categories []*model.Category
	for _, category := range m.categories {
		if category.IsGlobal() || category.OwnerID().MustGet() == userID {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name() < categories[j].Name()
	})
	return categories, nil
}

func (m *CategoryRepository) Delete(ctx context.Context, id types.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Delete++

	if m.Errors.Delete != nil {
		return m.Errors.Delete
	}

	if _, ok := m.categories[id.String()]; !ok {
		return repository.ErrNotFound
	}
	delete(m.categories, id.String())
	return nil
}

// --- ExpenseRepository Mock ---

// ExpenseRepository is a mock implementation of repository.ExpenseRepository.
type ExpenseRepository struct {
	mu sync.RWMutex

	expenses map[string]*model.Expense

	Calls struct {
		Create       int
		FindByID     int
		ListByUser   int
		CountByUser  int
		Delete       int
		DeleteByUser int
	}

	Errors struct {
		Create       error
		FindByID     error
		ListByUser   error
		CountByUser  error
		Delete       error
		DeleteByUser error
	}
}

// NewExpenseRepository creates a new mock ExpenseRepository.
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		expenses: make(map[string]*model.Expense),
	}
}

func (m *ExpenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Create++

	if m.Errors.Create != nil {
		return m.Errors.Create
	}

	m.expenses[expense.ID().String()] = expense
	return nil
}

func (m *ExpenseRepository) FindByID(ctx context.Context, id types.ID) (*model.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByID++

	if m.Errors.FindByID != nil {
		return nil, m.Errors.FindByID
	}

	expense, ok := m.expenses[id.String()]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return expense, nil
}

func (m *ExpenseRepository) ListByUser(ctx context.Context, userID types.ID, params repository.ListExpensesParams) ([]*model.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.ListByUser++

	if m.Errors.ListByUser != nil {
		return nil, m.Errors.ListByUser
	}

	var expenses []*model.Expense
	for _, expense := range m.expenses {
		if !expense.IsOwnedBy(userID) {
			continue
		}
		if params.CategoryID != nil && expense.CategoryID() != *params.CategoryID {
			continue
		}
		expenses = append(expenses, expense)
	}

	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].IncurredAt().Time().After(expenses[j].IncurredAt().Time())
	})

	start := params.Offset
	if start > len(expenses) {
		start = len(expenses)
	}
	end := start + params.Limit
	if params.Limit <= 0 || end > len(expenses) {
		end = len(expenses)
	}
	return expenses[start:end], nil
}

func (m *ExpenseRepository) CountByUser(ctx context.Context, userID types.ID) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.CountByUser++

	if m.Errors.CountByUser != nil {
		return 0, m.Errors.CountByUser
	}

	var count int64
	for _, expense := range m.expenses {
		if expense.IsOwnedBy(userID) {
			count++
		}
	}
	return count, nil
}

func (m *ExpenseRepository) Delete(ctx context.Context, id types.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Delete++

	if m.Errors.Delete != nil {
		return m.Errors.Delete
	}

	if _, ok := m.expenses[id.String()]; !ok {
		return repository.ErrNotFound
	}
	delete(m.expenses, id.String())
	return nil
}

func (m *ExpenseRepository) DeleteByUser(ctx context.Context, userID types.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.DeleteByUser++

	if m.Errors.DeleteByUser != nil {
		return m.Errors.DeleteByUser
	}

	for id, expense := range m.expenses {
		if expense.IsOwnedBy(userID) {
			delete(m.expenses, id)
		}
	}
	return nil
}
