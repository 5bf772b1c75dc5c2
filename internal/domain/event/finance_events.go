package event

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// CategoryCreated is emitted when a category is created.
type CategoryCreated struct {
	BaseEvent
	CategoryID types.ID
	Name       string
	OwnerID    types.Optional[types.ID]
}

// NewCategoryCreated creates a new CategoryCreated event.
func NewCategoryCreated(categoryID types.ID, name string, ownerID types.Optional[types.ID]) CategoryCreated {
	return CategoryCreated{
		BaseEvent:  NewBaseEvent(EventTypeCategoryCreated, categoryID, AggregateTypeCategory),
		CategoryID: categoryID,
		Name:       name,
		OwnerID:    ownerID,
	}
}

// CategoryDeleted is emitted when a category is deleted.
type CategoryDeleted struct {
	BaseEvent
	CategoryID types.ID
}

// NewCategoryDeleted creates a new CategoryDeleted event.
func NewCategoryDeleted(categoryID types.ID) CategoryDeleted {
	return CategoryDeleted{
		BaseEvent:  NewBaseEvent(EventTypeCategoryDeleted, categoryID, AggregateTypeCategory),
		CategoryID: categoryID,
	}
}

// ExpenseRecorded is emitted when an expense is recorded.
type ExpenseRecorded struct {
	BaseEvent
	ExpenseID   types.ID
	UserID      types.ID
	CategoryID  types.ID
	AmountCents int64
}

// NewExpenseRecorded creates a new ExpenseRecorded event.
func NewExpenseRecorded(expenseID, userID, categoryID types.ID, amountCents int64) ExpenseRecorded {
	return ExpenseRecorded{
		BaseEvent:   NewBaseEvent(EventTypeExpenseRecorded, expenseID, AggregateTypeExpense),
		ExpenseID:   expenseID,
		UserID:      userID,
		CategoryID:  categoryID,
		AmountCents: amountCents,
	}
}

// ExpenseDeleted is emitted when an expense is deleted.
type ExpenseDeleted struct {
	BaseEvent
	ExpenseID types.ID
	UserID    types.ID
}

// NewExpenseDeleted creates a new ExpenseDeleted event.
func NewExpenseDeleted(expenseID, userID types.ID) ExpenseDeleted {
	return ExpenseDeleted{
		BaseEvent: NewBaseEvent(EventTypeExpenseDeleted, expenseID, AggregateTypeExpense),
		ExpenseID: expenseID,
		UserID:    userID,
	}
}
