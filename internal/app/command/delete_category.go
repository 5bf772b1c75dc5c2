package command

import (
	"context"
	"errors"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/event"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/messaging"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// deleteCategoryHandler implements command.DeleteCategoryHandler.
type deleteCategoryHandler struct {
	categoryRepo  repository.CategoryRepository
	categoryCache cache.CategoryCache
	publisher     messaging.EventPublisher
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(
	categoryRepo repository.CategoryRepository,
	categoryCache cache.CategoryCache,
	publisher messaging.EventPublisher,
) command.DeleteCategoryHandler {
	return &deleteCategoryHandler{
		categoryRepo:  categoryRepo,
		categoryCache: categoryCache,
		publisher:     publisher,
	}
}

func (h *deleteCategoryHandler) Handle(ctx context.Context, cmd command.DeleteCategory) (command.DeleteCategoryResult, error) {
	if cmd.CategoryID.IsEmpty() {
		return command.DeleteCategoryResult{}, domainerror.ErrCategoryIDRequired
	}

	category, err := h.categoryRepo.FindByID(ctx, cmd.CategoryID)
	if err != nil {
		return command.DeleteCategoryResult{}, domainerror.ErrCategoryNotFound
	}

	if category.IsGlobal() {
		if !cmd.Actor.Role.CanManageGlobalCategories() {
			return command.DeleteCategoryResult{}, domainerror.ErrAdminOnly
		}
	} else if !cmd.Actor.CanActOn(category.OwnerID().MustGet()) {
		return command.DeleteCategoryResult{}, domainerror.ErrAdminOnly
	}

	if err := h.categoryRepo.Delete(ctx, category.ID()); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return command.DeleteCategoryResult{}, domainerror.ErrCategoryInUse
		}
		return command.DeleteCategoryResult{}, err
	}

	h.categoryCache.Delete(ctx, category.ID())

	// Publish event
	_ = h.publisher.Publish(ctx, event.NewCategoryDeleted(category.ID()))

	return command.DeleteCategoryResult{CategoryID: category.ID()}, nil
}
