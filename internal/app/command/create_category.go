package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/event"
	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/messaging"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// createCategoryHandler implements command.CreateCategoryHandler.
type createCategoryHandler struct {
	categoryRepo  repository.CategoryRepository
	categoryCache cache.CategoryCache
	publisher     messaging.EventPublisher
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(
	categoryRepo repository.CategoryRepository,
	categoryCache cache.CategoryCache,
	publisher messaging.EventPublisher,
) command.CreateCategoryHandler {
	return &createCategoryHandler{
		categoryRepo:  categoryRepo,
		categoryCache: categoryCache,
		publisher:     publisher,
	}
}

func (h *createCategoryHandler) Handle(ctx context.Context, cmd command.CreateCategory) (command.CreateCategoryResult, error) {
	if cmd.Global && !cmd.Actor.Role.CanManageGlobalCategories() {
		return command.CreateCategoryResult{}, domainerror.ErrAdminOnly
	}

	ownerID := types.None[types.ID]()
	if !cmd.Global {
		ownerID = types.Some(cmd.Actor.UserID)
	}

	category, err := model.NewCategory(cmd.Name, ownerID)
	if err != nil {
		return command.CreateCategoryResult{}, err
	}

	if err := h.categoryRepo.Create(ctx, category); err != nil {
		return command.CreateCategoryResult{}, err
	}

	projection := category.Projection()
	h.categoryCache.Set(ctx, projection)

	// Publish event
	_ = h.publisher.Publish(ctx, event.NewCategoryCreated(category.ID(), category.Name(), category.OwnerID()))

	return command.CreateCategoryResult{Category: projection}, nil
}
