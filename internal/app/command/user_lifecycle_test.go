package command_test

import (
	"context"
	"testing"
	"time"

	appcommand "github.com/0xsj/overwatch-finance/internal/app/command"
	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/event"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/tests/testutil"
	"github.com/0xsj/overwatch-finance/tests/testutil/mocks"
)

func TestDeactivateUserHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("user deactivates own account", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		userCache := mocks.NewUserCache()
		denylist := mocks.NewSessionDenylist()
		publisher := mocks.NewEventPublisher()
		user := testutil.Fixtures.User()
		if err := userRepo.Create(ctx, user); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		handler := appcommand.NewDeactivateUserHandler(
			userRepo, userCache, denylist, time.Hour, publisher)

		result, err := handler.Handle(ctx, command.DeactivateUser{
			Actor:  testutil.Fixtures.Actor(user),
			UserID: user.ID(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.UserID != user.ID() {
			t.Errorf("UserID mismatch: got %s", result.UserID)
		}
		if !denylist.IsRevoked(ctx, user.ID()) {
			t.Error("outstanding sessions should be revoked")
		}
		if userCache.Calls.Delete != 1 {
			t.Errorf("expected cache invalidation, got %d deletes", userCache.Calls.Delete)
		}
		if len(publisher.EventsOfType(event.EventTypeUserDeactivated)) != 1 {
			t.Error("expected user.deactivated event")
		}
	})

	t.Run("superuser deactivates another account", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		admin := testutil.Fixtures.Superuser()
		target := testutil.Fixtures.User()
		_ = userRepo.Create(ctx, admin)
		_ = userRepo.Create(ctx, target)

		handler := appcommand.NewDeactivateUserHandler(
			userRepo, mocks.NewUserCache(), mocks.NewSessionDenylist(), time.Hour,
			mocks.NewEventPublisher())

		if _, err := handler.Handle(ctx, command.DeactivateUser{
			Actor:  testutil.Fixtures.Actor(admin),
			UserID: target.ID(),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("plain user cannot deactivate others", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		actor := testutil.Fixtures.User()
		target := testutil.Fixtures.User()
		_ = userRepo.Create(ctx, actor)
		_ = userRepo.Create(ctx, target)

		handler := appcommand.NewDeactivateUserHandler(
			userRepo, mocks.NewUserCache(), mocks.NewSessionDenylist(), time.Hour,
			mocks.NewEventPublisher())

		_, err := handler.Handle(ctx, command.DeactivateUser{
			Actor:  testutil.Fixtures.Actor(actor),
			UserID: target.ID(),
		})
		if err != domainerror.ErrAdminOnly {
			t.Errorf("expected ErrAdminOnly, got: %v", err)
		}
	})

	t.Run("deactivated account reads as missing", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		admin := testutil.Fixtures.Superuser()
		target := testutil.Fixtures.UserBuilder().Deactivated().Build()
		_ = userRepo.Create(ctx, admin)
		_ = userRepo.Create(ctx, target)

		handler := appcommand.NewDeactivateUserHandler(
			userRepo, mocks.NewUserCache(), mocks.NewSessionDenylist(), time.Hour,
			mocks.NewEventPublisher())

		_, err := handler.Handle(ctx, command.DeactivateUser{
			Actor:  testutil.Fixtures.Actor(admin),
			UserID: target.ID(),
		})
		if err != domainerror.ErrUserNotFound {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})
}

func TestPurgeUserHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("purges deactivated account and its expenses", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		expenseRepo := mocks.NewExpenseRepository()
		userCache := mocks.NewUserCache()
		categoryCache := mocks.NewCategoryCache()
		expenseCache := mocks.NewExpenseCache()
		publisher := mocks.NewEventPublisher()

		admin := testutil.Fixtures.Superuser()
		target := testutil.Fixtures.UserBuilder().Deactivated().Build()
		_ = userRepo.Create(ctx, admin)
		_ = userRepo.Create(ctx, target)

		category := testutil.Fixtures.GlobalCategory()
		_ = expenseRepo.Create(ctx, testutil.Fixtures.Expense(target.ID(), category.ID()))
		_ = expenseRepo.Create(ctx, testutil.Fixtures.Expense(target.ID(), category.ID()))

		handler := appcommand.NewPurgeUserHandler(
			userRepo, expenseRepo, userCache, categoryCache, expenseCache, publisher)

		result, err := handler.Handle(ctx, command.PurgeUser{
			Actor:  testutil.Fixtures.Actor(admin),
			UserID: target.ID(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.UserID != target.ID() {
			t.Errorf("UserID mismatch: got %s", result.UserID)
		}
		if _, err := userRepo.FindByIDAnyStatus(ctx, target.ID()); err == nil {
			t.Error("user row should be gone after purge")
		}
		if count, _ := expenseRepo.CountByUser(ctx, target.ID()); count != 0 {
			t.Errorf("expected 0 expenses after purge, got %d", count)
		}
		if expenseCache.Calls.DeleteByUser != 1 {
			t.Error("expected expense cache invalidation")
		}
		if len(publisher.EventsOfType(event.EventTypeUserPurged)) != 1 {
			t.Error("expected user.purged event")
		}
	})

	t.Run("drops cached private categories with the account", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		categoryCache := mocks.NewCategoryCache()

		admin := testutil.Fixtures.Superuser()
		target := testutil.Fixtures.UserBuilder().Deactivated().Build()
		_ = userRepo.Create(ctx, admin)
		_ = userRepo.Create(ctx, target)

		// Row-side deletion happens via the schema when the user row
		// goes; the cache side is the handler's job.
		owned := testutil.Fixtures.Category(target.ID())
		global := testutil.Fixtures.GlobalCategory()
		categoryCache.Set(ctx, owned.Projection())
		categoryCache.Set(ctx, global.Projection())

		handler := appcommand.NewPurgeUserHandler(
			userRepo, mocks.NewExpenseRepository(), mocks.NewUserCache(),
			categoryCache, mocks.NewExpenseCache(), mocks.NewEventPublisher())

		if _, err := handler.Handle(ctx, command.PurgeUser{
			Actor:  testutil.Fixtures.Actor(admin),
			UserID: target.ID(),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if categoryCache.Calls.DeleteByOwner != 1 {
			t.Error("expected owned-category cache invalidation")
		}
		if _, ok := categoryCache.Get(ctx, owned.ID()); ok {
			t.Error("owned category projection should be gone after purge")
		}
		if _, ok := categoryCache.Get(ctx, global.ID()); !ok {
			t.Error("global category projection should survive a purge")
		}
	})

	t.Run("rejects purging an active account", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		admin := testutil.Fixtures.Superuser()
		target := testutil.Fixtures.User()
		_ = userRepo.Create(ctx, admin)
		_ = userRepo.Create(ctx, target)

		handler := appcommand.NewPurgeUserHandler(
			userRepo, mocks.NewExpenseRepository(), mocks.NewUserCache(),
			mocks.NewCategoryCache(), mocks.NewExpenseCache(), mocks.NewEventPublisher())

		_, err := handler.Handle(ctx, command.PurgeUser{
			Actor:  testutil.Fixtures.Actor(admin),
			UserID: target.ID(),
		})
		if err != domainerror.ErrUserNotDeactivated {
			t.Errorf("expected ErrUserNotDeactivated, got: %v", err)
		}
	})

	t.Run("plain user cannot purge others", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		actor := testutil.Fixtures.User()
		target := testutil.Fixtures.UserBuilder().Deactivated().Build()
		_ = userRepo.Create(ctx, actor)
		_ = userRepo.Create(ctx, target)

		handler := appcommand.NewPurgeUserHandler(
			userRepo, mocks.NewExpenseRepository(), mocks.NewUserCache(),
			mocks.NewCategoryCache(), mocks.NewExpenseCache(), mocks.NewEventPublisher())

		_, err := handler.Handle(ctx, command.PurgeUser{
			Actor:  testutil.Fixtures.Actor(actor),
			UserID: target.ID(),
		})
		if err != domainerror.ErrAdminOnly {
			t.Errorf("expected ErrAdminOnly, got: %v", err)
		}
	})

	t.Run("unknown account reads as missing", func(t *testing.T) {
		admin := testutil.Fixtures.Superuser()

		handler := appcommand.NewPurgeUserHandler(
			mocks.NewUserRepository(), mocks.NewExpenseRepository(), mocks.NewUserCache(),
			mocks.NewCategoryCache(), mocks.NewExpenseCache(), mocks.NewEventPublisher())

		_, err := handler.Handle(ctx, command.PurgeUser{
			Actor:  testutil.Fixtures.Actor(admin),
			UserID: testutil.Fixtures.User().ID(),
		})
		if err != domainerror.ErrUserNotFound {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})
}

func TestLogoutHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes outstanding tokens", func(t *testing.T) {
		denylist := mocks.NewSessionDenylist()
		publisher := mocks.NewEventPublisher()
		user := testutil.Fixtures.User()

		handler := appcommand.NewLogoutHandler(denylist, time.Hour, publisher)

		result, err := handler.Handle(ctx, command.Logout{
			Actor: testutil.Fixtures.Actor(user),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.RevokedAt.IsZero() {
			t.Error("expected RevokedAt to be set")
		}
		if !denylist.IsRevoked(ctx, user.ID()) {
			t.Error("tokens should be denylisted after logout")
		}
		if len(publisher.EventsOfType(event.EventTypeSessionRevoked)) != 1 {
			t.Error("expected session.revoked event")
		}
	})
}

func TestUpdateUserHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("updates username and email", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		userCache := mocks.NewUserCache()
		publisher := mocks.NewEventPublisher()
		user := testutil.Fixtures.User()
		_ = userRepo.Create(ctx, user)

		handler := appcommand.NewUpdateUserHandler(
			userRepo, userCache, mockHasher(t), publisher)

		result, err := handler.Handle(ctx, command.UpdateUser{
			Actor:    testutil.Fixtures.Actor(user),
			UserID:   user.ID(),
			Username: someString("renamed"),
			Email:    someString("renamed@example.com"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.User.Username != "renamed" {
			t.Errorf("username mismatch: got %s", result.User.Username)
		}
		if result.User.Email != "renamed@example.com" {
			t.Errorf("email mismatch: got %s", result.User.Email)
		}
		if userCache.Calls.Set != 1 {
			t.Error("expected cache refresh")
		}
		if len(publisher.EventsOfType(event.EventTypeUserUpdated)) != 1 {
			t.Error("expected user.updated event")
		}
	})

	t.Run("no-op update skips persistence", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		publisher := mocks.NewEventPublisher()
		user := testutil.Fixtures.User()
		_ = userRepo.Create(ctx, user)

		handler := appcommand.NewUpdateUserHandler(
			userRepo, mocks.NewUserCache(), mockHasher(t), publisher)

		if _, err := handler.Handle(ctx, command.UpdateUser{
			Actor:  testutil.Fixtures.Actor(user),
			UserID: user.ID(),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if userRepo.Calls.Update != 0 {
			t.Errorf("expected no Update call, got %d", userRepo.Calls.Update)
		}
		if len(publisher.Events()) != 0 {
			t.Error("expected no events for no-op update")
		}
	})

	t.Run("rejects email already held by another account", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		user := testutil.Fixtures.User()
		other := testutil.Fixtures.UserBuilder().WithEmail("taken@example.com").Build()
		_ = userRepo.Create(ctx, user)
		_ = userRepo.Create(ctx, other)

		handler := appcommand.NewUpdateUserHandler(
			userRepo, mocks.NewUserCache(), mockHasher(t), mocks.NewEventPublisher())

		_, err := handler.Handle(ctx, command.UpdateUser{
			Actor:  testutil.Fixtures.Actor(user),
			UserID: user.ID(),
			Email:  someString("taken@example.com"),
		})
		if err != domainerror.ErrEmailAlreadyRegistered {
			t.Errorf("expected ErrEmailAlreadyRegistered, got: %v", err)
		}
	})

	t.Run("plain user cannot update others", func(t *testing.T) {
		userRepo := mocks.NewUserRepository()
		actor := testutil.Fixtures.User()
		target := testutil.Fixtures.User()
		_ = userRepo.Create(ctx, actor)
		_ = userRepo.Create(ctx, target)

		handler := appcommand.NewUpdateUserHandler(
			userRepo, mocks.NewUserCache(), mockHasher(t), mocks.NewEventPublisher())

		_, err := handler.Handle(ctx, command.UpdateUser{
			Actor:    testutil.Fixtures.Actor(actor),
			UserID:   target.ID(),
			Username: someString("hijacked"),
		})
		if err != domainerror.ErrAdminOnly {
			t.Errorf("expected ErrAdminOnly, got: %v", err)
		}
	})
}
