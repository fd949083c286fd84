package impl

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// BindDirectories closes the loop between the user and order services.
// Each service is constructed without the other, then handed the
// counterpart's directory here. Run once from an Fx invoke before the
// server starts; a service missing its binder role is a wiring bug.
func BindDirectories(users usecase.UserUsecase, orders usecase.OrderUsecase) error {
	userDir, ok := users.(usecase.UserDirectory)
	if !ok {
		return errors.Wrap(domainerrors.ErrInternalError, "user service does not expose a user directory")
	}

	orderDir, ok := orders.(usecase.OrderDirectory)
	if !ok {
		return errors.Wrap(domainerrors.ErrInternalError, "order service does not expose an order directory")
	}

	userBinder, ok := users.(usecase.OrderDirectoryBinder)
	if !ok {
		return errors.Wrap(domainerrors.ErrInternalError, "user service cannot accept an order directory")
	}

	orderBinder, ok := orders.(usecase.UserDirectoryBinder)
	if !ok {
		return errors.Wrap(domainerrors.ErrInternalError, "order service cannot accept a user directory")
	}

	userBinder.BindOrderDirectory(orderDir)
	orderBinder.BindUserDirectory(userDir)

	return nil
}
