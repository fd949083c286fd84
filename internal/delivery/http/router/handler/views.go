// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// userView is the outward representation of a user. It has no slot for the
// password hash, so credential material cannot serialize by accident.
type userView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// orderView is the outward representation of an order.
type orderView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Product   string    `json:"product"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// userWithOrdersView joins a user with the orders they own.
type userWithOrdersView struct {
	userView
	Orders []orderView `json:"orders"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

func toOrderView(order *entity.Order) orderView {
	return orderView{
		ID:        order.ID,
		UserID:    order.UserID,
		Product:   order.Product,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func toOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

func toUserWithOrdersView(aggregate *entity.UserWithOrders) userWithOrdersView {
	return userWithOrdersView{
		userView: toUserView(aggregate.User),
		Orders:   toOrderViews(aggregate.Orders),
	}
}
