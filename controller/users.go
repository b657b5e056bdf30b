package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/duanerilli/NFL-Pool-Backend/model"
)

func (c *controller) CreateUser(ctx context.Context, name string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name must not be empty")
	}
	return c.db.InsertUser(ctx, name)
}

func (c *controller) ListUsers(ctx context.Context) ([]model.User, error) {
	return c.db.ListUsers(ctx)
}
