package store

import (
	"context"

	"usercenter/internal/model"
)

// CreateOpts fields have already passed the form gate
type CreateOpts struct {
	LoginName  string
	UserName   string
	Department string
	Phone      string
	// nil means enabled
	Status *bool
}

// UpdateOpts nil fields keep their current value, id and createTime never change
type UpdateOpts struct {
	LoginName  *string
	UserName   *string
	Department *string
	Phone      *string
	Status     *bool
}

type ListOpts struct {
	Criteria *model.Criteria
}

// UserStore owns the canonical user collection in insertion order.
// Returned records are copies.
type UserStore interface {
	// Create fails with ErrDuplicateUser when (userName, phone) is taken
	Create(ctx context.Context, opts *CreateOpts) (*model.User, error)
	// Update and SetStatus report found=false for an unknown id and change nothing
	Update(ctx context.Context, id int, opts *UpdateOpts) (user *model.User, found bool, err error)
	SetStatus(ctx context.Context, id int, status bool) (user *model.User, found bool, err error)
	Get(ctx context.Context, id int) (*model.User, error)
	List(ctx context.Context, opts *ListOpts) ([]*model.User, error)
	Delete(ctx context.Context, id int) (bool, error)
	// BatchDelete removes every listed id in one step and returns how many existed
	BatchDelete(ctx context.Context, ids []int) (int, error)
}
