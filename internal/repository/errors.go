package repository

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrCouponUsed          = errors.New("coupon already used")
	ErrCouponExpired       = errors.New("coupon expired")
)
