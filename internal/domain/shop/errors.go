package shop

import "errors"

var (
	ErrShopNotFound       = errors.New("shop not found")
	ErrSlugExists         = errors.New("shop slug already taken")
	ErrUserAlreadyHasShop = errors.New("user already belongs to a shop")
)
