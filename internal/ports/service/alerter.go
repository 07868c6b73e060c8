package service

import (
	"context"
)

// IAlerterService sends ops alerts
type IAlerterService interface {
	SendAlert(ctx context.Context, message string) error
}
