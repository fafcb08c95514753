package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// storeErr classifies driver errors. Connectivity problems become domain.UnavailableErr.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, mongo.ErrClientDisconnected) {
		return domain.NewUnavailableErr("document store unavailable", fmt.Errorf("%s: %w", op, err))
	}
	return fmt.Errorf("%s: %w", op, err)
}
