package application

import (
	"errors"

	"github.com/OliveiraNt/pubsub-topic-creator/internal/domain"
)

// asServiceError classifies err as a ServiceError unless it already carries a kind.
func asServiceError(err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return err
	}
	return domain.ServiceError(err.Error(), err)
}

func failed(err error) domain.TopicResult {
	return domain.TopicResult{Success: false, Err: err}
}
