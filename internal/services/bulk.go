package services

import (
	"fmt"

	"portfolio_backend/internal/services/dto"
	"portfolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// bulkAction - одно массовое действие: UPDATE по списку id и шаблон сообщения с %d
type bulkAction struct {
	apply   func(db *gorm.DB, ids []string) (int64, error)
	message string
}

func runBulk(db *gorm.DB, actions map[string]bulkAction, req *dto.BulkActionRequest) (*dto.BulkActionResponse, error) {
	action, ok := actions[req.Action]
	if !ok {
		return nil, apperrors.ErrInvalidOperation("bulk", "Unknown action: "+req.Action)
	}
	if len(req.IDs) == 0 {
		return nil, apperrors.ErrEmptyBulkSelection
	}

	updated, err := action.apply(db, req.IDs)
	if err != nil {
		return nil, handleStoreError(err)
	}

	return &dto.BulkActionResponse{
		Updated: updated,
		Message: fmt.Sprintf(action.message, updated),
	}, nil
}

func visibilityActions(set func(db *gorm.DB, ids []string, visible bool) (int64, error)) map[string]bulkAction {
	return map[string]bulkAction{
		"make_visible": {
			apply:   func(db *gorm.DB, ids []string) (int64, error) { return set(db, ids, true) },
			message: "%d item(s) marked as visible.",
		},
		"make_hidden": {
			apply:   func(db *gorm.DB, ids []string) (int64, error) { return set(db, ids, false) },
			message: "%d item(s) hidden from website.",
		},
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
