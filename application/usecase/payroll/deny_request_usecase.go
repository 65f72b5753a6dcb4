package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/roamops/roamops/application/port/inbound"
	"github.com/roamops/roamops/application/port/outbound"
	"github.com/roamops/roamops/domain"
)

type DenyRequestUseCase struct {
	store outbound.PrivilegedStore
}

func NewDenyRequestUseCase(store outbound.PrivilegedStore) *DenyRequestUseCase {
	return &DenyRequestUseCase{store: store}
}

// Execute rejects a pending correction request. No time entry is touched.
func (uc *DenyRequestUseCase) Execute(ctx context.Context, actorID, requestID string) (*inbound.PayrollResult, error) {
	request, err := uc.store.Requests().FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return failure("Correction request not found"), nil
		}
		return nil, fmt.Errorf("failed to load correction request: %w", err)
	}
	if err := request.Reject(); err != nil {
		return failure("Correction request already resolved"), nil
	}

	err = uc.store.WithinTx(ctx, func(tx outbound.PrivilegedStore) error {
		if err := tx.Requests().UpdateStatus(ctx, request.ID, request.Status); err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}
		denial := domain.NewAuditLog(
			uuid.New().String(), actorID, domain.ActionDenyTimeRequest,
			"time_sheet_requests", request.ID,
			map[string]interface{}{"reason": request.Reason},
		)
		return tx.AuditLogs().Create(ctx, denial)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deny correction request: %w", err)
	}

	return success("Correction request denied"), nil
}
