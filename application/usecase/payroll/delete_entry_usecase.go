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

type DeleteEntryUseCase struct {
	store outbound.PrivilegedStore
}

func NewDeleteEntryUseCase(store outbound.PrivilegedStore) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{store: store}
}

// Execute removes a time entry permanently. The audit entry carries a full
// backup of the deleted row; it is the only recovery path.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, actorID, entryID, reason string) (*inbound.PayrollResult, error) {
	entry, err := uc.store.TimeEntries().FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return failure("Time entry not found"), nil
		}
		return nil, fmt.Errorf("failed to load time entry: %w", err)
	}

	locked, err := periodLocked(ctx, uc.store, entry.StartTime)
	if err != nil {
		return nil, err
	}
	if locked {
		return failure(lockedMessage(entry.StartTime)), nil
	}

	err = uc.store.WithinTx(ctx, func(tx outbound.PrivilegedStore) error {
		if err := tx.TimeEntries().Delete(ctx, entry.ID); err != nil {
			return fmt.Errorf("failed to delete time entry: %w", err)
		}
		deleted := domain.NewAuditLog(
			uuid.New().String(), actorID, domain.ActionDeleteTimeEntry,
			"time_entries", entry.ID,
			map[string]interface{}{
				"backup": entry,
				"reason": reason,
			},
		)
		return tx.AuditLogs().Create(ctx, deleted)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete time entry: %w", err)
	}

	return success(fmt.Sprintf("Deleted time entry %s", entry.ID)), nil
}
