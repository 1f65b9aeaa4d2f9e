package repository

import (
	"context"
	"time"

	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobDone(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue leases due jobs by moving run_at to leaseUntil. SKIP LOCKED keeps
// parallel dispatchers off the same rows, and the lease keeps them off after commit.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(now),
		LeaseUntil: pgconv.TimeToPgtype(leaseUntil),
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
			Attempts: int(row.Attempts),
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkDone(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkNotificationJobDone(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job done", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status, lastError string, runAt time.Time) error {
	params := sqlc.MarkNotificationJobFailedParams{
		ID:        id,
		Status:    status,
		LastError: pgconv.NonEmptyToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(runAt),
	}

	if err := r.queries.MarkNotificationJobFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
