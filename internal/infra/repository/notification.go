package repository

import (
	"context"
	"time"

	"seat-hold-ticketing/internal/infra"
	"seat-hold-ticketing/internal/infra/sqlc"
	"seat-hold-ticketing/internal/pkg/pgconv"
	"seat-hold-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	jobStatusQueued = "queued"
	jobStatusSent   = "sent"
	jobStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, job shared.NotificationJob) error {
	id := job.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	params := sqlc.CreateNotificationJobParams{
		ID:      id,
		Kind:    job.Kind,
		Topic:   job.Topic,
		Payload: job.Payload,
		Status:  jobStatusQueued,
		RunAt:   pgconv.TimeToPgtype(job.RunAt),
	}

	err := r.queries.CreateNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, sqlc.ClaimDueNotificationJobsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: int32(limit), // #nosec G115 -- batch size comes from config
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error {
	err := r.queries.UpdateNotificationJobStatus(ctx, r.db, sqlc.UpdateNotificationJobStatusParams{
		ID:        id,
		Status:    jobStatusSent,
		LastError: pgconv.TextToPgtype(""),
		RunAt:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, id uuid.UUID, runAt time.Time, lastErr string, giveUp bool) error {
	status := jobStatusQueued
	if giveUp {
		status = jobStatusFailed
	}

	err := r.queries.UpdateNotificationJobStatus(ctx, r.db, sqlc.UpdateNotificationJobStatusParams{
		ID:        id,
		Status:    status,
		LastError: pgconv.TextToPgtype(lastErr),
		RunAt:     pgconv.TimeToPgtype(runAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}
