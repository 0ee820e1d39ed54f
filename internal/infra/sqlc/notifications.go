package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `
INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateNotificationJobParams struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	Status  string
	RunAt   pgtype.Timestamptz
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.ID,
		arg.Kind,
		arg.Topic,
		arg.Payload,
		arg.Status,
		arg.RunAt,
	)
	return err
}

// SKIP LOCKED lets several relays drain the outbox without double sends.
const claimDueNotificationJobs = `
SELECT id, kind, topic, payload, status, attempts, last_error, run_at, created_at, updated_at
FROM notification_jobs
WHERE status = 'queued'
  AND run_at <= $1
ORDER BY run_at
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimDueNotificationJobsParams struct {
	Now   pgtype.Timestamptz
	Limit int32
}

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NotificationJobs
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.Payload,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.RunAt,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateNotificationJobStatus = `
UPDATE notification_jobs
SET status = $2,
    attempts = attempts + 1,
    last_error = $3,
    run_at = $4,
    updated_at = now()
WHERE id = $1
`

type UpdateNotificationJobStatusParams struct {
	ID        uuid.UUID
	Status    string
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
}

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) error {
	_, err := db.Exec(ctx, updateNotificationJobStatus,
		arg.ID,
		arg.Status,
		arg.LastError,
		arg.RunAt,
	)
	return err
}
