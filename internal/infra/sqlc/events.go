package sqlc

import "context"

const getEvent = `
SELECT id, title, status, sales_open_at, sales_close_at, created_at, updated_at
FROM events
WHERE id = $1
`

func (q *Queries) GetEvent(ctx context.Context, db DBTX, id int64) (Events, error) {
	row := db.QueryRow(ctx, getEvent, id)
	var i Events
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Status,
		&i.SalesOpenAt,
		&i.SalesCloseAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
