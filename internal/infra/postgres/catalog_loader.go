package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"robot-race-service/internal/bank"
)

// CatalogLoader reads question records from the questions table.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadRecords(ctx context.Context) ([]bank.Record, error) {
	rows, err := l.pool.Query(ctx, `SELECT level, prompt, correct_answer, distractor1, distractor2 FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var records []bank.Record
	for rows.Next() {
		var rec bank.Record
		if err := rows.Scan(&rec.Level, &rec.Prompt, &rec.Correct, &rec.Distractor1, &rec.Distractor2); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	return records, nil
}
