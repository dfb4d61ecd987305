package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"InsightFlow/internal/domain/models"
	domrepo "InsightFlow/internal/domain/repository"
	pkgch "InsightFlow/pkg/clickhouse"
	applogger "InsightFlow/pkg/logger"
)

// auditSchema creates the refresh trail table. Statements run one at a
// time through InitSchema and are idempotent.
var auditSchema = []string{
	`CREATE DATABASE IF NOT EXISTS insightflow`,
	`CREATE TABLE IF NOT EXISTS insightflow.store_refreshes (
        id          String,
        domain      LowCardinality(String),
        source      LowCardinality(String),
        duration_ms Float64,
        fetched_at  DateTime64(3, 'UTC')
    ) ENGINE = MergeTree
    PARTITION BY toYYYYMM(fetched_at)
    ORDER BY (fetched_at, domain)
    TTL toDateTime(fetched_at) + INTERVAL 90 DAY`,
}

// CHSnapshotAudit persists the refresh trail in ClickHouse.
type CHSnapshotAudit struct {
	ch *pkgch.Client
	db *sql.DB
	l  *applogger.Logger
}

func NewCHSnapshotAudit(ch *pkgch.Client) *CHSnapshotAudit {
	return &CHSnapshotAudit{ch: ch, db: ch.DB()}
}

// SetLogger injects a structured logger.
func (s *CHSnapshotAudit) SetLogger(l *applogger.Logger) { s.l = l }

// InitSchema ensures the audit database and table exist.
func (s *CHSnapshotAudit) InitSchema(ctx context.Context) error {
	return s.ch.InitSchema(ctx, auditSchema)
}

func (s *CHSnapshotAudit) Record(ctx context.Context, rec domrepo.RefreshRecord) error {
	const q = `
        INSERT INTO insightflow.store_refreshes (id, domain, source, duration_ms, fetched_at)
        VALUES (?, ?, ?, ?, ?)
    `
	_, err := s.db.ExecContext(ctx, q,
		rec.ID,
		string(rec.Domain),
		string(rec.Source),
		float64(rec.Duration.Microseconds())/1000.0,
		rec.FetchedAt.UTC(),
	)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse record_refresh insert error",
				applogger.String("domain", string(rec.Domain)),
				applogger.String("source", string(rec.Source)),
				applogger.Error(err),
			)
		}
		return fmt.Errorf("record refresh: %w", err)
	}
	return nil
}

func (s *CHSnapshotAudit) Recent(ctx context.Context, limit int) ([]domrepo.RefreshRecord, error) {
	start := time.Now()
	if limit <= 0 {
		limit = 50
	}
	const q = `
        SELECT id, domain, source, duration_ms, fetched_at
        FROM insightflow.store_refreshes
        ORDER BY fetched_at DESC
        LIMIT ?
    `
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse recent_refreshes query error",
				applogger.Int("limit", limit),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("recent refreshes: %w", err)
	}
	defer rows.Close()

	out := make([]domrepo.RefreshRecord, 0, limit)
	for rows.Next() {
		var (
			rec        domrepo.RefreshRecord
			domain     string
			source     string
			durationMS float64
		)
		if err := rows.Scan(&rec.ID, &domain, &source, &durationMS, &rec.FetchedAt); err != nil {
			if s.l != nil {
				s.l.Error("clickhouse recent_refreshes scan error", applogger.Error(err))
			}
			return nil, fmt.Errorf("scan refresh: %w", err)
		}
		rec.Domain = models.Domain(domain)
		rec.Source = models.Source(source)
		rec.Duration = time.Duration(durationMS * float64(time.Millisecond))
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if s.l != nil {
		s.l.Info("clickhouse recent_refreshes ok",
			applogger.Int("limit", limit),
			applogger.Int("rows", len(out)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return out, nil
}

func (s *CHSnapshotAudit) Health(ctx context.Context) error {
	return s.ch.Health(ctx)
}

func (s *CHSnapshotAudit) Close() error {
	return s.ch.Close()
}
