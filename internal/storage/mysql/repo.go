package mysql

import (
	"context"
	"database/sql"

	"tonestats/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertCompany(ctx context.Context, c domain.Company) (int64, error) {
	res, err := r.db.ExecContext(ctx, upsertCompanySQL, c.Name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) UpsertTone(ctx context.Context, tone string) error {
	_, err := r.db.ExecContext(ctx, upsertToneSQL, tone)
	return err
}

func (r *Repo) UpsertProduct(ctx context.Context, p domain.Product) error {
	var raw any
	if len(p.RawJSON) > 0 {
		raw = string(p.RawJSON)
	}
	_, err := r.db.ExecContext(ctx, upsertProductSQL,
		p.ID,
		p.CompanyID,
		p.Category,
		p.Name,
		p.IntroduceText,
		p.Tone,
		raw,
	)
	return err
}

func (r *Repo) InsertSatisfaction(ctx context.Context, ev domain.SatisfactionEvent) error {
	_, err := r.db.ExecContext(ctx, insertSatisfactionSQL, ev.UserID, ev.ProductID, ev.Tone)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, id int64, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, id, status, reason)
	return err
}

func (r *Repo) FindWholePlatformSatisfaction(ctx context.Context) ([]domain.PlatformSatisfaction, error) {
	return r.platformRows(ctx, wholePlatformSQL)
}

func (r *Repo) FindMinePlatformSatisfaction(ctx context.Context, userID int64) ([]domain.PlatformSatisfaction, error) {
	return r.platformRows(ctx, minePlatformSQL, userID)
}

func (r *Repo) FindWholeCategorySatisfaction(ctx context.Context) ([]domain.CategorySatisfaction, error) {
	return r.categoryRows(ctx, wholeCategorySQL)
}

func (r *Repo) FindMineCategorySatisfaction(ctx context.Context, userID int64) ([]domain.CategorySatisfaction, error) {
	return r.categoryRows(ctx, mineCategorySQL, userID)
}

func (r *Repo) platformRows(ctx context.Context, query string, args ...any) ([]domain.PlatformSatisfaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PlatformSatisfaction
	for rows.Next() {
		var rec domain.PlatformSatisfaction
		if err := rows.Scan(&rec.Company, &rec.Tone, &rec.Count); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *Repo) categoryRows(ctx context.Context, query string, args ...any) ([]domain.CategorySatisfaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CategorySatisfaction
	for rows.Next() {
		var rec domain.CategorySatisfaction
		if err := rows.Scan(&rec.Category, &rec.Tone, &rec.Count); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *Repo) AllCompanies(ctx context.Context) ([]string, error) {
	return r.names(ctx, allCompaniesSQL)
}

func (r *Repo) AllTones(ctx context.Context) ([]string, error) {
	return r.names(ctx, allTonesSQL)
}

func (r *Repo) names(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
