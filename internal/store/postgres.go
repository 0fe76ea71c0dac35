package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) GetAttributeDefinitions(ctx context.Context) ([]AttributeDefinition, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, default_direction, datatype, position
		FROM blade_attributes
		ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defs []AttributeDefinition
	for rows.Next() {
		var d AttributeDefinition
		if err := rows.Scan(&d.Name, &d.DefaultDirection, &d.Datatype, &d.Position); err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, rows.Err()
}

func (s *PostgresStore) GetCategoricalLookup(ctx context.Context) (CategoricalLookup, error) {
	rows, err := s.pool.Query(ctx, `SELECT label, value FROM blade_lookup`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lookup := CategoricalLookup{}
	for rows.Next() {
		var label string
		var value float64
		if err := rows.Scan(&label, &value); err != nil {
			return nil, err
		}
		lookup[label] = value
	}
	return lookup, rows.Err()
}

func (s *PostgresStore) GetAlternatives(ctx context.Context) ([]*Alternative, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, attributes, info, created_at
		FROM blade_alternatives
		ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alts []*Alternative
	for rows.Next() {
		a := &Alternative{}
		var attrsJSON, infoJSON []byte
		if err := rows.Scan(&a.ID, &a.Name, &attrsJSON, &infoJSON, &a.CreatedAt); err != nil {
			return nil, err
		}
		if attrsJSON != nil {
			_ = json.Unmarshal(attrsJSON, &a.Attributes)
		}
		if infoJSON != nil {
			_ = json.Unmarshal(infoJSON, &a.Info)
		}
		alts = append(alts, a)
	}
	return alts, rows.Err()
}

func (s *PostgresStore) CreateAttributeDefinition(ctx context.Context, def *AttributeDefinition) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO blade_attributes (name, default_direction, datatype, position)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET default_direction = $2, datatype = $3, position = $4`,
		def.Name, def.DefaultDirection, def.Datatype, def.Position)
	return err
}

func (s *PostgresStore) CreateAlternative(ctx context.Context, alt *Alternative) error {
	attrsJSON, _ := json.Marshal(alt.Attributes)
	infoJSON, _ := json.Marshal(alt.Info)

	return s.pool.QueryRow(ctx, `
		INSERT INTO blade_alternatives (name, attributes, info)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		alt.Name, attrsJSON, infoJSON,
	).Scan(&alt.ID, &alt.CreatedAt)
}

func (s *PostgresStore) UpsertLookupEntry(ctx context.Context, label string, value float64) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO blade_lookup (label, value)
		VALUES ($1, $2)
		ON CONFLICT (label) DO UPDATE SET value = $2`,
		label, value)
	return err
}

func (s *PostgresStore) SaveDecision(ctx context.Context, rec *DecisionRecord) error {
	weightsJSON, _ := json.Marshal(rec.Weights)
	reqsJSON, _ := json.Marshal(rec.Requirements)
	dirsJSON, _ := json.Marshal(rec.Directions)
	consideredJSON, _ := json.Marshal(rec.Considered)
	disqualifiedJSON, _ := json.Marshal(rec.Disqualified)
	scoresJSON, _ := json.Marshal(rec.Scores)

	return s.pool.QueryRow(ctx, `
		INSERT INTO blade_decisions (weights, requirements, directions, outcome,
			considered, disqualified, scores, optimum_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		weightsJSON, reqsJSON, dirsJSON, rec.Outcome,
		consideredJSON, disqualifiedJSON, scoresJSON, rec.OptimumName,
	).Scan(&rec.ID, &rec.CreatedAt)
}

const decisionColumns = `id, weights, requirements, directions, outcome,
	considered, disqualified, scores, optimum_name, created_at`

func scanDecision(row pgx.Row) (*DecisionRecord, error) {
	rec := &DecisionRecord{}
	var weightsJSON, reqsJSON, dirsJSON []byte
	var consideredJSON, disqualifiedJSON, scoresJSON []byte

	err := row.Scan(
		&rec.ID, &weightsJSON, &reqsJSON, &dirsJSON, &rec.Outcome,
		&consideredJSON, &disqualifiedJSON, &scoresJSON, &rec.OptimumName, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	_ = json.Unmarshal(weightsJSON, &rec.Weights)
	_ = json.Unmarshal(reqsJSON, &rec.Requirements)
	_ = json.Unmarshal(dirsJSON, &rec.Directions)
	_ = json.Unmarshal(consideredJSON, &rec.Considered)
	_ = json.Unmarshal(disqualifiedJSON, &rec.Disqualified)
	_ = json.Unmarshal(scoresJSON, &rec.Scores)
	return rec, nil
}

func (s *PostgresStore) GetDecision(ctx context.Context, id uuid.UUID) (*DecisionRecord, error) {
	rec, err := scanDecision(s.pool.QueryRow(ctx, `
		SELECT `+decisionColumns+`
		FROM blade_decisions WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *PostgresStore) ListDecisions(ctx context.Context, filter DecisionFilter) ([]*DecisionRecord, error) {
	query := `SELECT ` + decisionColumns + ` FROM blade_decisions WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Outcome != nil {
		n++
		query += fmt.Sprintf(" AND outcome = $%d", n)
		args = append(args, string(*filter.Outcome))
	}

	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*DecisionRecord
	for rows.Next() {
		rec, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
