package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"finance_advisor/pkg/models"
)

// ErrProfileNotFound is returned when no profile row exists for a user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepo reads and writes user financial profiles.
//
// Expected schema:
//
//	CREATE TABLE user_profiles (
//	    user_id        TEXT PRIMARY KEY,
//	    monthly_income NUMERIC NOT NULL DEFAULT 0,
//	    total_expenses NUMERIC NOT NULL DEFAULT 0,
//	    total_emi      NUMERIC NOT NULL DEFAULT 0,
//	    emergency_fund NUMERIC NOT NULL DEFAULT 0,
//	    age            INT NOT NULL DEFAULT 0,
//	    risk_tolerance TEXT NOT NULL DEFAULT '',
//	    experience     TEXT NOT NULL DEFAULT '',
//	    goals          TEXT NOT NULL DEFAULT '',
//	    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
//
//	CREATE TABLE expenses (
//	    id       BIGSERIAL PRIMARY KEY,
//	    user_id  TEXT NOT NULL,
//	    month    TEXT NOT NULL,
//	    category TEXT NOT NULL,
//	    amount   NUMERIC NOT NULL,
//	    UNIQUE (user_id, month, category)
//	);
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepo creates a profile repository on the given pool.
func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// FinancialState loads a user's profile as a state snapshot.
func (r *ProfileRepo) FinancialState(ctx context.Context, userID string) (models.FinancialState, error) {
	var state models.FinancialState
	if r.pool == nil {
		return state, fmt.Errorf("database pool not configured")
	}

	query := `
		SELECT monthly_income, total_expenses, total_emi, emergency_fund,
		       age, risk_tolerance, experience, goals
		FROM user_profiles
		WHERE user_id = $1
	`

	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&state.Income, &state.TotalExpenses, &state.TotalEMI, &state.EmergencyFund,
		&state.Age, &state.RiskTolerance, &state.InvestmentExperience, &state.FinancialGoals,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return state, ErrProfileNotFound
	}
	if err != nil {
		return state, fmt.Errorf("failed to load profile: %w", err)
	}
	return state, nil
}

// SaveFinancialState upserts a user's profile.
func (r *ProfileRepo) SaveFinancialState(ctx context.Context, userID string, state models.FinancialState) error {
	if r.pool == nil {
		return fmt.Errorf("database pool not configured")
	}

	query := `
		INSERT INTO user_profiles (
			user_id, monthly_income, total_expenses, total_emi, emergency_fund,
			age, risk_tolerance, experience, goals
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id)
		DO UPDATE SET
			monthly_income = EXCLUDED.monthly_income,
			total_expenses = EXCLUDED.total_expenses,
			total_emi = EXCLUDED.total_emi,
			emergency_fund = EXCLUDED.emergency_fund,
			age = EXCLUDED.age,
			risk_tolerance = EXCLUDED.risk_tolerance,
			experience = EXCLUDED.experience,
			goals = EXCLUDED.goals,
			updated_at = NOW()
	`

	_, err := r.pool.Exec(ctx, query,
		userID, state.Income, state.TotalExpenses, state.TotalEMI, state.EmergencyFund,
		state.Age, state.RiskTolerance, state.InvestmentExperience, state.FinancialGoals,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// ExpenseBreakdown loads a user's categorized expenses for a month
// ("2026-08" style keys).
func (r *ProfileRepo) ExpenseBreakdown(ctx context.Context, userID, month string) (models.ExpenseBreakdown, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}

	query := `
		SELECT category, amount
		FROM expenses
		WHERE user_id = $1 AND month = $2
		ORDER BY category
	`

	rows, err := r.pool.Query(ctx, query, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	breakdown := make(models.ExpenseBreakdown)
	for rows.Next() {
		var category string
		var amount float64
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		breakdown[category] += amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}
	return breakdown, nil
}

// SaveExpense upserts one expense category amount for a month.
func (r *ProfileRepo) SaveExpense(ctx context.Context, userID, month, category string, amount float64) error {
	if r.pool == nil {
		return fmt.Errorf("database pool not configured")
	}

	query := `
		INSERT INTO expenses (user_id, month, category, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, month, category)
		DO UPDATE SET amount = EXCLUDED.amount
	`

	_, err := r.pool.Exec(ctx, query, userID, month, category, amount)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}
