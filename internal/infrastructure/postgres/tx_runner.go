package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laqus/deskguard-api/internal/application/usecase"
	"github.com/laqus/deskguard-api/internal/domain/repository"
)

var _ usecase.MembershipTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks sobre repositorios ligados a una transacción.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner transaccional.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunMemberships abre una transacción, ejecuta fn con un MembershipRepo ligado
// a ella y confirma. Si fn retorna error se revierte todo.
func (t *TxRunner) RunMemberships(ctx context.Context, fn func(memberships repository.MembershipRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewMembershipRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
