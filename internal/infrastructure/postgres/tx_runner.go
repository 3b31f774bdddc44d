package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serviya/serviya-api/internal/application/admin"
	"github.com/serviya/serviya-api/internal/application/provider"
	"github.com/serviya/serviya-api/internal/domain/repository"
)

// Verificar en tiempo de compilación que TxRunner implementa ambos puertos.
var _ provider.TxRunner = (*TxRunner)(nil)
var _ admin.ReviewTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del flujo de verificación (dirección,
// perfil, solicitud, documentos) atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	addressRepo repository.AddressRepository,
	profileRepo repository.CompanyProfileRepository,
	requestRepo repository.VerificationRequestRepository,
	documentRepo repository.DocumentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	addressRepo := NewAddressRepository(tx)
	profileRepo := NewCompanyProfileRepository(tx)
	requestRepo := NewVerificationRequestRepository(tx)
	documentRepo := NewDocumentRepository(tx)

	if err := fn(addressRepo, profileRepo, requestRepo, documentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReview inicia una transacción con los repos de la decisión administrativa
// (solicitud + perfil), para que ambas mutaciones confirmen juntas.
func (r *TxRunner) RunReview(ctx context.Context, fn func(
	requestRepo repository.VerificationRequestRepository,
	profileRepo repository.CompanyProfileRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	requestRepo := NewVerificationRequestRepository(tx)
	profileRepo := NewCompanyProfileRepository(tx)

	if err := fn(requestRepo, profileRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
