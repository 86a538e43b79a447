package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/finance-copilot-api/internal/config"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Código de violação de unicidade do Postgres
const pqUniqueViolation = "23505"

// MemoryDSN abre um banco SQLite em memória, usado no fallback de demonstração e nos testes
const MemoryDSN = ":memory:"

// Conn é o contrato usado pelos repositórios
type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	Placeholder() squirrel.PlaceholderFormat
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
	Driver string
}

var _ Conn = (*Connection)(nil)

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	return Open(ctx, cfg.Driver, cfg.DSN)
}

// Open abre a conexão para o driver informado (postgres ou sqlite)
func Open(ctx context.Context, driver, dsn string) (*Connection, error) {
	switch driver {
	case config.DriverPostgres, config.DriverSQLite:
	default:
		return nil, fmt.Errorf("driver de banco não suportado: %s", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == config.DriverSQLite {
		// SQLite em memória só existe dentro de uma única conexão
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db, Driver: driver}, nil
}

// OpenMemory abre um SQLite em memória já com o schema aplicado
func OpenMemory(ctx context.Context) (*Connection, error) {
	conn, err := Open(ctx, config.DriverSQLite, MemoryDSN)
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Placeholder retorna o formato de parâmetros do dialeto da conexão
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	if c.Driver == config.DriverSQLite {
		return squirrel.Question
	}
	return squirrel.Dollar
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("erro ao fazer rollback (%v): %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

// IsUniqueViolation identifica violação de chave única nos dois dialetos
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			// Sem códigos estendidos, só a mensagem diferencia unicidade de NOT NULL/CHECK
			return strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
		}
	}

	return false
}
