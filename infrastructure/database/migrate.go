package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schema string

// Migrate aplica o schema embutido. Todas as instruções são idempotentes
// (IF NOT EXISTS) e compatíveis com Postgres e SQLite.
func Migrate(ctx context.Context, conn *Connection) error {
	statements := strings.Split(schema, ";")

	applied := 0
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao aplicar schema (%s): %w", firstLine(stmt), err)
		}
		applied++
	}

	logrus.Debugf("Schema aplicado (%s): %d instruções", conn.Driver, applied)
	return nil
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i > 0 {
		return stmt[:i]
	}
	return stmt
}
