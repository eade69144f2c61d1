// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// schemaOID resolves a schema name to its oid, or NULL when it does not
// exist. has_schema_privilege is strict, so a NULL oid yields NULL instead
// of raising invalid_schema_name.
const schemaOID = "(SELECT oid FROM pg_catalog.pg_namespace WHERE nspname = ?)"

// buildProbeQuery returns the single read-only statement that describes the
// session: server version, database, role, and the role's privileges on
// schema.
func buildProbeQuery(schema string) (string, []any, error) {
	query, args, err := psql.
		Select("version()", "current_database()", "current_user").
		Column(sq.Expr(schemaOID+" IS NOT NULL", schema)).
		Column(sq.Expr("COALESCE(has_schema_privilege(current_user, "+schemaOID+", 'USAGE'), false)", schema)).
		Column(sq.Expr("COALESCE(has_schema_privilege(current_user, "+schemaOID+", 'CREATE'), false)", schema)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
