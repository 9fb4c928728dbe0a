// Package pgsql holds the hand-written SQL used by repositories and read stores.
// Every method takes the connection explicitly so the same Queries value serves the pool and open transactions.
package pgsql

import (
	"strings"

	"branch-reservations/internal/infra/db"
)

type DBTX = db.DBTX

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds an ILIKE substring pattern with wildcards in s escaped.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
