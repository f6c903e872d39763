// Package migrations embeds the DDL for every supported dialect. Files live
// under <driver>/NNNNNN_<name>.{up,down}.sql in golang-migrate layout.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed postgres/*.sql mysql/*.sql sqlite3/*.sql
var FS embed.FS

const upSuffix = ".up.sql"

// Script is one embedded up migration.
type Script struct {
	Name string
	SQL  string
}

// Up returns the up scripts for driver in version order.
func Up(driver string) ([]Script, error) {
	entries, err := fs.ReadDir(FS, driver)
	if err != nil {
		return nil, fmt.Errorf("no migrations for driver %q: %w", driver, err)
	}

	names := []string{}

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), upSuffix) {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)

	scripts := make([]Script, 0, len(names))

	for _, name := range names {
		raw, err := fs.ReadFile(FS, path.Join(driver, name))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}

		scripts = append(scripts, Script{Name: strings.TrimSuffix(name, upSuffix), SQL: string(raw)})
	}

	return scripts, nil
}

// Statements splits a script on statement terminators.
func (s Script) Statements() []string {
	statements := []string{}

	for _, stmt := range strings.Split(s.SQL, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}

	return statements
}
