package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"gorm.io/gorm"
)

//go:embed *.sql
var files embed.FS

// Apply runs every embedded script in file name order inside one transaction.
// Scripts are written to be re-runnable.
func Apply(db *gorm.DB) error {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return fmt.Errorf("migrations.Apply: %w", err)
	}
	sort.Strings(names)
	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			script, e := files.ReadFile(name)
			if e != nil {
				return fmt.Errorf("migrations.Apply read %s: %w", name, e)
			}
			if e = tx.Exec(string(script)).Error; e != nil {
				return fmt.Errorf("migrations.Apply exec %s: %w", name, e)
			}
		}
		return nil
	})
}
