package leaguemigrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()

func init() {
	// Each migration gets its ID from the file name it is registered in.
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
