package migration

import "embed"

//go:embed sql/*.sql
var embedded embed.FS
