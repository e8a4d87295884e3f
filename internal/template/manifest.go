package template

import (
	"github.com/vuedapt/create-node/pkg/models"
)

// databaseDep is the npm dependency pulled in by a database selection.
type databaseDep struct {
	Name    string
	Version string
}

// databaseDeps maps each database selection to its npm driver.
var databaseDeps = map[models.Database]databaseDep{
	models.DatabaseMongoDB:    {Name: "mongoose", Version: "^8.9.5"},
	models.DatabasePostgreSQL: {Name: "pg", Version: "^8.13.1"},
	models.DatabaseMySQL:      {Name: "mysql2", Version: "^3.12.0"},
	models.DatabaseSQLite:     {Name: "sqlite3", Version: "^5.1.7"},
}

// manifestData feeds the package.json template.
type manifestData struct {
	Context
	DatabaseDep *databaseDep
}

// PackageJSON returns the content of package.json. The package name is the
// slug form of the project name; the dependency set varies by database.
func PackageJSON(ctx Context) string {
	data := manifestData{Context: ctx}
	if dep, ok := databaseDeps[ctx.Database]; ok {
		data.DatabaseDep = &dep
	} else if ctx.Database != models.DatabaseNone {
		unknownDatabase(ctx.Database)
	}
	return mustRender("package.json", packageJSON, data)
}

const packageJSON = `{
  "name": "{{.Slug}}",
  "version": "{{.Version}}",
  "description": "{{jsonEscape .Description}}",
  "main": "index.js",
  "scripts": {
    "start": "node index.js",
    "dev": "nodemon index.js"{{if .HasDatabase}},
    "seed": "node scripts/seed-user.js"{{end}}
  },
  "author": "{{jsonEscape .Author}}",
  "license": "{{jsonEscape .License}}",
  "dependencies": {
    "bcryptjs": "^2.4.3",
    "dotenv": "^16.4.5",
    "express": "^4.21.2",
    "jsonwebtoken": "^9.0.2"{{with .DatabaseDep}},
    "{{.Name}}": "{{.Version}}"{{end}}
  },
  "devDependencies": {
    "nodemon": "^3.1.9"
  }
}
`
