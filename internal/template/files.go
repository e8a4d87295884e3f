package template

import (
	"github.com/vuedapt/create-node/internal/defs"
)

// File pairs a project-relative path with its rendered content.
type File struct {
	Path    string
	Content string
}

// Files returns every generated file in write order. The seed script is
// present if and only if a database was selected.
func Files(ctx Context) []File {
	files := []File{
		{Path: defs.PackageJSON, Content: PackageJSON(ctx)},
		{Path: defs.IndexJS, Content: EntryPoint(ctx)},
		{Path: defs.DatabaseJS, Content: DatabaseConfig(ctx)},
		{Path: defs.AuthController, Content: AuthController(ctx)},
		{Path: defs.AuthMiddleware, Content: AuthMiddleware(ctx)},
		{Path: defs.UserModel, Content: UserModel(ctx)},
		{Path: defs.AuthRoute, Content: AuthRoute(ctx)},
		{Path: defs.JWTUtil, Content: JWTUtil(ctx)},
	}
	if ctx.HasDatabase() {
		files = append(files, File{Path: defs.SeedScript, Content: SeedScript(ctx)})
	}
	files = append(files,
		File{Path: defs.EnvExample, Content: EnvExample(ctx)},
		File{Path: defs.GitIgnore, Content: GitIgnore(ctx)},
		File{Path: defs.ReadmeMD, Content: Readme(ctx)},
		File{Path: defs.UploadsKeep, Content: ""},
	)
	return files
}
