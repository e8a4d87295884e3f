package defs

import "os"

// Generated file paths, relative to the project root.
const (
	PackageJSON    = "package.json"
	IndexJS        = "index.js"
	DatabaseJS     = "configs/database.js"
	AuthController = "controllers/auth.controller.js"
	AuthMiddleware = "middlewares/auth.middleware.js"
	UserModel      = "models/user.model.js"
	AuthRoute      = "routes/auth.route.js"
	JWTUtil        = "utils/jwt.js"
	SeedScript     = "scripts/seed-user.js"
	EnvExample     = ".env.example"
	GitIgnore      = ".gitignore"
	ReadmeMD       = "README.md"
	UploadsKeep    = "uploads/.gitkeep"
)

// Permissions for created directories and files.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// DefaultProjectName is used when no name is given on the command line.
const DefaultProjectName = "node-app"
