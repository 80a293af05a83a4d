package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// Uniqueness is enforced here, not by pre-insert reads: the users table
// keys on username and recipes carry UNIQUE(owner_username, name), so a
// racing duplicate insert surfaces as a constraint violation that the
// store maps to ErrDuplicateUser/ErrDuplicateRecipe.
//
// Favorites are a proper join table rather than a serialized list on the
// user row. The AUTOINCREMENT id preserves insertion order and the
// (username, recipe_id) uniqueness makes add idempotent at the schema
// level. ON DELETE CASCADE is a backstop; DeleteRecipe still removes the
// rows explicitly inside its transaction.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL,
    email TEXT NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS recipes (
    id TEXT PRIMARY KEY,
    owner_username TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    prep_time TEXT NOT NULL,
    steps TEXT NOT NULL,
    image_path TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    UNIQUE (owner_username, name),
    FOREIGN KEY (owner_username) REFERENCES users(username) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS favorites (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL,
    recipe_id TEXT NOT NULL,
    UNIQUE (username, recipe_id),
    FOREIGN KEY (username) REFERENCES users(username) ON DELETE CASCADE,
    FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_recipes_owner ON recipes(owner_username);
CREATE INDEX IF NOT EXISTS idx_favorites_username ON favorites(username);
CREATE INDEX IF NOT EXISTS idx_favorites_recipe_id ON favorites(recipe_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
