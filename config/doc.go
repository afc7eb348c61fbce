// Package config provides a layered key/value configuration container.
//
// A [Store] is filled by calling loaders in the order their sources should
// take precedence; the last call to set a key wins:
//
//	cfg := config.New(map[string]any{"log_level": "info"})
//	_, _ = cfg.FromEnv("APP_SETTINGS", true)
//	_, err := cfg.FromStructuredFile("config.json", false)
//
// Values are read directly ([Store.Get]), through a typed [Attribute] bound
// to a key, or sliced by prefix with [Store.Namespace].
//
// # Source files
//
// [Store.FromSourceFile] understands two formats. An expression config holds
// one assignment per line, evaluated with expr-lang:
//
//	# comments and blank lines are ignored
//	HOST = "localhost"
//	PORT = 8080
//	URL  = "http://" + HOST + ":" + string(PORT)
//	DEBUG = PORT != 80
//
// Every expression sees the store's current values and the names bound
// above it. A .js file is executed as JavaScript and its top-level var
// bindings become keys. Scripts can do anything the interpreter allows and
// are rejected unless the [Trusted] option is given.
//
// A Store is not safe for concurrent use.
package config
