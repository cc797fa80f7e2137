//go:generate sh -c "GOOS=js GOARCH=wasm go build -o static/login.wasm ./cmd/login-wasm"
//go:generate sh -c "cp $GOROOT/lib/wasm/wasm_exec.js static/ 2>/dev/null || cp $GOROOT/misc/wasm/wasm_exec.js static/"

package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/AliAlSubhi98/CodelineChallenge/auth"
	"github.com/AliAlSubhi98/CodelineChallenge/config"
	"github.com/AliAlSubhi98/CodelineChallenge/db"
	"github.com/AliAlSubhi98/CodelineChallenge/handlers"
	"github.com/AliAlSubhi98/CodelineChallenge/middleware"
)

// loginAssets are the generated files the login page script needs.
var loginAssets = []string{"login.wasm", "wasm_exec.js"}

// missingAssets lists the loginAssets absent from staticDir.
func missingAssets(staticDir string) []string {
	var missing []string
	for _, name := range loginAssets {
		if _, err := os.Stat(filepath.Join(staticDir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

func setupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	// Load HTML templates for /login and /
	r.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*"))
	r.Static("/static", cfg.StaticDir)

	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	// Pages
	r.GET("/", handlers.IndexPage)
	r.GET("/index.html", handlers.IndexPage)
	r.GET("/login", handlers.LoginPage)
	r.GET("/login.html", handlers.LoginPage)
	r.POST("/login", auth.Sessions(cfg), handlers.LoginHandler(auth.Credentials(cfg)))

	r.POST("/convert-measurements", middleware.CORS(), handlers.ConvertMeasurements)
	r.OPTIONS("/convert-measurements", middleware.CORS())

	api := r.Group("/api/v1")
	{
		api.GET("/measurements", handlers.ListMeasurements)
	}
	return r
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	// Prioritize loading environment variables from /etc/codeline/.env, then fall back to the project root directory
	config.LoadEnv()
	cfg := config.LoadConfig()

	// The converter still answers without a database; results are just not stored.
	if err := db.Init(cfg); err != nil {
		log.Printf("[DB] failed to init %s database: %v", cfg.DBDriver, err)
	} else {
		log.Printf("[DB] %s database ready", cfg.DBDriver)
	}

	if cfg.UsesDefaultSessionSecret() {
		log.Println("[HTTP] SESSION_SECRET is the public default; set it before exposing the server")
	}
	// Without the script the login form falls back to POST /login.
	if missing := missingAssets(cfg.StaticDir); len(missing) > 0 {
		log.Printf("[HTTP] %s missing from %s; run `go generate` to build the login page script", missing, cfg.StaticDir)
	}

	r := setupRouter(cfg)
	log.Printf("[HTTP] Server started on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
