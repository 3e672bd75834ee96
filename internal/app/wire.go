package app

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	httpctrl "github.com/berezovskyivalerii/formgateway/internal/adapter/controller/http"
	"github.com/berezovskyivalerii/formgateway/internal/adapter/gateway/dbping"
	"github.com/berezovskyivalerii/formgateway/internal/config"
	domain "github.com/berezovskyivalerii/formgateway/internal/domain/health"
	"github.com/berezovskyivalerii/formgateway/internal/domain/startup"
	httpinfra "github.com/berezovskyivalerii/formgateway/internal/infra/http"
	"github.com/berezovskyivalerii/formgateway/internal/infra/http/mw/adminauth"
	"github.com/berezovskyivalerii/formgateway/internal/infra/registry"
	"github.com/berezovskyivalerii/formgateway/internal/infra/store"
	usehealth "github.com/berezovskyivalerii/formgateway/internal/usecase/health"
	usestartup "github.com/berezovskyivalerii/formgateway/internal/usecase/startup"
)

// App is the wired gateway. Every component Build creates is recorded in Registry.
type App struct {
	Router   *gin.Engine
	Registry *registry.Registry

	db     *sql.DB
	admin  *gin.RouterGroup
	clock  usehealth.Clock
	logger *slog.Logger
}

func Build(cfg config.Config, logger *slog.Logger, clock usehealth.Clock) (*App, error) {
	a := &App{Registry: registry.New(), clock: clock, logger: logger}
	if err := a.wire(cfg, config.NewBuildInfo(clock.Now())); err != nil {
		_ = a.Close()
		return nil, err
	}
	logger.Debug("components wired", "names", a.Registry.Names())
	return a, nil
}

func (a *App) wire(cfg config.Config, build config.BuildInfo) error {
	logger := a.logger

	var pingers []domain.Pinger
	if cfg.DBDSN != "" {
		db, err := store.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return err
		}
		a.db = db
		if err := a.register(string(startup.FactDataAccessLayer), db); err != nil {
			return err
		}
		pingers = append(pingers, dbping.DBPing{DB: db})
	} else {
		logger.Warn("DB_DSN is empty, starting without data access layer")
	}

	a.Router = httpinfra.NewRouter(logger)
	if err := a.register(string(startup.FactRequestDispatcher), a.Router); err != nil {
		return err
	}

	auth := adminauth.New(cfg.AdminAPIKey)
	if auth.Enabled() {
		a.admin = a.Router.Group("/admin", auth.Handler())
		if err := a.register(string(startup.FactSecurityChain), auth); err != nil {
			return err
		}
	} else {
		logger.Warn("ADMIN_API_KEY is empty, admin routes disabled")
	}

	uc := &usehealth.ReadinessInteractor{
		Pingers:   pingers,
		Version:   build.Version,
		Commit:    build.Commit,
		BuildTime: build.BuildTime,
		StartedAt: build.StartedAt,
		Clock:     a.clock,
	}
	health := httpctrl.NewHealthController(httpctrl.ReadinessRunner{UC: uc})
	health.Register(a.Router)
	if err := a.register("readiness", uc); err != nil {
		return err
	}
	if err := a.register("health-controller", health); err != nil {
		return err
	}

	return nil
}

func (a *App) register(name string, component any) error {
	if err := a.Registry.Register(name, component); err != nil {
		return fmt.Errorf("wire %s: %w", name, err)
	}
	return nil
}

// Startup writes the startup report to out. It must run once, after Build
// and before the router starts serving. When the security chain is wired the
// report is also served on GET /admin/startup, even if writing to out failed.
func (a *App) Startup(out io.Writer, hl usestartup.Highlighter) error {
	r := &usestartup.Reporter{Clock: a.clock, Highlight: hl}
	rep := r.Generate(a.Registry)

	if a.admin != nil {
		httpctrl.NewStartupController(rep).Register(a.admin)
	}
	return usestartup.Emit(r.Render(rep), out)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
