package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/coffeetime/internal/catalog"
	"github.com/dmitrijs2005/coffeetime/internal/config"
	"github.com/dmitrijs2005/coffeetime/internal/cryptox"
	"github.com/dmitrijs2005/coffeetime/internal/filex"
	"github.com/dmitrijs2005/coffeetime/internal/logging"
	"github.com/dmitrijs2005/coffeetime/internal/models"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/repomanager"
	"github.com/dmitrijs2005/coffeetime/internal/services"
)

// AuthService is the part of services.AuthService the REPL uses.
type AuthService interface {
	Register(ctx context.Context, username, password, displayName string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.Session, error)
	Logout(ctx context.Context, token string) error
}

// CatalogService is the part of services.CatalogService the REPL uses.
type CatalogService interface {
	ListRecipes(ctx context.Context) ([]models.RecipeSummary, error)
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
}

// FavoritesService is the part of services.FavoritesService the REPL uses.
type FavoritesService interface {
	Add(ctx context.Context, token string, userID, recipeID int64) (services.AddStatus, error)
	List(ctx context.Context, token string, userID int64) ([]models.RecipeSummary, error)
	Remove(ctx context.Context, token string, userID, recipeID int64) (bool, error)
	IsFavorite(ctx context.Context, token string, userID, recipeID int64) (bool, error)
}

type App struct {
	config           *config.Config
	logger           logging.Logger
	db               *sql.DB
	authService      AuthService
	catalogService   CatalogService
	favoritesService FavoritesService
	session          *services.Session
	reader           *bufio.Reader
	out              io.Writer
}

// NewApp opens the database named by c, applies migrations, seeds an empty
// catalog and wires the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	hasher, err := cryptox.NewHasher(c.PasswordScheme)
	if err != nil {
		return nil, err
	}

	fixture, err := catalog.Load(c.SeedFile)
	if err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(c.DatabaseDSN); err != nil {
		return nil, err
	}

	rm := repomanager.NewSQLiteRepositoryManager()
	db, err := repomanager.OpenSQLite(ctx, c.DatabaseDSN, rm)
	if err != nil {
		logger.Error(ctx, "error initializing database", "dsn", c.DatabaseDSN, "error", err)
		return nil, err
	}

	as := services.NewAuthService(db, rm, hasher, c, logger)
	cs := services.NewCatalogService(db, rm, logger)
	fs := services.NewFavoritesService(db, rm, as, logger)

	if _, err := cs.SeedIfEmpty(ctx, fixture); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:           c,
		logger:           logger,
		db:               db,
		authService:      as,
		catalogService:   cs,
		favoritesService: fs,
		reader:           bufio.NewReader(os.Stdin),
		out:              os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits. The database is
// closed on return.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	printlnFn("Welcome to CoffeeTime (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close ends the current session and releases the database.
func (a *App) Close(ctx context.Context) {
	if a.session != nil {
		_ = a.authService.Logout(ctx, a.session.Token)
		a.session = nil
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "error closing database", "error", err)
		}
	}
	if z, ok := a.logger.(interface{ Sync() error }); ok {
		_ = z.Sync()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", a.session.Username)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
