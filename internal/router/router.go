package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "pettabl/docs"
	mem "pettabl/internal/adapters/storage/memory"
	pg "pettabl/internal/adapters/storage/postgres"
	lite "pettabl/internal/adapters/storage/sqlite"
	"pettabl/internal/domain/activities"
	"pettabl/internal/domain/agents"
	"pettabl/internal/domain/careplan"
	"pettabl/internal/domain/pets"
	"pettabl/internal/domain/schedules"
	"pettabl/internal/domain/sessions"
	"pettabl/internal/middleware"
	"pettabl/internal/platform/logger"
	"pettabl/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	Log logger.Logger // puede ser nil; se arma desde env

	// Opcional: si viene, usa esa DB Postgres. Si no, elige backend por
	// env: DB_DSN (Postgres), SQLITE_PATH (SQLite embebido) o in-memory.
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		petRepo      pets.Repository
		scheduleRepo schedules.Repository
		sessionRepo  sessions.Repository
		agentRepo    agents.Repository
		activityRepo activities.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Error("postgres open failed, falling back", map[string]any{"err": err.Error()})
			}
		}
	}

	usingDB := db != nil
	var sdb *sql.DB
	if !usingDB {
		if path := os.Getenv("SQLITE_PATH"); path != "" {
			opened, err := lite.Open(path)
			if err == nil {
				sdb = opened
			} else {
				log.Error("sqlite open failed, falling back to memory", map[string]any{"err": err.Error()})
			}
		}
	}

	switch {
	case usingDB:
		if err := pg.MigrateUp(db); err != nil {
			log.Error("postgres migrate failed", map[string]any{"err": err.Error()})
		}
		petRepo = pg.NewPetsRepo(db)
		scheduleRepo = pg.NewSchedulesRepo(db)
		sessionRepo = pg.NewSessionsRepo(db)
		agentRepo = pg.NewAgentsRepo(db)
		activityRepo = pg.NewActivitiesRepo(db)

	case sdb != nil:
		if err := lite.MigrateUp(sdb); err != nil {
			log.Error("sqlite migrate failed", map[string]any{"err": err.Error()})
		}
		petRepo = lite.NewPetsRepo(sdb)
		scheduleRepo = lite.NewSchedulesRepo(sdb)
		sessionRepo = lite.NewSessionsRepo(sdb)
		agentRepo = lite.NewAgentsRepo(sdb)
		activityRepo = lite.NewActivitiesRepo(sdb)

	default:
		petRepo = mem.NewPetRepo()
		scheduleRepo = mem.NewScheduleRepo()
		sessionRepo = mem.NewSessionRepo()
		agentRepo = mem.NewAgentRepo()
		activityRepo = mem.NewActivityRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	schedulesSvc := schedules.NewService(scheduleRepo)
	sessionsSvc := sessions.NewService(sessionRepo)
	agentsSvc := agents.NewService(agentRepo)
	activitiesSvc := activities.NewService(activityRepo)
	careplanSvc := careplan.NewService(sessionsSvc, schedulesSvc, activitiesSvc)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, agentsSvc)
	schedules.RegisterRoutes(r, schedulesSvc, petsSvc, agentsSvc)
	sessions.RegisterRoutes(r, sessionsSvc, petsSvc, agentsSvc)
	agents.RegisterRoutes(r, agentsSvc, sessionsSvc)
	activities.RegisterRoutes(r, activitiesSvc, sessionsSvc, agentsSvc)
	careplan.RegisterRoutes(r, careplanSvc, agentsSvc)

	return r
}
