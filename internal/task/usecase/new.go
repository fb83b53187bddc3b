package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"family-task-parser/internal/enhancer"
	"family-task-parser/internal/model"
	"family-task-parser/internal/parser"
	"family-task-parser/internal/roster"
	"family-task-parser/internal/task"
	"family-task-parser/internal/transcript"
	pkgLog "family-task-parser/pkg/log"
)

// Config is the dependency bag passed to New.
type Config struct {
	Roster    roster.Snapshot
	Location  *time.Location
	Now       func() time.Time
	Corrector *transcript.Corrector

	// Enhancer is optional; nil makes Enhance return the plain parse.
	Enhancer       enhancer.Enhancer
	EnhanceTimeout time.Duration
	MaxRecent      int

	// CacheSize <= 0 disables the parse cache.
	CacheSize int
	CacheTTL  time.Duration
}

// cacheKey identifies a parse. Parsing is a pure function of these three.
type cacheKey struct {
	version string
	date    string
	text    string
}

type implUseCase struct {
	l              pkgLog.Logger
	engine         *parser.Engine
	snapshot       roster.Snapshot
	now            func() time.Time
	loc            *time.Location
	corrector      *transcript.Corrector
	enhancer       enhancer.Enhancer
	enhanceTimeout time.Duration
	maxRecent      int
	cache          *expirable.LRU[cacheKey, model.ParsedTask]
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, cfg Config) task.UseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Corrector == nil {
		cfg.Corrector = transcript.New(nil)
	}

	uc := &implUseCase{
		l:              l,
		snapshot:       cfg.Roster,
		now:            cfg.Now,
		loc:            cfg.Location,
		corrector:      cfg.Corrector,
		enhancer:       cfg.Enhancer,
		enhanceTimeout: cfg.EnhanceTimeout,
		maxRecent:      cfg.MaxRecent,
	}
	uc.engine = parser.New(cfg.Roster.Roster,
		parser.WithClock(cfg.Now),
		parser.WithLocation(cfg.Location),
	)
	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[cacheKey, model.ParsedTask](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return uc
}
