package game

import (
	"errors"
	"log/slog"
	"minisnake/game/entity"
	"minisnake/game/manager"
	"minisnake/game/types"
	"time"

	"golang.org/x/exp/rand"
)

// ErrNotGameOver is returned by Restart while a session is still being played.
var ErrNotGameOver = errors.New("game: restart requested while game is running")

type Game struct {
	Grid types.Grid

	snake         *entity.Snake
	score         int
	interval      float64
	gameOver      bool
	lastUpdate    float64
	lastCollision manager.CollisionType
	steps         int

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	logger       *slog.Logger
}

type Option func(*settings)

type settings struct {
	grid      types.Grid
	src       rand.Source
	start     float64
	observers []manager.Observer
	logger    *slog.Logger
}

// WithRandSource fixes the fruit sequence.
func WithRandSource(src rand.Source) Option {
	return func(s *settings) { s.src = src }
}

// WithGrid overrides the playfield size.
func WithGrid(grid types.Grid) Option {
	return func(s *settings) { s.grid = grid }
}

// WithStartTime sets the clock reading the first step interval is measured from.
func WithStartTime(now float64) Option {
	return func(s *settings) { s.start = now }
}

func WithObserver(o manager.Observer) Option {
	return func(s *settings) { s.observers = append(s.observers, o) }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

func NewGame(opts ...Option) *Game {
	s := settings{
		grid: types.DefaultGrid(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.src == nil {
		s.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	g := &Game{
		Grid:         s.grid,
		collisionMgr: manager.NewCollisionManager(s.grid),
		foodMgr:      manager.NewFoodManager(s.grid, s.src),
		stateMgr:     manager.NewStateManager(s.observers...),
		logger:       s.logger,
	}
	g.reset(s.start)
	return g
}

// Restart throws the finished session away and starts a fresh one.
func (g *Game) Restart(now float64) error {
	if !g.gameOver {
		return ErrNotGameOver
	}
	g.reset(now)
	g.logger.Info("game restarted", "session", g.stateMgr.SessionID(), "sessions", g.stateMgr.Sessions())
	return nil
}

func (g *Game) reset(now float64) {
	g.snake = entity.NewSnake(types.SpawnPoint, types.Down)
	g.foodMgr.Spawn()
	g.score = 0
	g.interval = types.InitialInterval
	g.gameOver = false
	g.lastCollision = manager.NoCollision
	g.lastUpdate = now
	g.steps = 0

	g.stateMgr.BeginSession()
	g.notify(manager.EventStart)
}

// Tick runs one simulation step once more than the current interval has
// passed since the previous one. now is a monotonic clock in seconds.
func (g *Game) Tick(now float64) bool {
	if g.gameOver || now-g.lastUpdate <= g.interval {
		return false
	}
	g.lastUpdate = now
	g.Step()
	return true
}

// Step advances the snake by one cell, eats fruit and checks collisions.
func (g *Game) Step() {
	if g.gameOver {
		return
	}
	g.steps++

	newHead := g.snake.NextHead()
	ate := g.foodMgr.IsFoodCollision(newHead)
	g.snake.Move(ate)

	if ate {
		g.foodMgr.Spawn()
		g.score++
		g.interval *= types.IntervalDecay
		g.stateMgr.UpdateScore(g.score)
		g.logger.Debug("fruit eaten", "score", g.score, "interval", g.interval, "next_fruit", g.foodMgr.Fruit())
		g.notify(manager.EventEat)
	}

	if collision := g.collisionMgr.Check(g.snake.Head, g.snake.Body); collision != manager.NoCollision {
		g.gameOver = true
		g.lastCollision = collision
		g.logger.Info("game over",
			"session", g.stateMgr.SessionID(),
			"cause", collision,
			"score", g.score,
			"length", g.snake.Length(),
			"steps", g.steps,
			"duration", g.stateMgr.SessionDuration().Round(time.Millisecond),
			"best", g.stateMgr.GetHighScore())
		g.notify(manager.EventGameOver)
		return
	}

	if !ate {
		g.notify(manager.EventStep)
	}
}

func (g *Game) notify(kind manager.EventKind) {
	ev := manager.Event{
		Kind:     kind,
		Head:     g.snake.Head,
		Fruit:    g.foodMgr.Fruit(),
		Score:    g.score,
		Length:   g.snake.Length(),
		Interval: g.interval,
	}
	if kind == manager.EventGameOver {
		ev.Cause = g.lastCollision
	}
	g.stateMgr.Notify(ev)
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.Fruit()
}

func (g *Game) Score() int {
	return g.score
}

// Interval is the current StepInterval in seconds.
func (g *Game) Interval() float64 {
	return g.interval
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

func (g *Game) LastCollision() manager.CollisionType {
	return g.lastCollision
}

func (g *Game) GridSize() int {
	return g.Grid.Width
}

func (g *Game) SessionID() string {
	return g.stateMgr.SessionID()
}

// HighScore is the best score of any session in this process.
func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}
