package engine

import (
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cave-copter/event"
	"github.com/lixenwraith/cave-copter/fsm"
	"github.com/lixenwraith/cave-copter/parameter"
	"github.com/lixenwraith/cave-copter/physics"
	"github.com/lixenwraith/cave-copter/status"
	"github.com/lixenwraith/cave-copter/world"
)

// Leaderboard decides whether a finished run earns a table entry
type Leaderboard interface {
	// Qualifies returns the 1-based rank score would take, ok=false if it misses the table
	Qualifies(score int) (rank int, ok bool)
}

// Options configures a Session
type Options struct {
	Width, Height float64
	ScrollSpeed   float64
	FPS           int

	// Ticks between spawns while playing
	ObstacleInterval  int
	FormationInterval int

	Variant physics.Variant
	Custom  []physics.Variant // Extra variants reachable by CycleCraft

	// FullCollision selects the whole-box probe over leading-edge sampling
	FullCollision bool

	Seed        int64 // 0 seeds from the wall clock
	Leaderboard Leaderboard
}

// Session owns the world and drives it one tick at a time
// All methods must be called from the goroutine that owns the session
type Session struct {
	opts    Options
	rng     *rand.Rand
	queue   *event.EventQueue
	machine *fsm.Machine[*Session]
	probe   *world.Probe

	craft      *physics.Craft
	helipad    *world.Helipad
	obstacles  []*world.Obstacle
	formations []*world.Formation
	ceiling    *world.EdgeStrip
	floor      *world.EdgeStrip
	particles  world.Particles

	score         float64 // Raw; displayed score is score/10
	highScore     float64 // Raw
	lastMilestone int

	obstacleTimer  int
	formationTimer int
	smokeTimer     int

	held        bool // Lift input currently down
	waitRelease bool // Crash happened with lift held; restart waits for release
	crashed     bool

	pending   []Input
	tick      uint64
	lastState string

	statObstacles *atomic.Int64
	statScore     *status.AtomicFloat
	statState     *status.AtomicString
}

// NewSession builds a session and enters the start state
// Events are pushed to queue; reg receives session metrics
func NewSession(opts Options, queue *event.EventQueue, reg *status.Registry) (*Session, error) {
	if opts.FPS <= 0 {
		opts.FPS = parameter.TargetFPS
	}
	if opts.ObstacleInterval <= 0 {
		opts.ObstacleInterval = 1
	}
	if opts.FormationInterval <= 0 {
		opts.FormationInterval = 1
	}
	if err := opts.Variant.Validate(); err != nil {
		return nil, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		opts:          opts,
		rng:           rand.New(rand.NewSource(seed)),
		queue:         queue,
		statObstacles: reg.Ints.Get(status.KeySessionObstacles),
		statScore:     reg.Floats.Get(status.KeySessionScore),
		statState:     reg.Strings.Get(status.KeySessionState),
	}
	if opts.FullCollision {
		s.probe = world.NewProbe(opts.Width, opts.Height)
	}

	m, err := newSessionMachine()
	if err != nil {
		return nil, err
	}
	s.machine = m
	if err := m.Init(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Input queues a signal for the next tick
func (s *Session) Input(in Input) {
	s.pending = append(s.pending, in)
}

// Tick advances the session by one fixed step
func (s *Session) Tick() {
	s.tick++
	s.applyInputs()
	s.machine.Update(s, time.Second/time.Duration(s.opts.FPS))
	s.particles.Update()

	s.statObstacles.Store(int64(len(s.obstacles)))
	s.statScore.Set(s.score)
}

func (s *Session) applyInputs() {
	for _, in := range s.pending {
		switch in {
		case LiftStart:
			s.held = true
			if s.State() == StatePlaying {
				s.setLift(true)
			}
		case LiftStop:
			s.held = false
			s.waitRelease = false
			if s.State() == StatePlaying {
				s.setLift(false)
			}
		case Confirm:
			s.machine.Fire(s, triggerConfirm)
		case CycleCraft:
			if s.State() == StateStart {
				s.cycleCraft()
			}
		}
	}
	s.pending = s.pending[:0]
}

func (s *Session) setLift(on bool) {
	if s.craft.Lifting == on {
		return
	}
	s.craft.SetLifting(on)
	if on {
		s.emit(event.EventLiftStart, nil)
	} else {
		s.emit(event.EventLiftStop, nil)
	}
}

func (s *Session) cycleCraft() {
	s.opts.Variant = physics.Next(s.opts.Variant.Name, s.opts.Custom...)
	s.craft.Variant = s.opts.Variant
	log.Printf("session: craft %s selected", s.opts.Variant.Name)
}

func (s *Session) emit(t event.EventType, payload any) {
	s.queue.Emit(t, payload, s.tick)
}

// === State actions ===

// resetWorld rebuilds everything for a fresh run; high score survives
func (s *Session) resetWorld() {
	w, h := s.opts.Width, s.opts.Height

	s.craft = physics.NewCraft(s.opts.Variant, parameter.CraftStartX, h-parameter.LaunchPadOffset)
	s.helipad = world.NewHelipad(h)
	s.obstacles = s.obstacles[:0]
	s.ceiling = world.NewEdgeStrip(s.rng, world.Ceiling, w, h)
	s.floor = world.NewEdgeStrip(s.rng, world.Floor, w, h)
	s.particles.Clear()

	s.formations = s.formations[:0]
	for i := 0; i < parameter.DemoFormations; i++ {
		s.formations = append(s.formations, world.NewFormation(s.rng, s.rng.Float64()*w, h))
	}

	s.score = 0
	s.lastMilestone = 0
	s.obstacleTimer = 0
	s.formationTimer = 0
	s.smokeTimer = 0
	s.crashed = false
	s.waitRelease = false
}

// drift animates the start screen scenery at reduced speed
func (s *Session) drift() {
	speed := s.opts.ScrollSpeed * parameter.DemoSpeedFactor
	s.advanceFormations(speed)
	s.ceiling.Advance(speed)
	s.floor.Advance(speed)
}

func (s *Session) placeOnPad() {
	s.craft.Reset(s.opts.Height - parameter.LaunchPadOffset)
}

func (s *Session) launch() {
	log.Printf("session: launch %s", s.craft.Variant.Name)
	s.setLift(true)
}

// simulate runs one playing tick; a crash stops the tick and arms the Crashed guard
func (s *Session) simulate() {
	w, h := s.opts.Width, s.opts.Height
	speed := s.opts.ScrollSpeed
	c := s.craft

	c.Step(h)
	if c.Y <= 0 || c.Y >= h-c.Variant.Height {
		s.crashed = true
		return
	}

	s.obstacleTimer++
	if s.obstacleTimer >= s.opts.ObstacleInterval {
		o := world.NewObstacle(s.rng, w, h, s.Display())
		s.obstacles = append(s.obstacles, o)
		s.obstacleTimer = 0
		s.emit(event.EventObstacleSpawned, &event.ObstacleSpawnedPayload{Level: o.Level, Gap: o.Gap})
	}

	box := c.Bounds()
	live := s.obstacles[:0]
	hit := false
	for _, o := range s.obstacles {
		o.Advance(speed)
		if o.OffScreen() {
			continue
		}
		live = append(live, o)
		if s.probe == nil && o.CollidesWith(box) {
			hit = true
		}
	}
	clear(s.obstacles[len(live):])
	s.obstacles = live
	if s.probe != nil {
		hit = s.probe.Collides(s.obstacles, box)
	}
	if hit {
		s.crashed = true
		return
	}

	display := s.Display()
	milestone := display / parameter.MilestoneStep * parameter.MilestoneStep
	if milestone > s.lastMilestone && milestone <= parameter.MilestoneMax {
		s.lastMilestone = milestone
		log.Printf("session: milestone %d", milestone)
		s.emit(event.EventMilestoneReached, &event.MilestonePayload{Milestone: milestone})
	}

	s.score += float64(parameter.TargetFPS) / float64(s.opts.FPS)
	s.emit(event.EventScoreChanged, &event.ScorePayload{Raw: s.score})

	s.formationTimer++
	if s.formationTimer >= s.opts.FormationInterval {
		s.formations = append(s.formations, world.NewFormation(s.rng, w, h))
		s.formationTimer = 0
	}
	s.advanceFormations(speed)

	s.ceiling.Advance(speed)
	s.floor.Advance(speed)
	s.helipad.Advance(speed)

	s.smokeTimer++
	if s.smokeTimer >= parameter.SmokeEmitTicks {
		s.smokeTimer = 0
		s.particles.EmitSmoke(s.rng, c.X+parameter.SmokeOffsetX, c.Y+parameter.SmokeOffsetY)
	}
}

func (s *Session) advanceFormations(speed float64) {
	live := s.formations[:0]
	for _, f := range s.formations {
		f.Advance(speed)
		if !f.OffScreen() {
			live = append(live, f)
		}
	}
	clear(s.formations[len(live):])
	s.formations = live
}

// wreck settles the crash: stop the rotor, record scores, offer the leaderboard
func (s *Session) wreck() {
	c := s.craft
	s.waitRelease = s.held
	s.setLift(false)

	s.emit(event.EventCollision, &event.CollisionPayload{X: c.X, Y: c.Y})
	s.particles.Explode(s.rng, c.X, c.Y)

	if s.score > s.highScore {
		s.highScore = s.score
	}
	display := s.Display()
	log.Printf("session: crash at (%.1f, %.1f) score %d", c.X, c.Y, display)

	if s.opts.Leaderboard != nil {
		if rank, ok := s.opts.Leaderboard.Qualifies(display); ok {
			s.emit(event.EventHighScore, &event.HighScorePayload{Score: display, Craft: c.Variant.Name, Rank: rank})
		}
	}
}

// === Read accessors for frontends ===

// State returns the current state name
func (s *Session) State() string { return s.machine.StateName() }

// Score returns the raw score
func (s *Session) Score() float64 { return s.score }

// Display returns the score as shown to the player
func (s *Session) Display() int { return int(s.score) / parameter.ScoreDivisor }

// HighScore returns the best raw score of this process
func (s *Session) HighScore() float64 { return s.highScore }

// LastMilestone returns the highest milestone announced this run
func (s *Session) LastMilestone() int { return s.lastMilestone }

// Craft returns the player's craft
func (s *Session) Craft() *physics.Craft { return s.craft }

// Helipad returns the launch pad
func (s *Session) Helipad() *world.Helipad { return s.helipad }

// Obstacles returns the live obstacles, oldest first
func (s *Session) Obstacles() []*world.Obstacle { return s.obstacles }

// Formations returns the background formations
func (s *Session) Formations() []*world.Formation { return s.formations }

// Edges returns the ceiling and floor strips
func (s *Session) Edges() (ceiling, floor *world.EdgeStrip) { return s.ceiling, s.floor }

// Particles returns the live smoke and debris
func (s *Session) Particles() []world.Particle { return s.particles.Items }

// Size returns the canvas size in world units
func (s *Session) Size() (w, h float64) { return s.opts.Width, s.opts.Height }

// WaitingRelease reports whether restart is blocked on releasing lift
func (s *Session) WaitingRelease() bool { return s.waitRelease }

// Ticks returns the number of ticks run
func (s *Session) Ticks() uint64 { return s.tick }
