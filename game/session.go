package game

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/milk9111/skyclimb/common"
	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/ecs/entity"
	"github.com/milk9111/skyclimb/ecs/system"
	"github.com/milk9111/skyclimb/prefabs"
	"github.com/milk9111/skyclimb/profile"
)

// Input is the player's intent for one frame. MoveX/MoveZ are in [-1, 1];
// Jump is an edge, true only on the frame the key went down.
type Input struct {
	MoveX float64
	MoveZ float64
	Jump  bool
}

type Options struct {
	Seed   uint64
	Tuning *prefabs.Tuning
	// Profile receives bananas and high scores; nil keeps the run in memory.
	Profile *profile.Profile
}

// Session is one climbing run and everything it needs between frames.
// Restart replaces the world but keeps the profile and the random stream.
type Session struct {
	tuning  *prefabs.Tuning
	profile *profile.Profile
	seed    uint64
	rng     *rand.Rand

	world  *ecs.World
	sim    *ecs.Scheduler
	always *ecs.Scheduler
	score  *system.ScoreSystem

	player  ecs.Entity
	camera  ecs.Entity
	state   ecs.Entity
	runID   uuid.UUID
	elapsed float64
	tick    uint64
}

func NewSession(opts Options) (*Session, error) {
	t := opts.Tuning
	if t == nil {
		loaded, err := prefabs.LoadTuning(prefabs.TuningFile)
		if err != nil {
			return nil, err
		}
		t = loaded
	} else if err := t.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		tuning:  t,
		profile: opts.Profile,
		seed:    opts.Seed,
		rng:     rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart records the current run, discards its world and seeds a fresh
// one. The new player is not ready until MarkPlayerReady.
func (s *Session) Restart() error {
	s.EndRun()

	curve, err := system.NewDifficultyCurve(s.tuning.Difficulty)
	if err != nil {
		log.Printf("session: %v; using step curve", err)
		curve = nil
	}

	w := ecs.NewWorld()
	highScore := 0
	if s.profile != nil {
		highScore = s.profile.HighScore
	}

	player, err := entity.NewPlayer(w, s.tuning, highScore)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	cam, err := entity.NewCamera(w, s.tuning)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	state, err := entity.NewWorldState(w, s.tuning)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := system.SeedWorld(w, s.tuning, s.rng); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	var progress system.Progress
	if s.profile != nil {
		progress = s.profile
	}

	s.score = system.NewScoreSystem(s.tuning, curve)
	s.sim = ecs.NewScheduler(
		system.NewEffectsSystem(s.tuning),
		system.NewMovementSystem(s.tuning),
		system.NewPhysicsSystem(s.tuning),
		system.NewLandingSystem(s.tuning),
		system.NewDeathSystem(s.tuning),
		system.NewPowerUpCollectSystem(s.tuning, s.rng),
		system.NewPickupCollectSystem(s.tuning, s.rng, progress),
		system.NewHazardSystem(s.tuning, s.rng),
		system.NewPlatformMotionSystem(s.tuning),
		system.NewCameraSystem(),
		system.NewAnimationSystem(),
		s.score,
		system.NewCooldownSystem(),
		system.NewSpawnSystem(s.tuning, s.rng),
		system.NewPruneSystem(s.tuning),
	)
	s.always = ecs.NewScheduler(system.NewParticleSystem(s.tuning))

	s.world = w
	s.player = player
	s.camera = cam
	s.state = state
	s.runID = uuid.New()
	s.elapsed = 0
	s.tick = 0

	log.Printf("run %s: seeded %d platforms", s.runID, ecs.Count(w, component.PlatformComponent.Kind()))
	return nil
}

// MarkPlayerReady is called once the character model has loaded.
func (s *Session) MarkPlayerReady() {
	if p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind()); ok {
		p.Ready = true
	}
}

// Tick advances the simulation by dt seconds and returns what happened.
// dt is clamped to [0, MaxDT]. Gameplay runs only while the player is alive
// and ready; particles always animate.
func (s *Session) Tick(dt float64, in Input) []ecs.Event {
	dt = common.Clamp(dt, 0, s.tuning.Physics.MaxDT)
	s.elapsed += dt
	s.tick++

	if c, ok := ecs.Get(s.world, s.state, component.ClockComponent.Kind()); ok {
		c.DT = dt
		c.Elapsed = s.elapsed
		c.Tick = s.tick
	}
	if pi, ok := ecs.Get(s.world, s.player, component.InputComponent.Kind()); ok {
		pi.MoveX = common.Clamp(in.MoveX, -1, 1)
		pi.MoveZ = common.Clamp(in.MoveZ, -1, 1)
		pi.JumpPressed = in.Jump
	}

	if p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind()); ok && p.Alive && p.Ready {
		s.sim.Update(s.world)
	}
	s.always.Update(s.world)

	events := s.world.Events().Drain()
	for _, ev := range events {
		switch ev.Type {
		case ecs.EventDied:
			score := s.Score()
			log.Printf("run %s: died at height %.1f, score %d", s.runID, score.MaxHeight, score.Total)
			s.EndRun()
		case ecs.EventHighScore:
			log.Printf("run %s: new high score %v", s.runID, ev.Data)
		}
	}
	return events
}

// EndRun writes the run's high score to the profile. The tick never touches
// the store for the high score; this runs on death, on Restart and when the
// host shuts down. Calling it again without a better score writes nothing.
func (s *Session) EndRun() {
	if s.profile == nil || s.world == nil {
		return
	}
	score, ok := ecs.Get(s.world, s.player, component.ScoreComponent.Kind())
	if !ok {
		return
	}
	if s.profile.RecordScore(score.HighScore) {
		log.Printf("run %s: high score %d saved", s.runID, score.HighScore)
	}
}

// ApplyTuning swaps in validated tuning. Entities already in the world keep
// what they were spawned with; everything generated afterwards uses t.
func (s *Session) ApplyTuning(t *prefabs.Tuning) error {
	if t == nil {
		return prefabs.ErrInvalidTuning
	}
	if err := t.Validate(); err != nil {
		return err
	}
	*s.tuning = *t

	curve, err := system.NewDifficultyCurve(s.tuning.Difficulty)
	if err != nil {
		log.Printf("session: %v; using step curve", err)
		curve = nil
	}
	s.score.SetCurve(curve)

	if gen, ok := ecs.Get(s.world, s.state, component.GeneratorComponent.Kind()); ok {
		gen.SpawnAhead = s.tuning.World.SpawnAhead
		gen.PruneBelow = s.tuning.World.PruneBelow
	}
	if cam, ok := ecs.Get(s.world, s.camera, component.CameraComponent.Kind()); ok {
		cam.OffsetX = s.tuning.Camera.Offset.X
		cam.OffsetY = s.tuning.Camera.Offset.Y
		cam.OffsetZ = s.tuning.Camera.Offset.Z
		cam.Smoothness = s.tuning.Camera.Smoothness
	}
	log.Printf("run %s: tuning applied", s.runID)
	return nil
}

func (s *Session) World() *ecs.World         { return s.world }
func (s *Session) Player() ecs.Entity        { return s.player }
func (s *Session) RunID() uuid.UUID          { return s.runID }
func (s *Session) Seed() uint64              { return s.seed }
func (s *Session) Tuning() *prefabs.Tuning   { return s.tuning }
func (s *Session) Profile() *profile.Profile { return s.profile }
func (s *Session) Elapsed() float64          { return s.elapsed }

func (s *Session) PlayerState() (component.Player, component.Transform) {
	var p component.Player
	var t component.Transform
	if v, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind()); ok {
		p = *v
	}
	if v, ok := ecs.Get(s.world, s.player, component.TransformComponent.Kind()); ok {
		t = *v
	}
	return p, t
}

func (s *Session) Alive() bool {
	p, _ := s.PlayerState()
	return p.Alive
}

func (s *Session) Ready() bool {
	p, _ := s.PlayerState()
	return p.Ready
}

func (s *Session) Score() component.Score {
	if v, ok := ecs.Get(s.world, s.player, component.ScoreComponent.Kind()); ok {
		return *v
	}
	return component.Score{}
}

func (s *Session) Effects() component.Effects {
	if v, ok := ecs.Get(s.world, s.player, component.EffectsComponent.Kind()); ok {
		return *v
	}
	return component.Effects{}
}

func (s *Session) Camera() component.Camera {
	if v, ok := ecs.Get(s.world, s.camera, component.CameraComponent.Kind()); ok {
		return *v
	}
	return component.Camera{}
}

func (s *Session) Difficulty() int {
	if v, ok := ecs.Get(s.world, s.state, component.GeneratorComponent.Kind()); ok {
		return v.Difficulty
	}
	return 0
}
