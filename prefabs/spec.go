package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type PhysicsSpec struct {
	Gravity float64 `yaml:"gravity"`
	MaxDT   float64 `yaml:"max_dt"`
}

type PlayerSpec struct {
	Spawn               Vec3Spec `yaml:"spawn"`
	MoveSpeed           float64  `yaml:"move_speed"`
	JumpVelocity        float64  `yaml:"jump_velocity"`
	BoostedJumpVelocity float64  `yaml:"boosted_jump_velocity"`
	SpeedMultiplier     float64  `yaml:"speed_multiplier"`
	FacingLerp          float64  `yaml:"facing_lerp"`
	HalfWidth           float64  `yaml:"half_width"`
	Height              float64  `yaml:"height"`
}

type LandingSpec struct {
	HalfWidth      float64 `yaml:"half_width"`
	BelowTolerance float64 `yaml:"below_tolerance"`
	AboveTolerance float64 `yaml:"above_tolerance"`
	SnapOffset     float64 `yaml:"snap_offset"`
}

type CameraSpec struct {
	Start      Vec3Spec `yaml:"start"`
	Offset     Vec3Spec `yaml:"offset"`
	Smoothness float64  `yaml:"smoothness"`
	FallLimit  float64  `yaml:"fall_limit"`
}

type WorldSpec struct {
	SpawnAhead         float64 `yaml:"spawn_ahead"`
	PruneBelow         float64 `yaml:"prune_below"`
	ObstaclePruneSlack float64 `yaml:"obstacle_prune_slack"`
}

// GenerationSpec drives one platform slot: the offset from the previous
// platform and the chances of each prop spawning on it.
type GenerationSpec struct {
	Count           int     `yaml:"count"`
	MaxDX           float64 `yaml:"max_dx"`
	MinDY           float64 `yaml:"min_dy"`
	MaxDY           float64 `yaml:"max_dy"`
	MovingChance    float64 `yaml:"moving_chance"`
	RangeMin        float64 `yaml:"range_min"`
	RangeMax        float64 `yaml:"range_max"`
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedMax        float64 `yaml:"speed_max"`
	SpeedDifficulty float64 `yaml:"speed_difficulty"`
	SpeedJitter     float64 `yaml:"speed_jitter"`

	BananaChance float64 `yaml:"banana_chance"`
	BananaLift   float64 `yaml:"banana_lift"`

	PowerUpChance float64 `yaml:"powerup_chance"`
	PowerUpSpread float64 `yaml:"powerup_spread"`
	PowerUpLift   float64 `yaml:"powerup_lift"`

	ObstacleChance          float64 `yaml:"obstacle_chance"`
	ObstacleLift            float64 `yaml:"obstacle_lift"`
	ObstacleRangeMin        float64 `yaml:"obstacle_range_min"`
	ObstacleRangeMax        float64 `yaml:"obstacle_range_max"`
	ObstacleSpeedMin        float64 `yaml:"obstacle_speed_min"`
	ObstacleSpeedMax        float64 `yaml:"obstacle_speed_max"`
	ObstacleSpeedDifficulty float64 `yaml:"obstacle_speed_difficulty"`
}

type PlatformSpec struct {
	MotionDifficulty float64 `yaml:"motion_difficulty"`
	TiltAmplitude    float64 `yaml:"tilt_amplitude"`
}

type ObstacleSpec struct {
	HalfExtent         float64 `yaml:"half_extent"`
	GrowthPerLevel     float64 `yaml:"growth_per_level"`
	MaxHalfExtent      float64 `yaml:"max_half_extent"`
	MotionDifficulty   float64 `yaml:"motion_difficulty"`
	VerticalGate       float64 `yaml:"vertical_gate"`
	Knockback          float64 `yaml:"knockback"`
	Bounce             float64 `yaml:"bounce"`
	BounceVelocity     float64 `yaml:"bounce_velocity"`
	HitCooldownSeconds float64 `yaml:"hit_cooldown_seconds"`
	FlashSeconds       float64 `yaml:"flash_seconds"`
	Particles          int     `yaml:"particles"`
}

type PowerUpSpec struct {
	BobSpeed        float64 `yaml:"bob_speed"`
	BobAmplitude    float64 `yaml:"bob_amplitude"`
	CollectRadius   float64 `yaml:"collect_radius"`
	Bonus           int     `yaml:"bonus"`
	Particles       int     `yaml:"particles"`
	DurationSeconds float64 `yaml:"duration_seconds"`
}

type PickupSpec struct {
	CollectRadius     float64 `yaml:"collect_radius"`
	Bonus             int     `yaml:"bonus"`
	Currency          int     `yaml:"currency"`
	Particles         int     `yaml:"particles"`
	MagnetPull        float64 `yaml:"magnet_pull"`
	MagnetRate        float64 `yaml:"magnet_rate"`
	MagnetMinDistance float64 `yaml:"magnet_min_distance"`
}

type ParticleSpec struct {
	LifeSeconds  float64 `yaml:"life_seconds"`
	Spread       float64 `yaml:"spread"`
	LiftMin      float64 `yaml:"lift_min"`
	LiftRange    float64 `yaml:"lift_range"`
	Speed        float64 `yaml:"speed"`
	GravityScale float64 `yaml:"gravity_scale"`
}

type ScoringSpec struct {
	HeightMultiplier float64 `yaml:"height_multiplier"`
}

type DifficultySpec struct {
	Step float64 `yaml:"step"`
	// Script names a tengo script under prefabs/scripts that overrides the
	// step curve. Empty uses Step.
	Script string `yaml:"script"`
}

type Tuning struct {
	Physics           PhysicsSpec    `yaml:"physics"`
	Player            PlayerSpec     `yaml:"player"`
	Landing           LandingSpec    `yaml:"landing"`
	Camera            CameraSpec     `yaml:"camera"`
	World             WorldSpec      `yaml:"world"`
	InitialGeneration GenerationSpec `yaml:"initial_generation"`
	Generation        GenerationSpec `yaml:"generation"`
	Platforms         PlatformSpec   `yaml:"platforms"`
	Obstacles         ObstacleSpec   `yaml:"obstacles"`
	PowerUps          PowerUpSpec    `yaml:"powerups"`
	Pickups           PickupSpec     `yaml:"pickups"`
	Particles         ParticleSpec   `yaml:"particles"`
	Scoring           ScoringSpec    `yaml:"scoring"`
	Difficulty        DifficultySpec `yaml:"difficulty"`
}

const TuningFile = "tuning.yaml"

// LoadTuning reads and validates the tuning spec.
func LoadTuning(name string) (*Tuning, error) {
	if name == "" {
		name = TuningFile
	}
	t, err := LoadSpec[Tuning](name)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &t, nil
}

// JumpApex returns the highest rise of a single jump integrated the same way
// the simulation does: velocity first, then position, once per tick.
func JumpApex(jumpVelocity, gravity float64) float64 {
	if gravity >= 0 || jumpVelocity <= 0 {
		return 0
	}
	y, vy, best := 0.0, jumpVelocity, 0.0
	for {
		vy += gravity
		if vy <= 0 {
			return best
		}
		y += vy
		if y > best {
			best = y
		}
	}
}

// Validate rejects tuning that would break the climb: a vertical gap the
// base jump cannot clear or oscillation without range.
func (t *Tuning) Validate() error {
	if t.Physics.Gravity >= 0 {
		return fmt.Errorf("%w: gravity must be negative, got %v", ErrInvalidTuning, t.Physics.Gravity)
	}
	if t.Physics.MaxDT <= 0 {
		return fmt.Errorf("%w: max_dt must be positive", ErrInvalidTuning)
	}
	if t.Player.MoveSpeed <= 0 || t.Player.JumpVelocity <= 0 {
		return fmt.Errorf("%w: player move_speed and jump_velocity must be positive", ErrInvalidTuning)
	}
	if t.World.SpawnAhead <= 0 {
		return fmt.Errorf("%w: spawn_ahead must be positive", ErrInvalidTuning)
	}
	if t.Difficulty.Step <= 0 {
		return fmt.Errorf("%w: difficulty step must be positive", ErrInvalidTuning)
	}

	apex := JumpApex(t.Player.JumpVelocity, t.Physics.Gravity)
	for name, g := range map[string]GenerationSpec{"initial_generation": t.InitialGeneration, "generation": t.Generation} {
		if g.MinDY <= 0 || g.MaxDY < g.MinDY {
			return fmt.Errorf("%w: %s dy range [%v, %v]", ErrInvalidTuning, name, g.MinDY, g.MaxDY)
		}
		if g.MaxDY >= apex {
			return fmt.Errorf("%w: %s max_dy %v not below jump apex %.3f", ErrInvalidTuning, name, g.MaxDY, apex)
		}
		if g.RangeMax < g.RangeMin || g.ObstacleRangeMax < g.ObstacleRangeMin {
			return fmt.Errorf("%w: %s oscillation range inverted", ErrInvalidTuning, name)
		}
	}
	if t.InitialGeneration.Count < 1 {
		return fmt.Errorf("%w: initial_generation count must be at least 1", ErrInvalidTuning)
	}
	return nil
}

type CharacterStats struct {
	Speed   int `yaml:"speed"`
	Jump    int `yaml:"jump"`
	Power   int `yaml:"power"`
	Stamina int `yaml:"stamina"`
}

type CharacterSpec struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Cost        int            `yaml:"cost"`
	Description string         `yaml:"description"`
	Model       string         `yaml:"model"`
	Scale       float64        `yaml:"scale"`
	Stats       CharacterStats `yaml:"stats"`
}

type Catalog struct {
	Default    string          `yaml:"default"`
	Characters []CharacterSpec `yaml:"characters"`
}

const CatalogFile = "characters.yaml"

func LoadCatalog() (*Catalog, error) {
	c, err := LoadSpec[Catalog](CatalogFile)
	if err != nil {
		return nil, err
	}
	if len(c.Characters) == 0 {
		return nil, fmt.Errorf("prefabs: %s: no characters", CatalogFile)
	}
	if _, ok := c.Lookup(c.Default); !ok {
		c.Default = c.Characters[0].ID
	}
	return &c, nil
}

func (c *Catalog) Lookup(id string) (CharacterSpec, bool) {
	if c == nil {
		return CharacterSpec{}, false
	}
	for _, ch := range c.Characters {
		if ch.ID == id {
			return ch, true
		}
	}
	return CharacterSpec{}, false
}
