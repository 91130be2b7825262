package dino

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

const testDelta = 20.0

// quietConfig never spawns on its own so tests place obstacles by hand.
func quietConfig() config.DinoConfig {
	cfg := config.DefaultDinoConfig()
	cfg.Obstacles.SpawnIntervalMs = 1e12
	return cfg
}

type fakeStore struct {
	values map[string]int
	sets   int
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]int)}
}

func (f *fakeStore) GetInt(key string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.values[key], nil
}

func (f *fakeStore) RaiseInt(key string, value int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.sets++
	if value > f.values[key] {
		f.values[key] = value
	}
	return f.values[key], nil
}

// runToRunning jumps through the start trigger and waits out the rollout.
func runToRunning(t *testing.T, s *Session) {
	t.Helper()
	s.Tick(testDelta, press(core.ActionJumpPrimary))
	for i := 0; i < 500 && s.Mode() != ModeRunning; i++ {
		s.Tick(testDelta, core.NewInputFrame())
	}
	if s.Mode() != ModeRunning {
		t.Fatalf("session stuck in %v", s.Mode())
	}
}

// addObstacleAtPlayer places a cactus that overlaps the player after one tick of scrolling.
func addObstacleAtPlayer(s *Session) Obstacle {
	hb := s.Player().Hitbox()
	return s.obstacles.Add(Obstacle{
		Kind:      KindGround,
		Variant:   1,
		X:         hb.X + s.cfg.Physics.BaseSpeed*s.SpeedModifier(),
		Bottom:    s.cfg.Field.Height,
		Width:     34,
		Height:    70,
		Immovable: true,
	})
}

func TestSessionStartSequence(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	if s.Mode() != ModeIntro {
		t.Fatalf("new session mode = %v, expected intro", s.Mode())
	}

	for i := 0; i < 100; i++ {
		s.Tick(testDelta, core.NewInputFrame())
	}
	if s.Mode() != ModeIntro {
		t.Fatalf("session left intro without input: %v", s.Mode())
	}

	cues := s.Tick(testDelta, press(core.ActionJumpSecondary))
	if !reflect.DeepEqual(cues, []core.Cue{core.CueJump}) {
		t.Errorf("jump cues = %v, expected [jump]", cues)
	}

	sawRollOut := false
	for i := 0; i < 500 && s.Mode() != ModeRunning; i++ {
		s.Tick(testDelta, core.NewInputFrame())
		if s.Mode() == ModeRollOut {
			sawRollOut = true
		}
	}
	if !sawRollOut {
		t.Error("session should pass through rollout")
	}
	if s.Mode() != ModeRunning {
		t.Fatalf("session did not reach running: %v", s.Mode())
	}
	if s.Score() != 0 {
		t.Errorf("score on entering running = %d, expected 0", s.Score())
	}
	if s.scenery.Ground.Width != 1000 {
		t.Errorf("ground width = %v, expected full field width", s.scenery.Ground.Width)
	}
	if s.trigger.Phase() != TriggerDisabled {
		t.Errorf("trigger phase = %v, expected disabled", s.trigger.Phase())
	}
}

func TestSessionRollOutIgnoresInput(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	s.mode = ModeRollOut

	cues := s.Tick(testDelta, press(core.ActionJumpPrimary))
	if len(cues) != 0 || s.Player().VelY != 0 {
		t.Errorf("rollout reacted to jump: cues %v vel %v", cues, s.Player().VelY)
	}
}

func TestSessionScoreNonDecreasing(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	runToRunning(t, s)

	prev := 0
	for i := 1; i <= 200; i++ {
		s.Tick(testDelta, core.NewInputFrame())
		if s.Score() < prev {
			t.Fatalf("score decreased from %d to %d", prev, s.Score())
		}
		prev = s.Score()
		if want := i / 10; s.Score() != want {
			t.Fatalf("after %d ticks of 20ms score = %d, expected %d", i, s.Score(), want)
		}
	}
}

func TestSessionMilestoneOnce(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	runToRunning(t, s)

	progress := 0
	for i := 0; i < 99; i++ {
		for _, c := range s.Tick(200, core.NewInputFrame()) {
			if c == core.CueProgress {
				progress++
			}
		}
	}
	if s.Score() != 99 || s.SpeedModifier() != 1 || progress != 0 {
		t.Fatalf("before the milestone: score %d modifier %v cues %d", s.Score(), s.SpeedModifier(), progress)
	}

	cues := s.Tick(200, core.NewInputFrame())
	if !reflect.DeepEqual(cues, []core.Cue{core.CueProgress}) {
		t.Errorf("milestone cues = %v, expected [progress]", cues)
	}
	if s.Score() != 100 || s.SpeedModifier() != 1.1 {
		t.Fatalf("at the milestone: score %d modifier %v, expected 100 and 1.1", s.Score(), s.SpeedModifier())
	}
	if !s.flicker.Active() {
		t.Error("milestone should start the score flicker")
	}

	for i := 0; i < 50; i++ {
		s.Tick(200, core.NewInputFrame())
	}
	if s.SpeedModifier() != 1.1 {
		t.Errorf("modifier drifted without a new milestone: %v", s.SpeedModifier())
	}
	if want := 7 * s.SpeedModifier(); s.ScrollSpeed() != want {
		t.Errorf("scroll speed = %v, expected %v", s.ScrollSpeed(), want)
	}
}

func TestSessionJumpWhileRunning(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	runToRunning(t, s)

	cues := s.Tick(testDelta, press(core.ActionJumpPrimary))
	if s.Player().VelY != -1600 {
		t.Fatalf("VelY after jump = %v, expected -1600", s.Player().VelY)
	}
	if !reflect.DeepEqual(cues, []core.Cue{core.CueJump}) {
		t.Errorf("jump cues = %v", cues)
	}

	s.Tick(testDelta, core.NewInputFrame())
	vel := s.Player().VelY
	cues = s.Tick(testDelta, press(core.ActionJumpPrimary, core.ActionJumpSecondary))
	if len(cues) != 0 {
		t.Errorf("airborne jump produced cues %v", cues)
	}
	if s.Player().VelY != vel+5000*testDelta/1000 {
		t.Errorf("airborne jump changed velocity: %v -> %v", vel, s.Player().VelY)
	}
	if s.Player().Pose() != PoseJump {
		t.Errorf("airborne pose = %v, expected jump", s.Player().Pose())
	}
}

func TestSessionSpawnsBeyondRightEdge(t *testing.T) {
	s := NewSession(config.DefaultDinoConfig(), 5)
	runToRunning(t, s)

	for i := 0; i < 200 && s.obstacles.Len() == 0; i++ {
		s.Tick(testDelta, core.NewInputFrame())
	}
	if s.obstacles.Len() != 1 {
		t.Fatalf("expected one spawned obstacle, got %d", s.obstacles.Len())
	}
	o := s.Obstacles()[0]
	if o.X < 1150-7 || o.X > 1300-7 {
		t.Errorf("obstacle x = %v, expected spawn offset minus one tick of scrolling", o.X)
	}
}

func TestSessionSweepsObstacles(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	runToRunning(t, s)

	gone := s.obstacles.Add(Obstacle{X: -31, Bottom: 340, Width: 34, Height: 70})
	edge := s.obstacles.Add(Obstacle{X: -27, Bottom: 340, Width: 34, Height: 70})

	s.Tick(testDelta, core.NewInputFrame())
	all := s.Obstacles()
	if len(all) != 1 || all[0].ID != edge.ID {
		t.Fatalf("after one tick obstacles = %+v, expected only %d (not %d)", all, edge.ID, gone.ID)
	}
	if all[0].Right() != 0 {
		t.Fatalf("edge obstacle right = %v, expected exactly 0", all[0].Right())
	}

	s.Tick(testDelta, core.NewInputFrame())
	if s.obstacles.Len() != 0 {
		t.Errorf("obstacle past the edge should be removed, %d left", s.obstacles.Len())
	}
}

func TestSessionCollisionEndsRun(t *testing.T) {
	store := newFakeStore()
	store.values[HighScoreKey] = 3

	s := NewSession(quietConfig(), 1, WithSessionStore(store))
	if s.HighScore() != 3 {
		t.Fatalf("high score not loaded from store: %d", s.HighScore())
	}
	runToRunning(t, s)

	for i := 0; i < 5; i++ {
		s.Tick(200, core.NewInputFrame())
	}
	o := addObstacleAtPlayer(s)

	cues := s.Tick(testDelta, core.NewInputFrame())
	if s.Mode() != ModeEnded {
		t.Fatalf("mode after overlap = %v, expected ended", s.Mode())
	}
	if !reflect.DeepEqual(cues, []core.Cue{core.CueHit}) {
		t.Errorf("collision cues = %v, expected [hit]", cues)
	}
	if s.LastHit() != o.ID || s.Player().Pose() != PoseDead {
		t.Errorf("last hit %d pose %v", s.LastHit(), s.Player().Pose())
	}
	if s.HighScore() != 5 || store.values[HighScoreKey] != 5 || store.sets != 1 {
		t.Errorf("high score %d stored %d sets %d, expected 5 saved once",
			s.HighScore(), store.values[HighScoreKey], store.sets)
	}
}

func TestSessionKeepsHigherStoredScore(t *testing.T) {
	store := newFakeStore()
	store.values[HighScoreKey] = 100

	s := NewSession(quietConfig(), 1, WithSessionStore(store))
	runToRunning(t, s)
	s.Tick(200, core.NewInputFrame())
	addObstacleAtPlayer(s)
	s.Tick(testDelta, core.NewInputFrame())

	if s.Mode() != ModeEnded {
		t.Fatalf("mode = %v, expected ended", s.Mode())
	}
	if s.HighScore() != 100 || store.sets != 0 {
		t.Errorf("high score %d sets %d, expected 100 untouched", s.HighScore(), store.sets)
	}
}

func TestSessionsSharingStoreNeverLowerHighScore(t *testing.T) {
	store := newFakeStore()
	first := NewSession(quietConfig(), 1, WithSessionStore(store))
	second := NewSession(quietConfig(), 2, WithSessionStore(store))
	runToRunning(t, first)
	runToRunning(t, second)

	for i := 0; i < 10; i++ {
		first.Tick(200, core.NewInputFrame())
	}
	addObstacleAtPlayer(first)
	first.Tick(testDelta, core.NewInputFrame())
	best := first.Score()
	if first.Mode() != ModeEnded || store.values[HighScoreKey] != best {
		t.Fatalf("first run: mode %v stored %d, expected ended with %d", first.Mode(), store.values[HighScoreKey], best)
	}

	second.Tick(200, core.NewInputFrame())
	addObstacleAtPlayer(second)
	second.Tick(testDelta, core.NewInputFrame())
	if second.Mode() != ModeEnded {
		t.Fatalf("second run mode = %v, expected ended", second.Mode())
	}
	if second.Score() <= 0 || second.Score() >= best {
		t.Fatalf("second score %d should be between 0 and %d", second.Score(), best)
	}

	if got := store.values[HighScoreKey]; got != best {
		t.Errorf("stored high score = %d after a lower run, expected %d", got, best)
	}
	if second.HighScore() != best {
		t.Errorf("second session high score = %d, expected the stored %d", second.HighScore(), best)
	}
}

func TestSessionStoreFailureIsNotFatal(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("disk gone")

	s := NewSession(quietConfig(), 1, WithSessionStore(store))
	runToRunning(t, s)
	s.Tick(200, core.NewInputFrame())
	addObstacleAtPlayer(s)
	s.Tick(testDelta, core.NewInputFrame())

	if s.Mode() != ModeEnded || s.HighScore() != 1 {
		t.Errorf("mode %v high score %d, expected ended with 1 kept in memory", s.Mode(), s.HighScore())
	}
}

func TestSessionEndedFreezesWorld(t *testing.T) {
	s := NewSession(config.DefaultDinoConfig(), 3)
	runToRunning(t, s)
	s.obstacles.Add(Obstacle{X: 600, Bottom: 340, Width: 50, Height: 100})
	addObstacleAtPlayer(s)
	s.Tick(testDelta, core.NewInputFrame())
	if s.Mode() != ModeEnded {
		t.Fatalf("mode = %v, expected ended", s.Mode())
	}
	if s.ScrollSpeed() != 7 || s.spawner.Timer() != 0 {
		t.Errorf("end should reset speed and spawn timer: %v %v", s.ScrollSpeed(), s.spawner.Timer())
	}

	obstacles := s.Obstacles()
	player := *s.Player()
	scenery := s.scenery.Ground
	score := s.Score()

	for i := 0; i < 120; i++ {
		cues := s.Tick(testDelta, press(core.ActionJumpPrimary, core.ActionDuck))
		if len(cues) != 0 {
			t.Fatalf("ended session produced cues %v", cues)
		}
	}

	if !reflect.DeepEqual(s.Obstacles(), obstacles) {
		t.Error("obstacles moved while ended")
	}
	if !reflect.DeepEqual(*s.Player(), player) {
		t.Error("player changed while ended")
	}
	if s.scenery.Ground != scenery || s.Score() != score {
		t.Error("ground or score changed while ended")
	}
}

func TestSessionRestart(t *testing.T) {
	s := NewSession(quietConfig(), 1)
	runToRunning(t, s)

	for i := 0; i < 120; i++ {
		s.Tick(200, core.NewInputFrame())
	}
	if s.SpeedModifier() != 1.1 {
		t.Fatalf("modifier before end = %v", s.SpeedModifier())
	}
	s.Tick(testDelta, press(core.ActionDuck))
	addObstacleAtPlayer(s)
	s.Tick(testDelta, core.NewInputFrame())
	if s.Mode() != ModeEnded {
		t.Fatalf("mode = %v, expected ended", s.Mode())
	}
	if s.SpeedModifier() != 1.1 {
		t.Errorf("modifier should survive until restart, got %v", s.SpeedModifier())
	}

	s.Tick(testDelta, press(core.ActionRestart))
	if s.Mode() != ModeRunning {
		t.Fatalf("mode after restart = %v, expected running", s.Mode())
	}
	if s.Score() != 0 || s.SpeedModifier() != 1 || s.scorer.Timer() != 0 {
		t.Errorf("restart left score %d modifier %v timer %v", s.Score(), s.SpeedModifier(), s.scorer.Timer())
	}
	if s.obstacles.Len() != 0 {
		t.Errorf("restart left %d obstacles", s.obstacles.Len())
	}
	p := s.Player()
	if p.VelY != 0 || p.Ducked() || p.Hitbox().H != 92 {
		t.Errorf("restart left player vel %v ducked %v", p.VelY, p.Ducked())
	}
	if s.HighScore() != 120 {
		t.Errorf("high score = %d, expected 120", s.HighScore())
	}
}

func TestGameAdapter(t *testing.T) {
	g := New(WithConfig(quietConfig()))
	if g.State() != (core.GameState{}) {
		t.Errorf("state before Reset = %+v", g.State())
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	if g.ID() != "dino" || g.Title() != "Dino Runner" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}

	res := g.Step(press(core.ActionJumpPrimary))
	if res.State.Mode != "intro" || res.State.GameOver {
		t.Errorf("state after first jump = %+v", res.State)
	}
	if !reflect.DeepEqual(res.Cues, []core.Cue{core.CueJump}) {
		t.Errorf("cues = %v, expected [jump]", res.Cues)
	}

	for i := 0; i < 500 && g.State().Mode != "running"; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Mode != "running" {
		t.Fatalf("game did not start running: %+v", g.State())
	}

	addObstacleAtPlayer(g.Session())
	res = g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Mode != "ended" {
		t.Errorf("state after collision = %+v", res.State)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	run := func() (core.GameState, []Obstacle) {
		g := New()
		g.Reset(cfg)
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			if i%40 == 0 {
				in.Press(core.ActionJumpPrimary)
			}
			g.Step(in)
		}
		return g.State(), g.Session().Obstacles()
	}

	s1, o1 := run()
	s2, o2 := run()
	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if !reflect.DeepEqual(o1, o2) {
		t.Errorf("obstacles differ: %d vs %d", len(o1), len(o2))
	}
}
