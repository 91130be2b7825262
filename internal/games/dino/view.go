package dino

import "github.com/vovakirdan/dino-runner/internal/core"

// Restart control size in world pixels, centered below the game-over text.
const (
	restartWidth   = 36
	restartHeight  = 32
	restartOffsetY = 80
)

// View is a read-only snapshot of everything a renderer draws.
// Coordinates are world pixels with y growing downward.
type View struct {
	Mode   Mode
	FieldW float64
	FieldH float64

	GroundWidth  float64
	GroundOffset float64
	GroundTile   float64

	CloudsVisible bool
	Clouds        []core.Box

	Player    PlayerView
	Obstacles []ObstacleView

	ScoreVisible     bool
	ScoreText        string
	ScoreAlpha       float64
	HighScoreVisible bool
	HighScoreText    string

	GameOverVisible bool
	RestartBox      core.Box

	SpeedModifier float64
	Score         int
	HighScore     int
}

// PlayerView is the drawn state of the player.
type PlayerView struct {
	Sprite core.Box
	Hitbox core.Box
	Pose   Pose
	Frame  int
}

// ObstacleView is the drawn state of one obstacle.
type ObstacleView struct {
	ID      int
	Kind    ObstacleKind
	Variant int
	Box     core.Box
	Frame   int
}

// View builds a snapshot of the current session.
func (s *Session) View() View {
	cfg := s.cfg
	running := s.mode == ModeRunning || s.mode == ModeEnded

	v := View{
		Mode:          s.mode,
		FieldW:        cfg.Field.Width,
		FieldH:        cfg.Field.Height,
		GroundWidth:   s.scenery.Ground.Width,
		GroundOffset:  s.scenery.Ground.Offset,
		GroundTile:    cfg.Scenery.GroundTile,
		CloudsVisible: running,
		Player: PlayerView{
			Sprite: s.player.Sprite(),
			Hitbox: s.player.Hitbox(),
			Pose:   s.player.Pose(),
			Frame:  s.player.Frame(),
		},
		ScoreVisible:     running,
		ScoreText:        s.scorer.Display(),
		ScoreAlpha:       s.flicker.Alpha(),
		HighScoreVisible: running && s.highScore > 0,
		HighScoreText:    cfg.Scoring.HighScorePrefix + PadScore(s.highScore, cfg.Scoring.Digits),
		GameOverVisible:  s.mode == ModeEnded,
		RestartBox: core.NewBox(
			(cfg.Field.Width-restartWidth)/2,
			cfg.Field.Height/2+restartOffsetY-restartHeight/2,
			restartWidth, restartHeight,
		),
		SpeedModifier: s.difficulty.Modifier(),
		Score:         s.scorer.Score(),
		HighScore:     s.highScore,
	}

	v.Clouds = make([]core.Box, len(s.scenery.Clouds))
	for i, c := range s.scenery.Clouds {
		v.Clouds[i] = c.Box()
	}

	flyFrame := 0
	if cfg.Obstacles.FlyingFrameMs > 0 {
		flyFrame = int(s.animMs/cfg.Obstacles.FlyingFrameMs) % 2
	}
	v.Obstacles = make([]ObstacleView, 0, s.obstacles.Len())
	for _, o := range s.obstacles.All() {
		ov := ObstacleView{ID: o.ID, Kind: o.Kind, Variant: o.Variant, Box: o.Box()}
		if o.Kind == KindFlying {
			ov.Frame = flyFrame
		}
		v.Obstacles = append(v.Obstacles, ov)
	}
	return v
}
