package flappy

import (
	"testing"

	"github.com/bnookala/flappy-claude/internal/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

func TestNewBird(t *testing.T) {
	cfg := testConfig()
	b := NewBird(cfg)

	if b.X != 10 || b.Y != 10 || b.Velocity != 0 {
		t.Errorf("NewBird() = %+v, expected resting bird at column 10, row 10", b)
	}
}

func TestApplyGravity(t *testing.T) {
	cfg := testConfig()

	b := ApplyGravity(Bird{X: 10, Y: 10}, cfg)
	if b.Velocity != 0.5 {
		t.Errorf("Velocity = %f, expected 0.5", b.Velocity)
	}
	if b.Y != 10.5 {
		t.Errorf("Y = %f, expected 10.5", b.Y)
	}
	if b.X != 10 {
		t.Errorf("X changed to %d", b.X)
	}
}

func TestApplyGravityClampsToTerminalVelocity(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name     string
		velocity float64
		expected float64
	}{
		{"below terminal", 7.0, 7.5},
		{"crossing terminal", 7.8, 8.0},
		{"at terminal", 8.0, 8.0},
		{"rising", -2.0, -1.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := ApplyGravity(Bird{Y: 5, Velocity: tc.velocity}, cfg)
			if b.Velocity != tc.expected {
				t.Errorf("Velocity = %f, expected %f", b.Velocity, tc.expected)
			}
			if b.Y != 5+tc.expected {
				t.Errorf("Y = %f, expected %f", b.Y, 5+tc.expected)
			}
		})
	}
}

func TestApplyGravityRepeatedIsStable(t *testing.T) {
	cfg := testConfig()
	b := Bird{}

	for i := 0; i < 1000; i++ {
		b = ApplyGravity(b, cfg)
	}

	// 16 frames to reach 8.0 (sum 68), then 984 frames at 8.0
	if b.Velocity != 8.0 {
		t.Errorf("Velocity = %f, expected terminal 8.0", b.Velocity)
	}
	if b.Y != 7940 {
		t.Errorf("Y = %f, expected exactly 7940", b.Y)
	}
}

func TestFlapOverwritesVelocity(t *testing.T) {
	cfg := testConfig()

	for _, v := range []float64{0, 5, 8, -1, -7.5} {
		b := Flap(Bird{X: 10, Y: 12.25, Velocity: v}, cfg)
		if b.Velocity != cfg.Physics.FlapStrength {
			t.Errorf("Flap from %f gave velocity %f, expected %f", v, b.Velocity, cfg.Physics.FlapStrength)
		}
		if b.Y != 12.25 {
			t.Errorf("Flap moved the bird to %f", b.Y)
		}
	}
}

func TestMove(t *testing.T) {
	b := Move(Bird{Y: 10, Velocity: -2})
	if b.Y != 8 || b.Velocity != -2 {
		t.Errorf("Move() = %+v, expected Y=8 with velocity kept", b)
	}
}

func TestBirdRow(t *testing.T) {
	tests := []struct {
		y   float64
		row int
	}{
		{0, 0},
		{6.99, 6},
		{13.0, 13},
		{-0.5, -1},
	}

	for _, tc := range tests {
		if got := (Bird{Y: tc.y}).Row(); got != tc.row {
			t.Errorf("Row() for Y=%f = %d, expected %d", tc.y, got, tc.row)
		}
	}
}
