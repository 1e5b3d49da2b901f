package physics

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestStepSingleLiftTick(t *testing.T) {
	c := NewCraft(Trainer, 130, 200)
	c.SetLifting(true)

	if c.Step(400) {
		t.Error("Expected no clamp mid-canvas")
	}
	// -2.5*0.2 + 0.2
	if math.Abs(c.Velocity-(-0.3)) > epsilon {
		t.Errorf("Expected velocity -0.3, got %v", c.Velocity)
	}
	if math.Abs(c.Y-199.7) > epsilon {
		t.Errorf("Expected y 199.7, got %v", c.Y)
	}
}

func TestStepGravityConvergesToMaxFall(t *testing.T) {
	for _, v := range Builtin {
		c := NewCraft(v, 130, 0)
		for i := 0; i < 200; i++ {
			c.Step(1e6)
			if c.Velocity > v.MaxFallVelocity+epsilon {
				t.Fatalf("%s: velocity %v exceeded max fall %v", v.Name, c.Velocity, v.MaxFallVelocity)
			}
		}
		if math.Abs(c.Velocity-v.MaxFallVelocity) > epsilon {
			t.Errorf("%s: expected terminal velocity %v, got %v", v.Name, v.MaxFallVelocity, c.Velocity)
		}
	}
}

func TestStepLiftCap(t *testing.T) {
	for _, v := range Builtin {
		c := NewCraft(v, 130, 1e6)
		c.SetLifting(true)
		for i := 0; i < 200; i++ {
			c.Step(2e6)
		}
		// Cap applies before gravity, so the settled velocity is -maxLift + gravity
		want := -v.MaxLiftVelocity + v.Gravity
		if math.Abs(c.Velocity-want) > epsilon {
			t.Errorf("%s: expected climb velocity %v, got %v", v.Name, want, c.Velocity)
		}
	}
}

func TestStepClamps(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		y       float64
		lifting bool
		wantY   float64
	}{
		{"floor", Trainer, 379, false, 380},
		{"floor with offset", Tanker, 375, false, 376},
		{"ceiling", Scout, 0.1, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCraft(tt.variant, 130, tt.y)
			c.Velocity = 3
			if tt.lifting {
				c.Velocity = -4
				c.SetLifting(true)
			}
			if !c.Step(400) {
				t.Fatal("Expected clamp to be reported")
			}
			if c.Y != tt.wantY {
				t.Errorf("Expected y %v, got %v", tt.wantY, c.Y)
			}
			if c.Velocity != 0 {
				t.Errorf("Expected velocity zeroed on clamp, got %v", c.Velocity)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	v, err := Lookup(" Tanker ")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if v.VerticalOffset != -6 {
		t.Errorf("Expected tanker offset -6, got %v", v.VerticalOffset)
	}

	custom := Variant{Name: "gyro", Gravity: 0.1, LiftForce: -1, MaxLiftVelocity: 2, MaxFallVelocity: 3, Width: 30, Height: 12}
	if v, err = Lookup("gyro", custom); err != nil || v.Width != 30 {
		t.Errorf("Expected custom variant, got %+v, %v", v, err)
	}

	if _, err = Lookup("blimp"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant, got %v", err)
	}
}

func TestNextCycles(t *testing.T) {
	if got := Next("heavy").Name; got != "trainer" {
		t.Errorf("Expected wrap to trainer, got %s", got)
	}
	if got := Next("trainer").Name; got != "scout" {
		t.Errorf("Expected scout after trainer, got %s", got)
	}
	if got := Next("unknown").Name; got != "scout" {
		t.Errorf("Expected first variant for unknown tag, got %s", got)
	}
}

func TestValidate(t *testing.T) {
	for _, v := range Builtin {
		if err := v.Validate(); err != nil {
			t.Errorf("%s: %v", v.Name, err)
		}
	}
	if err := (Variant{Name: "flat", Width: 10}).Validate(); err == nil {
		t.Error("Expected error for zero height")
	}
}
