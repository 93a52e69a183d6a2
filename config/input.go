package config

// ActionID represents a logical per-player action button.
type ActionID int

const (
	ActionLeft ActionID = iota
	ActionRight
	ActionUp
	ActionDown
	ActionLight
	ActionHeavy
	ActionSpecial
	ActionBlock
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds the analog-to-digital thresholds used when
// normalizing device state.
type InputConfig struct {
	// Stick deflection beyond which the horizontal axis reads as held.
	AxisThresholdX float64
	// Stick deflection beyond which the vertical axis reads as held.
	AxisThresholdY float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AxisThresholdX: 0.4,
		AxisThresholdY: 0.5,
	}
}

// DeviceState is one player's raw per-frame device sample, collected by
// the host's device layer. Absent devices leave the zero value, which
// normalizes to an all-false intent.
type DeviceState struct {
	AxisX   float64 // analog stick, -1..1, negative = left
	AxisY   float64 // analog stick, -1..1, negative = up
	HatX    int     // d-pad, -1/0/1
	HatY    int     // d-pad, -1/0/1, positive = up
	Buttons [ActionCount]bool
}

// Intent is the logical per-tick input record the simulation consumes.
type Intent struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Light   bool
	Heavy   bool
	Special bool
	Block   bool
	Pause   bool
}

// Attack reports whether the intent presses the given attack button.
func (in Intent) Attack(id AttackID) bool {
	switch id {
	case AttackLight:
		return in.Light
	case AttackHeavy:
		return in.Heavy
	case AttackSpecial:
		return in.Special
	default:
		return false
	}
}

// Normalize folds a raw device sample into a boolean intent. Stateless
// and idempotent; thresholds come from the Input config.
func Normalize(dev DeviceState) Intent {
	return Intent{
		Left:    dev.AxisX < -Input.AxisThresholdX || dev.HatX < 0 || dev.Buttons[ActionLeft],
		Right:   dev.AxisX > Input.AxisThresholdX || dev.HatX > 0 || dev.Buttons[ActionRight],
		Up:      dev.AxisY < -Input.AxisThresholdY || dev.HatY > 0 || dev.Buttons[ActionUp],
		Down:    dev.AxisY > Input.AxisThresholdY || dev.HatY < 0 || dev.Buttons[ActionDown],
		Light:   dev.Buttons[ActionLight],
		Heavy:   dev.Buttons[ActionHeavy],
		Special: dev.Buttons[ActionSpecial],
		Block:   dev.Buttons[ActionBlock],
		Pause:   dev.Buttons[ActionPause],
	}
}
