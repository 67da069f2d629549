// Package sim carries the demo model the example app binds a view to: a
// small training-run parameter block with nested sub-structs, a named
// mode choice and live statistics that change between refreshes.
package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jask/formview/bind"
)

// LearnMode selects the weight update rule.
type LearnMode int32

const (
	Hebbian LearnMode = iota
	ErrorDriven
	Mixed
	LearnModeN
)

var learnModeNames = [...]string{"Hebbian", "ErrorDriven", "Mixed", "LearnModeN"}

func (m LearnMode) String() string {
	if m < 0 || int(m) >= len(learnModeNames) {
		return "LearnMode(?)"
	}
	return learnModeNames[m]
}

// RegisterEnums makes the package's named-choice types known to the
// binding engine. Call once before building views over sim objects.
func RegisterEnums() {
	bind.AddEnum(LearnMode(0), learnModeNames[:]...)
}

// NetParams is the network geometry block, shown inline inside the
// parent view.
type NetParams struct {
	Layers int     `min:"1" max:"10" desc:"number of hidden layers"`
	Units  int     `min:"1" max:"1024" desc:"units per hidden layer"`
	WtInit float64 `min:"0" max:"1" step:"0.05" format:"%.2f" desc:"initial weight scale"`
}

// RunStats holds the live counters a run updates as it goes. The
// counters are display-only; Reset is the only mutation the editor
// offers, through its owner.
type RunStats struct {
	Epoch   int     `inactive:"+" desc:"epochs completed"`
	AvgErr  float64 `inactive:"+" format:"%.4f" desc:"mean error this epoch"`
	BestErr float64 `inactive:"+" format:"%.4f" desc:"best error seen"`
	Done    bool    `inactive:"+" desc:"stopping criterion met"`
}

// TrainParams is the top-level object the demo binds. Field tags drive
// the view: bounds and steps on the numbers, an inline sub-view for the
// network block, a dialog for the stats, and a hidden scratch slice.
type TrainParams struct {
	RunID     string        `inactive:"+" desc:"unique id for this run"`
	Epochs    int           `min:"1" max:"1000" desc:"number of passes over the training set"`
	LearnRate float64       `min:"0" max:"1" step:"0.01" format:"%.3f" desc:"gradient step size"`
	Momentum  float64       `min:"0" max:"1" step:"0.05" format:"%.2f" desc:"fraction of the previous step carried forward"`
	StopErr   float64       `min:"0" step:"0.001" format:"%.4f" desc:"stop when the mean error drops below this"`
	Mode      LearnMode     `desc:"weight update rule"`
	Shuffle   bool          `desc:"reorder the training set each epoch"`
	Timeout   time.Duration `desc:"wall clock limit per epoch"`
	Net       NetParams     `view:"inline" desc:"network geometry"`
	Stats     RunStats      `desc:"live run counters"`
	Scratch   []float64     `view:"-"`

	rng *rand.Rand
}

// NewTrainParams returns a run with a fresh id and the usual defaults.
func NewTrainParams() *TrainParams {
	return &TrainParams{
		RunID:     uuid.NewString(),
		Epochs:    100,
		LearnRate: 0.04,
		Momentum:  0.9,
		StopErr:   0.01,
		Mode:      ErrorDriven,
		Shuffle:   true,
		Timeout:   2 * time.Minute,
		Net:       NetParams{Layers: 2, Units: 25, WtInit: 0.25},
		Stats:     RunStats{AvgErr: 1, BestErr: 1},
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Step advances the fake run one epoch: the error decays toward zero
// with a little noise, and the stopping criterion flips Done.
func (p *TrainParams) Step() {
	if p.Stats.Done {
		return
	}
	st := &p.Stats
	st.Epoch++
	decay := 1 - p.LearnRate
	noise := 0.0
	if p.rng != nil {
		noise = (p.rng.Float64() - 0.5) * 0.02
	}
	st.AvgErr = math.Max(0, st.AvgErr*decay+noise)
	if st.AvgErr < st.BestErr {
		st.BestErr = st.AvgErr
	}
	if st.AvgErr <= p.StopErr || st.Epoch >= p.Epochs {
		st.Done = true
	}
}

// Reset rewinds the counters for another run under a new id.
func (p *TrainParams) Reset() {
	p.RunID = uuid.NewString()
	p.Stats = RunStats{AvgErr: 1, BestErr: 1}
}
