package neat

import (
	"fmt"
	"math"
	"strings"
)

// ActivationKind selects the activation function applied to a node's summed input.
type ActivationKind int

const (
	Sigmoid ActivationKind = iota
	Tanh
	ReLU
	Linear
)

func sigmoidActivation(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func tanhActivation(x float64) float64 {
	return math.Tanh(x)
}

func reluActivation(x float64) float64 {
	return math.Max(0, x)
}

func linearActivation(x float64) float64 {
	return x
}

var activationNames = map[ActivationKind]string{
	Sigmoid: "sigmoid",
	Tanh:    "tanh",
	ReLU:    "relu",
	Linear:  "linear",
}

// Apply evaluates the activation function at x.
func (k ActivationKind) Apply(x float64) float64 {
	switch k {
	case Sigmoid:
		return sigmoidActivation(x)
	case Tanh:
		return tanhActivation(x)
	case ReLU:
		return reluActivation(x)
	default:
		return linearActivation(x)
	}
}

// String returns the lowercase name used in genome files.
func (k ActivationKind) String() string {
	if name, ok := activationNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActivationKind(%d)", int(k))
}

// ParseActivation maps a name to an ActivationKind. Unknown names yield Linear.
func ParseActivation(s string) ActivationKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sigmoid":
		return Sigmoid
	case "tanh":
		return Tanh
	case "relu":
		return ReLU
	default:
		return Linear
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ActivationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ActivationKind) UnmarshalText(text []byte) error {
	*k = ParseActivation(string(text))
	return nil
}
