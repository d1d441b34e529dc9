package motion

import "errors"

var (
	// ErrConfiguration is returned when model parameters are negative or not finite.
	ErrConfiguration = errors.New("invalid motion model configuration")
	// ErrInvalidInput is returned when an odometry pose contains NaN or Inf.
	ErrInvalidInput = errors.New("invalid odometry pose")
	// ErrUnknownModel is returned by Config.Build for an unrecognized model name.
	ErrUnknownModel = errors.New("unknown motion model")
)
