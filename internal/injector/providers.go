// Package injector assembles a replay run from a scenario.
package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/motion/internal/core/motion"
	"github.com/zeusync/motion/internal/core/observability/log"
	"github.com/zeusync/motion/internal/core/replay"
)

var ProviderSet = wire.NewSet(ProvideLogger, ProvideModel, ProvideReplayer)

func ProvideLogger(level log.Level) log.Log {
	return log.New(level)
}

func ProvideModel(scenario *replay.Scenario, logger log.Log) (motion.MotionModel, error) {
	return scenario.Motion.Build(motion.WithLogger(logger))
}

func ProvideReplayer(scenario *replay.Scenario, model motion.MotionModel, logger log.Log) *replay.Replayer {
	return replay.New(model,
		replay.WithLogger(logger),
		replay.WithSeed(scenario.Seed),
		replay.WithWorkers(scenario.Workers),
	)
}
