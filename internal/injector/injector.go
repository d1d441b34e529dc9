//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/motion/internal/core/observability/log"
	"github.com/zeusync/motion/internal/core/replay"
)

func InitializeReplayer(scenario *replay.Scenario, level log.Level) (*replay.Replayer, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
