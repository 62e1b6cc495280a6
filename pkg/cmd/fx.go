package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(diff, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(dump, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(introspectCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(like, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
