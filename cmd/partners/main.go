package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/bnema/partners-cli/cmd"
	"pkt.systems/psi"
	"pkt.systems/pslog"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole, MinLevel: pslog.WarnLevel}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	if err := cmd.Execute(ctx); err != nil {
		pslog.Ctx(ctx).Debug("partners command failed", "err", err)
		_, _ = fmt.Fprintln(os.Stderr, "Error:", cmd.UserMessage(err))
		return 1
	}
	return 0
}
