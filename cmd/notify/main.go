// Command notify sends notifications from flags, a YAML batch file or the
// built-in demo batch.
//
//	notify -type urgent -channel sms -to +1234567890 -subject "Fallo" -message "DB caída"
//	notify -batch notifications.yaml -metrics
//	notify -demo
//
// Configuration is read from the environment (and ./.env when present):
// APP_ENV, LOG_LEVEL, SLACK_WORKSPACE and SERVICE_NAME.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
