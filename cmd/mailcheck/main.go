// mailcheck verifies the configured email transport. It optionally sends a
// sample donation notification so operators can check credentials and
// templates before pointing real traffic at the service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"goodheart/internal/infra"
	"goodheart/internal/notify"
)

func main() {
	to := flag.String("to", "", "recipient address for the test message (required)")
	kind := flag.String("kind", "donor", "which template to send: donor or ngo")
	verifyOnly := flag.Bool("verify", false, "only verify the transport, send nothing (smtp only)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	mailer, err := notify.NewMailerFromConfig(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mailer:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *verifyOnly {
		smtp, ok := mailer.(*notify.SMTPMailer)
		if !ok {
			fmt.Fprintln(os.Stderr, "-verify requires EMAIL_PROVIDER=smtp")
			os.Exit(1)
		}
		if err := smtp.Verify(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "verify failed:", err)
			os.Exit(1)
		}
		fmt.Println("email service ready")
		return
	}

	if *to == "" {
		fmt.Fprintln(os.Stderr, "-to is required")
		os.Exit(1)
	}

	var msg notify.Message
	switch *kind {
	case "donor":
		msg = notify.DonorConfirmation(*to, "Test Donor", "Test Campaign", 50, 1)
	case "ngo":
		msg = notify.NGOAlert(*to, "Test NGO", "Test Campaign", "Test Donor", 50)
	default:
		fmt.Fprintln(os.Stderr, "-kind must be donor or ngo")
		os.Exit(1)
	}

	result := mailer.Send(ctx, msg)
	fmt.Printf("success=%v message=%q\n", result.Success, result.Message)
	if !result.Success {
		os.Exit(1)
	}
}
