package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"ads-daily-report/pkg/calculator"
	"ads-daily-report/pkg/config"
	"ads-daily-report/pkg/notifier"
	"ads-daily-report/pkg/source"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	configFile := flag.String("config", os.Getenv("CONFIG_FILE"), "YAML config file (optional)")
	envFile := flag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	date := flag.String("date", "", "report as if today were YYYY-MM-DD (report time zone)")
	sourceKind := flag.String("source", "", "sheets | csv | xlsx | sql (overrides SOURCE)")
	dryRun := flag.Bool("dry-run", false, "print the message instead of posting it")
	verbose := flag.Bool("v", false, "verbose logs")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("[INFO] %s not loaded, using process environment", *envFile)
	}

	cfg, err := config.Load(*configFile, os.LookupEnv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *sourceKind != "" {
		cfg.Source = *sourceKind
	}
	cfg.Verbose = cfg.Verbose || *verbose

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Fatalf("timezone %q: %v", cfg.TimeZone, err)
	}
	now := time.Now()
	if *date != "" {
		d, err := time.ParseInLocation("2006-01-02", *date, loc)
		if err != nil {
			log.Fatalf("-date: %v", err)
		}
		now = d
	}
	today, _, _ := calculator.ReportDates(now, loc)

	runID := uuid.NewString()
	log.Printf("[INFO] run=%s today=%s source=%s", runID, today.Format("2006-01-02"), cfg.Source)

	sheet, explicit := cfg.SheetName, cfg.SheetName != ""
	if !explicit {
		sheet = calculator.SheetName(today)
	}
	log.Printf("[INFO] 対象シート: %s", sheet)

	src, err := source.New(cfg, sheet, explicit)
	if err != nil {
		log.Fatalf("source: %v", err)
	}
	ctx := context.Background()
	table, err := src.Fetch(ctx)
	if err != nil {
		log.Fatalf("fetch: %v", err)
	}
	if cfg.Verbose {
		log.Printf("[DEBUG] header=%v rows=%d", table.Header, len(table.Rows))
	}

	rep, err := calculator.Run(table, cfg, now, loc)
	if err != nil {
		log.Fatalf("compute: %v", err)
	}

	text, err := notifier.BuildMessage(rep, cfg)
	if err != nil {
		log.Fatalf("message: %v", err)
	}
	if *dryRun {
		fmt.Println(text)
		return
	}

	log.Printf("[INFO] Slackへ送信します…")
	slack := notifier.Slack{
		WebhookURL: cfg.WebhookURL,
		Username:   cfg.BotName,
		IconEmoji:  cfg.IconEmoji,
	}
	if err := slack.Send(ctx, text); err != nil {
		log.Printf("[ERROR] Slack投稿 失敗 run=%s: %v", runID, err)
		os.Exit(1)
	}
	log.Printf("[INFO] Slack投稿 成功 run=%s", runID)
}
