package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/app"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/coach"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/config"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/database"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/planstore"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/render"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/server"
)

func main() {
	command := "plan"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "help", "-h", "--help":
		printHelp()
		return
	}

	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	db, err := database.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	store := planstore.New(db.SQL)

	switch command {
	case "plan":
		gen, err := coach.NewGeminiGenerator(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		defer gen.Close()

		application := app.New(cfg, gen, store, logger)
		if err := runInteractive(ctx, application); err != nil {
			log.Fatalf("Plan generation failed: %v", err)
		}
	case "list":
		summaries, err := store.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list plans: %v", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No plans stored yet.")
			return
		}
		for _, s := range summaries {
			fmt.Printf("#%-4d %-53s %s\n", s.ID, s.Motivation, s.CreatedAt.Format("2006-01-02 15:04"))
		}
	case "show":
		id := requireID()
		p, err := store.Load(ctx, id)
		if err != nil {
			log.Fatalf("Failed to load plan %d: %v", id, err)
		}
		render.WriteSummary(os.Stdout, p)
	case "delete":
		id := requireID()
		if err := store.Delete(ctx, id); err != nil {
			log.Fatalf("Failed to delete plan %d: %v", id, err)
		}
		fmt.Printf("Plan %d deleted.\n", id)
	case "serve":
		srv := server.New(store, cfg.HTTPAddr, logger)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runInteractive prompts for a goal, generates the plan, and reports every
// outcome. Persistence and file rendering are best-effort: a failure in one
// is reported without discarding the other.
func runInteractive(ctx context.Context, application *app.App) error {
	fmt.Println("🏃 AI Fitness Coach - Personalized Training Plans")
	fmt.Println(strings.Repeat("=", 50))

	reader := bufio.NewReader(os.Stdin)
	var query string
	for {
		fmt.Print("\nWhat is your running goal? (e.g., 'run a 10k in 8 weeks'): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		query = strings.TrimSpace(line)
		if err := coach.ValidateGoal(query); err != nil {
			fmt.Printf("❌ %v\n", err)
			continue
		}
		break
	}

	if weeks, ok := coach.WeeksFromQuery(query); ok {
		fmt.Printf("   Targeting a %d-week plan.\n", weeks)
	}

	fmt.Println("\n🤖 Generating your personalized running plan...")
	fmt.Println("   This may take 10-30 seconds...")

	result, err := application.GeneratePlan(ctx, query)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		fmt.Println("\nTroubleshooting:")
		fmt.Println("• Check your internet connection")
		fmt.Println("• Verify your Gemini API key is correct")
		fmt.Println("• Ensure you have sufficient API quota")
		fmt.Println("• Try running again in a few minutes")
		return err
	}

	fmt.Println("\n✅ Plan generated successfully!")
	fmt.Println()
	render.WriteSummary(os.Stdout, result.Plan)

	if result.SaveErr != nil {
		fmt.Printf("⚠️  Database save failed: %v\n", result.SaveErr)
	} else {
		fmt.Printf("✅ Plan saved to database with ID: %d\n", result.PlanID)
	}
	if result.RenderErr != nil {
		fmt.Printf("⚠️  Output files failed: %v\n", result.RenderErr)
	} else {
		fmt.Println("✅ HTML, JSON, and CSS files written")
		fmt.Println("   Open training_plan.html in your browser to view your plan")
	}
	return nil
}

func requireID() int64 {
	if len(os.Args) < 3 {
		fmt.Println("Missing plan id.")
		printUsage()
		os.Exit(1)
	}
	id, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		fmt.Printf("Invalid plan id: %s\n", os.Args[2])
		os.Exit(1)
	}
	return id
}

func printUsage() {
	fmt.Println("Usage: fitness-coach <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  plan            Generate a training plan interactively (default)")
	fmt.Println("  list            List stored plans")
	fmt.Println("  show <id>       Print a stored plan")
	fmt.Println("  delete <id>     Delete a stored plan")
	fmt.Println("  serve           Serve stored plans over HTTP")
	fmt.Println("  help            Show detailed help")
}

func printHelp() {
	fmt.Println("AI Fitness Coach Help")
	fmt.Println(strings.Repeat("=", 30))
	printUsage()
	fmt.Println("\nSetup requirements:")
	fmt.Println("1. Gemini API key in GEMINI_API_KEY (or a .env file)")
	fmt.Println("2. A wearable screenshot (optional but recommended), default IMG_4830.png")
	fmt.Println("3. Internet connection")
	fmt.Println("\nExample goals:")
	fmt.Println("• 'run a 5K in 6 weeks'")
	fmt.Println("• 'train for a half marathon in 12 weeks'")
	fmt.Println("• 'improve my 10K time in 8 weeks'")
	fmt.Println("• 'prepare for my first marathon in 16 weeks'")
}
