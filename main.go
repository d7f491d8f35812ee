/* main.go
 * The "main" method for running the admin bot. Wires the data file, the
 * optional MongoDB mirror, the API and the Discord surface together.
 * Usage: go run main.go -data="pool.json" -mirror=true
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"totopool/api/api"
	"totopool/api/store"
	"totopool/bot"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()

	// Flags
	dataPtr := flag.String("data", "pool.json", "Path of the JSON data file the pool state lives in")
	mirrorPtr := flag.String("mirror", "true", "Mirror state to the remote backend: takes true or false as argument")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	if err != nil {
		log.Println("No .env file loaded, relying on process environment")
	}

	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatal("Invalid \"test\" flag. Should be true or false")
	}
	discordToken := os.Getenv("DISCORD_PROD_TOKEN")
	if useTestBot {
		discordToken = os.Getenv("DISCORD_BETA_TOKEN")
	}

	kv, err := store.OpenFileKV(*dataPtr)
	if err != nil {
		log.Fatalf("failed to open data file: %v", err)
	}

	useMirror, err := convertStrToBool(*mirrorPtr)
	if err != nil {
		log.Fatal("Invalid \"mirror\" flag. Should be true or false")
	}

	var mirror *store.Mirror
	if useMirror {
		mongoURI := os.Getenv("MONGO_PROD_URI")
		if mongoURI == "" {
			log.Println("MONGO_PROD_URI not set, running without the remote mirror")
		} else {
			mirror, err = store.NewMirror(mongoURI, getEnv("MIRROR_DB", "totopool"),
				getEnv("MIRROR_COLLECTION", "snapshots"), getEnv("MIRROR_NAME", "pool"),
				kv, 5*time.Second)
			if err != nil {
				// best-effort by contract, a dead mirror never stops the pool
				log.Printf("mirror unavailable, continuing local-only: %v", err)
				mirror = nil
			}
		}
	}
	if mirror != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := mirror.Close(ctx); err != nil {
				log.Printf("failed to close mirror: %v", err)
			}
		}()
	}

	s, err := store.NewStore(kv, mirror)
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}
	a, err := api.NewAPI(s)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}

	adminUsers := strings.Split(os.Getenv("ADMIN_USERS"), ",")
	b, err := bot.NewBot(discordToken, a, adminUsers)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	if err := b.Run(); err != nil {
		log.Fatalf("bot exited: %v", err)
	}
}
