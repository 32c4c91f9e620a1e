package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/zvuklib/zvuk-go/pkg/models"
	"github.com/zvuklib/zvuk-go/pkg/zvuk"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not loaded:", err)
	}

	ctx := context.Background()

	token := os.Getenv("ZVUK_TOKEN")
	if token == "" {
		// No account needed for browsing the catalogue.
		anon, err := zvuk.GetAnonymousToken(ctx)
		if err != nil {
			log.Fatal(err)
		}
		token = anon
		fmt.Println("using anonymous token")
	}

	client, err := zvuk.NewClient(zvuk.WithToken(token))
	if err != nil {
		log.Fatal(err)
	}

	profile, err := client.GetProfile(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("profile #%d anonymous=%v\n", profile.ID, profile.IsAnonymous)

	track, err := client.GetTrack(ctx, "128672726")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("track: %s (%s)\n", track.Title, track.DurationText())

	url, err := client.GetStreamURL(ctx, track.ID, models.QualityMid)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("stream:", url)
}
