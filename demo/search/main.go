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

	query := "daft punk"
	if len(os.Args) > 1 {
		query = os.Args[1]
	}

	ctx := context.Background()

	token := os.Getenv("ZVUK_TOKEN")
	if token == "" {
		anon, err := zvuk.GetAnonymousToken(ctx)
		if err != nil {
			log.Fatal(err)
		}
		token = anon
	}

	client, err := zvuk.NewClient(zvuk.WithToken(token))
	if err != nil {
		log.Fatal(err)
	}

	// Multi-category search and typeahead in parallel, over the same
	// blocking client.
	full := zvuk.Go(ctx, func(ctx context.Context) (*models.SearchResult, error) {
		return client.Search(ctx, query, zvuk.NewSearchParams())
	})
	quick := zvuk.Go(ctx, func(ctx context.Context) (*models.QuickSearchResult, error) {
		return client.QuickSearch(ctx, query, 0, "")
	})

	result, err := full.Wait(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if result.Tracks != nil {
		fmt.Printf("%d tracks (showing up to 5):\n", result.Tracks.Page.Total)
		for i, t := range result.Tracks.Items {
			if i == 5 {
				break
			}
			fmt.Printf("  %s  %s\n", t.ID, t.Title)
		}
	}

	typeahead, err := quick.Wait(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("typeahead:")
	for _, item := range typeahead.Content {
		fmt.Printf("  %-8s %s\n", item.Type, item.Title())
	}
}
