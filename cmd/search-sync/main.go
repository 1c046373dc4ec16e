package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"cragstore/internal/config"
	mdb "cragstore/internal/mongo"
	"cragstore/internal/search"
)

func init() {
	_ = godotenv.Load() // .env, optional
}

func main() {
	areas := flag.Bool("areas", false, "rebuild the areas search collection")
	climbs := flag.Bool("climbs", false, "rebuild the climbs search collection")
	flag.Parse()

	if !*areas && !*climbs {
		log.Println(`{"msg":"nothing to do","hint":"pass --areas and/or --climbs"}`)
		return
	}

	cfg := config.Load()
	if !cfg.SearchConfigured() {
		log.Fatal(`{"msg":"fatal","err":"TYPESENSE_HOST and TYPESENSE_API_KEY must be set"}`)
	}

	ctx := context.Background()
	mc, err := mdb.NewClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer mc.Close(ctx)

	idx := search.NewStore(cfg.TypesenseHost, cfg.TypesenseAPIKey)
	if err := search.Run(ctx, mc, idx, search.Options{Areas: *areas, Climbs: *climbs}); err != nil {
		log.Fatal(err)
	}
	log.Println("search sync done")
}
