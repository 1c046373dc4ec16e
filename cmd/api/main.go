package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"cragstore/internal/config"
	"cragstore/internal/httpx"
	mdb "cragstore/internal/mongo"
	"cragstore/internal/search"
)

func init() {
	_ = godotenv.Load() // .env, optional
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	mc, err := mdb.NewClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer mc.Close(ctx)

	if err := mc.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}

	// optional scheduled full resync into the search index
	if cfg.SyncSchedule != "" && cfg.SearchConfigured() {
		idx := search.NewStore(cfg.TypesenseHost, cfg.TypesenseAPIKey)
		c := cron.New()
		_, err = c.AddFunc(cfg.SyncSchedule, func() {
			if err := search.Run(ctx, mc, idx, search.Options{Areas: true, Climbs: true}); err != nil {
				log.Printf(`{"lvl":"error","msg":"scheduled sync failed","err":%q}`, err.Error())
			} else {
				log.Printf(`{"lvl":"info","msg":"scheduled sync completed"}`)
			}
		})
		if err != nil {
			log.Fatal(err)
		}
		c.Start()
		defer c.Stop()
	}

	handler, err := httpx.NewRouter(mc, cfg)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Printf(`{"msg":"listening","port":%q}`, cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
