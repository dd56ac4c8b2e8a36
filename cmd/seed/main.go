package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fortitwin/internal/config"
	"fortitwin/internal/model"
	"fortitwin/internal/repository"
)

// Ingests a directory of text documents into the retrieval collection
func main() {
	dir := flag.String("ingest", "", "directory of text docs to ingest")
	tags := flag.String("tags", "", "comma separated tags applied to every document")
	flag.Parse()

	if *dir == "" {
		log.Fatal("usage: seed -ingest <dir> [-tags a,b]")
	}

	godotenv.Load()
	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	docs := repository.NewDocumentRepo(db)
	if err := docs.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create text index: %v", err)
	}

	count := 0
	err = filepath.Walk(*dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		body, err := os.ReadFile(path)
		if err != nil {
			log.Printf("skip %s: %v", path, err)
			return nil
		}
		doc := &model.Document{
			Title: strings.TrimSuffix(info.Name(), filepath.Ext(info.Name())),
			Tags:  *tags,
			Body:  string(body),
		}
		if err := docs.Upsert(ctx, doc); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		log.Fatalf("Ingest failed: %v", err)
	}

	log.Printf("Ingested %d docs from %s", count, *dir)
}
