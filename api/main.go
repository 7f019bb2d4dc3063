package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	. "github.com/ayodeleawe/persona"
)

func main() {
	addr := flag.String("addr", envOr("ADDR", ":8080"), "listen address")
	mongoURI := flag.String("mongo-uri", envOr("MONGO_URI", "mongodb://127.0.0.1:27017"), "mongo connection uri")
	dbName := flag.String("db", envOr("MONGO_DB", "persona"), "mongo database name")
	inmem := flag.Bool("inmem", false, "use the in-memory store instead of mongo")
	flag.Parse()

	var repo Repository
	if *inmem {
		repo = NewPersonRepository()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURI))
		if err != nil {
			log.Fatal(err)
		}

		if err = client.Ping(ctx, nil); err != nil {
			log.Fatal(err)
		}

		repo, err = NewMongoPersonRepository(client.Database(*dbName))
		if err != nil {
			log.Fatal(err)
		}
	}

	svc := NewService(repo, NewBcryptHasher(0))

	log.Printf("Server started. Listening on %s\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, RequestLogger(NewRouter(svc))))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
