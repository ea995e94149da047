// Command stubserver runs the development HTTP backend: an in-memory job
// store behind the same REST surface the client talks to in production.
package main

import (
	"flag"
	"log"

	"github.com/dmitrijs2005/jobkeeper/internal/stubstore"
)

func main() {

	addr := flag.String("a", ":3001", "address to listen on")
	seed := flag.String("seed", "", "optional YAML seed file with users and jobs")
	flag.Parse()

	store := stubstore.New()
	if *seed != "" {
		if err := stubstore.LoadSeed(store, *seed); err != nil {
			log.Fatalf("loading seed: %v", err)
		}
	}

	router := stubstore.Router(store)
	log.Printf("stub server listening on %s", *addr)
	if err := router.Run(*addr); err != nil {
		log.Fatalf("%v", err)
	}

}
