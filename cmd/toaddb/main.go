package main

import (
	"context"
	"log"

	"github.com/toaddb/toaddb/internal/toaddb"
)

func main() {
	if err := toaddb.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
