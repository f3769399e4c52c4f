// verify-db checks that the configured storage backend is reachable and
// readable/writable by round-tripping a probe key.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"invoiceease/internal/storage"

	"github.com/joho/godotenv"
)

const probeKey = "invoiceease-storage-probe"

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := storage.Open(ctx)
	if err != nil {
		log.Fatalf("[FAIL] open storage: %v", err)
	}

	payload := []byte(fmt.Sprintf(`{"probe":%q}`, time.Now().Format(time.RFC3339)))
	if err := store.Set(ctx, probeKey, payload); err != nil {
		log.Fatalf("[FAIL] write probe: %v", err)
	}

	got, err := store.Get(ctx, probeKey)
	if err != nil {
		log.Fatalf("[FAIL] read probe: %v", err)
	}
	if !bytes.Equal(got, payload) {
		log.Fatalf("[FAIL] probe mismatch: wrote %s, read %s", payload, got)
	}

	if err := store.Delete(ctx, probeKey); err != nil {
		log.Fatalf("[FAIL] delete probe: %v", err)
	}

	log.Println("[DONE] Storage backend verified.")
}
